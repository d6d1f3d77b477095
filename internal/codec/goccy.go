package codec

import (
	gojson "github.com/goccy/go-json"
)

// Goccy is a JSON codec backed by github.com/goccy/go-json, a drop-in
// encoding/json-shaped library. It is the real ecosystem adapter for
// production use; Noop is sufficient for the library's own correctness
// tests.
type Goccy struct{}

// NewGoccy constructs a Goccy codec.
func NewGoccy() *Goccy { return &Goccy{} }

// Pretty decodes s as JSON and re-encodes it two-space indented, ending with
// a newline. Decode failure is surfaced as an error so the caller falls back
// to the original content.
func (Goccy) Pretty(s string) (string, error) {
	var v interface{}
	if err := gojson.Unmarshal([]byte(s), &v); err != nil {
		return "", err
	}
	b, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

// Minify decodes s as JSON and re-encodes it as compact single-line JSON
// with no trailing newline.
func (Goccy) Minify(s string) (string, error) {
	var v interface{}
	if err := gojson.Unmarshal([]byte(s), &v); err != nil {
		return "", err
	}
	b, err := gojson.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
