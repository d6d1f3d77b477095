package ast

import "strings"

// JSONCodec is the capability a host environment injects to let fenced code
// blocks be pretty-printed or minified during serialization. The core never
// imports a JSON library itself; Pretty/Minify are called only when a Code
// node's language matches one of the recognized JSON dialects.
type JSONCodec interface {
	// Pretty returns an indented form of s ending with a newline.
	Pretty(s string) (string, error)
	// Minify returns a single-line form of s with no trailing newline.
	Minify(s string) (string, error)
}

// Config is the process-wide formatting configuration passed through all
// Build calls. It is currently a placeholder for future output-style options
// (atx vs setext, minification) plus the injected JSONCodec.
type Config struct {
	Codec JSONCodec
}

// FormatCfg is the process-wide singleton configuration used by Build.
var FormatCfg = &Config{}

// jsonLinesLanguages are the fenced-code languages eligible for per-line minify
// post-processing (§4.D).
var jsonLinesLanguages = map[string]bool{
	"jsonline":  true,
	"jsonlines": true,
	"json line": true,
	"json lines": true,
}

// Code is a fenced code block. Content always ends with a single newline.
type Code struct {
	Language string
	Content  string
}

func (c *Code) Kind() Kind { return KindCode }

func (c *Code) PreSpace(out []byte, prev Node) []byte {
	return defaultPreSpace(out, prev)
}

func (c *Code) Build(out []byte) []byte {
	out = append(out, "```"...)
	out = append(out, c.Language...)
	out = append(out, '\n')
	out = append(out, c.processedBody()...)
	out = append(out, "```\n"...)
	return out
}

// processedBody applies JSON pretty/minify post-processing for recognized
// languages via the injected codec. On any failure, or when no codec is
// configured, the original content is returned unchanged.
func (c *Code) processedBody() string {
	codec := FormatCfg.Codec
	if codec == nil {
		return c.Content
	}
	switch {
	case c.Language == "json":
		if pretty, err := codec.Pretty(c.Content); err == nil {
			return pretty
		}
		return c.Content
	case jsonLinesLanguages[c.Language]:
		return minifyLines(c.Content, codec)
	default:
		return c.Content
	}
}

// minifyLines minifies each line of content (blank lines included)
// independently via codec.Minify, retaining any line the codec rejects
// verbatim. The result always
// ends with a single newline.
func minifyLines(content string, codec JSONCodec) string {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		if minified, err := codec.Minify(line); err == nil {
			out[i] = minified
		} else {
			out[i] = line
		}
	}
	return strings.Join(out, "\n") + "\n"
}
