// Package codec provides implementations of the JSON codec capability that
// ast.Code nodes use to pretty-print or minify fenced "json"/"jsonlines"
// blocks during serialization. The core ast package never imports a JSON
// library directly; callers inject one of these (or their own) into
// ast.FormatCfg.Codec.
package codec

// Noop is the zero-dependency default codec: both operations are the
// identity transform and never fail, so Code nodes round-trip unchanged.
type Noop struct{}

func (Noop) Pretty(s string) (string, error) { return s, nil }

func (Noop) Minify(s string) (string, error) { return s, nil }
