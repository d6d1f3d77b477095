// Package markd parses Markdown text into a structured, mutable node tree,
// serializes that tree back to text, and evaluates MarkdQL path expressions
// against it.
package markd

import (
	"github.com/gomarkd/markd/ast"
	"github.com/gomarkd/markd/internal/mdparse"
	"github.com/gomarkd/markd/query"
)

// ParseOptions controls document-level parsing behavior.
type ParseOptions struct {
	// SortLinkRefs enables the organization pass's LinkRef canonicalization
	// (dedupe-by-ref plus lexicographic sort). Disabled, original order and
	// duplicates are preserved verbatim. DefaultParseOptions sets it to true;
	// the zero value leaves it disabled.
	SortLinkRefs bool
}

// DefaultParseOptions returns the conventional parse configuration.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{SortLinkRefs: true}
}

// Parse runs the document parser's four passes plus the organization pass
// and returns the resulting Document node.
func Parse(text string, opts ParseOptions) *ast.Document {
	return mdparse.Parse(text, mdparse.Options{SortLinkRefs: opts.SortLinkRefs})
}

// Build serializes node back to Markdown text, using the process-wide
// ast.FormatCfg for any injected capabilities (the JSON codec).
func Build(node ast.Node) string {
	return string(node.Build(nil))
}

// Query evaluates a MarkdQL expression against root and returns the matching
// sequence of nodes. It returns *query.UnrecognizedQueryError if expr cannot
// be tokenized, or *query.InvalidRegexError if a regex token fails to
// compile.
func Query(expr string, root ast.Node) ([]ast.Node, error) {
	return query.Query(expr, root)
}
