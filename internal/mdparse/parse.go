package mdparse

import (
	"github.com/gomarkd/markd/ast"
	"github.com/gomarkd/markd/internal/linkref"
	"github.com/gomarkd/markd/internal/tableparse"
)

// Options controls document-level parsing behavior.
type Options struct {
	// SortLinkRefs enables the organization pass's LinkRef canonicalization
	// (dedupe-by-ref plus lexicographic sort). Disabling it preserves
	// original order and duplicates verbatim.
	SortLinkRefs bool
}

// DefaultOptions returns the conventional parse configuration.
func DefaultOptions() Options {
	return Options{SortLinkRefs: true}
}

// Parse runs the full four-pass pipeline plus the organization pass and
// returns the resulting Document.
func Parse(text string, opts Options) *ast.Document {
	flat := segmentStructure(text)
	flat = refineHeaders(flat)
	flat = refineTables(flat)

	pos := 0
	children := treeify(flat, 0, &pos)
	root := &ast.Header{Level: 0, Title: "", Children: children}
	organized := organizeHeader(root, opts.SortLinkRefs)

	return &ast.Document{Children: organized.Children}
}

// refineHeaders applies pass 2 to every Paragraph in the flat sequence,
// leaving Comment, Code and LinkRef nodes untouched.
func refineHeaders(nodes []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		p, ok := n.(*ast.Paragraph)
		if !ok {
			out = append(out, n)
			continue
		}
		out = append(out, splitHeaders(p.Text)...)
	}
	return out
}

// refineTables applies pass 3: any Paragraph that satisfies the table
// grammar is replaced by the parsed Table.
func refineTables(nodes []ast.Node) []ast.Node {
	out := make([]ast.Node, len(nodes))
	for i, n := range nodes {
		p, ok := n.(*ast.Paragraph)
		if !ok {
			out[i] = n
			continue
		}
		if table, ok := tableparse.TryParse(p.Text); ok {
			out[i] = table
			continue
		}
		out[i] = n
	}
	return out
}

// organizeHeader recursively applies the organization pass to h and all of
// its descendant Headers: children are reordered into (non-Header,
// non-LinkRef content) then (canonicalized LinkRefs) then (Headers,
// themselves recursively organized).
func organizeHeader(h *ast.Header, sortLinkRefs bool) *ast.Header {
	return &ast.Header{Level: h.Level, Title: h.Title, Children: organizeChildren(h.Children, sortLinkRefs)}
}

func organizeChildren(children []ast.Node, sortLinkRefs bool) []ast.Node {
	var others []ast.Node
	var refs []*ast.LinkRef
	var headers []*ast.Header

	for _, c := range children {
		switch v := c.(type) {
		case *ast.LinkRef:
			refs = append(refs, v)
		case *ast.Header:
			headers = append(headers, organizeHeader(v, sortLinkRefs))
		default:
			others = append(others, c)
		}
	}

	refs = linkref.Canonicalize(refs, sortLinkRefs)

	out := make([]ast.Node, 0, len(others)+len(refs)+len(headers))
	out = append(out, others...)
	for _, r := range refs {
		out = append(out, r)
	}
	for _, h := range headers {
		out = append(out, h)
	}
	return out
}
