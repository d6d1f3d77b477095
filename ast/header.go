package ast

import "strings"

const underlineWidth = 78

// Header is a section with a level in [0,9], a title, and ordered children.
// Level 0 is reserved for the document root equivalent and is never rendered
// with a title line; levels 1-9 are user-visible headings.
type Header struct {
	Level    int
	Title    string
	Children []Node
}

func (h *Header) Kind() Kind { return KindHeader }

func (h *Header) NodeChildren() []Node { return h.Children }

func (h *Header) WithChildren(children []Node) Container {
	return &Header{Level: h.Level, Title: h.Title, Children: children}
}

func (h *Header) PreSpace(out []byte, prev Node) []byte {
	return defaultPreSpace(out, prev)
}

func (h *Header) Build(out []byte) []byte {
	out = h.buildTitle(out)
	// A visible title counts as the first child's predecessor, so the first
	// child is separated from the title line by a blank line.
	var prev Node
	if h.Level > 0 {
		prev = h
	}
	for _, c := range h.Children {
		out = c.PreSpace(out, prev)
		out = c.Build(out)
		prev = c
	}
	return out
}

// buildTitle appends the title line (and underline, for setext levels) for
// this header. Level 0 headers emit nothing here.
func (h *Header) buildTitle(out []byte) []byte {
	switch {
	case h.Level == 0:
		return out
	case h.Level == 1:
		out = append(out, h.Title...)
		out = append(out, '\n')
		out = append(out, strings.Repeat("=", underlineWidth)...)
		out = append(out, '\n')
	case h.Level == 2:
		out = append(out, h.Title...)
		out = append(out, '\n')
		out = append(out, strings.Repeat("-", underlineWidth)...)
		out = append(out, '\n')
	default:
		out = append(out, strings.Repeat("#", h.Level)...)
		out = append(out, ' ')
		out = append(out, h.Title...)
		out = append(out, '\n')
	}
	return out
}

// Prepend adds a new child Header one level deeper than h, with the given
// title and inner children. It is placed before any existing Header children
// at that same new level; Headers of other levels (and non-Header children)
// keep their relative position. If an identical Header (same level and
// title) already exists at that position, no duplicate is added and h is
// returned unchanged (a shallow copy is still produced, consistent with
// value-like semantics).
func (h *Header) Prepend(title string, inner ...Node) *Header {
	newLevel := h.Level + 1

	firstHeaderIdx := len(h.Children)
	for i, c := range h.Children {
		if hc, ok := c.(*Header); ok && hc.Level == newLevel {
			firstHeaderIdx = i
			break
		}
	}

	for i := firstHeaderIdx; i < len(h.Children); i++ {
		if hc, ok := h.Children[i].(*Header); ok && hc.Level == newLevel && hc.Title == title {
			return &Header{Level: h.Level, Title: h.Title, Children: append([]Node{}, h.Children...)}
		}
	}

	newChild := &Header{Level: newLevel, Title: title, Children: append([]Node{}, inner...)}

	children := make([]Node, 0, len(h.Children)+1)
	children = append(children, h.Children[:firstHeaderIdx]...)
	children = append(children, newChild)
	children = append(children, h.Children[firstHeaderIdx:]...)

	return &Header{Level: h.Level, Title: h.Title, Children: children}
}
