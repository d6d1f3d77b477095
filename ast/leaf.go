package ast

import "strings"

// Paragraph is a trimmed text blob. Every non-structural run of Markdown
// text (anything this library does not model structurally) ends up here.
type Paragraph struct {
	Text string
}

func (p *Paragraph) Kind() Kind { return KindParagraph }

func (p *Paragraph) PreSpace(out []byte, prev Node) []byte {
	return defaultPreSpace(out, prev)
}

func (p *Paragraph) Build(out []byte) []byte {
	out = append(out, strings.TrimSpace(p.Text)...)
	out = append(out, '\n')
	return out
}

// Comment is the raw body of an HTML-style comment, without the
// "<!--"/"-->" delimiters.
type Comment struct {
	Body string
}

func (c *Comment) Kind() Kind { return KindComment }

func (c *Comment) PreSpace(out []byte, prev Node) []byte {
	return defaultPreSpace(out, prev)
}

func (c *Comment) Build(out []byte) []byte {
	out = append(out, "<!--"...)
	out = append(out, c.Body...)
	out = append(out, "-->\n"...)
	return out
}

// LinkRef is a reference-link definition: a label, an optional URL, and an
// optional title.
type LinkRef struct {
	Ref   string
	URL   string
	Title string
}

func (l *LinkRef) Kind() Kind { return KindLinkRef }

// PreSpace suppresses the blank line between two consecutive LinkRefs; all
// other predecessors get the default single blank line.
func (l *LinkRef) PreSpace(out []byte, prev Node) []byte {
	if prev != nil && prev.Kind() == KindLinkRef {
		return out
	}
	return defaultPreSpace(out, prev)
}

func (l *LinkRef) Build(out []byte) []byte {
	out = append(out, '[')
	out = append(out, l.Ref...)
	out = append(out, "]:"...)
	if l.URL != "" {
		out = append(out, ' ')
		out = append(out, l.URL...)
	}
	if l.Title != "" {
		out = append(out, ' ', '"')
		out = append(out, escapeLinkRefTitle(l.Title)...)
		out = append(out, '"')
	}
	out = append(out, '\n')
	return out
}

// escapeLinkRefTitle escapes '\' and '"' for embedding in a LinkRef title
// quoted string.
func escapeLinkRefTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
