// Package mdparse implements the document parser's four-pass pipeline
// (§4.E): structural segmentation, header extraction, table refinement, and
// header treeification, followed by the organization pass.
package mdparse

import (
	"regexp"
	"strings"

	"github.com/gomarkd/markd/ast"
	"github.com/gomarkd/markd/internal/linkref"
)

// fenceCloseRE finds a line consisting solely of "```" followed by a newline
// or end of input, used to locate the closing fence of a code block.
var fenceCloseRE = regexp.MustCompile("(?m)^```(\n|$)")

// segmentStructure runs pass 1: a left-to-right scan that splits text into
// tentative {Comment, Code, LinkRef, Paragraph} nodes. Constructs that look
// like a comment/fence/link-ref but fail to parse fall back into the
// surrounding paragraph text rather than losing content (§7).
func segmentStructure(text string) []ast.Node {
	var out []ast.Node
	paraStart := 0
	pos := 0

	flush := func(end int) {
		if end <= paraStart {
			return
		}
		raw := text[paraStart:end]
		if strings.TrimSpace(raw) != "" {
			out = append(out, &ast.Paragraph{Text: raw})
		}
	}

	for pos < len(text) {
		atLineStart := pos == 0 || text[pos-1] == '\n'

		if strings.HasPrefix(text[pos:], "<!--") {
			if end, body, ok := tryParseComment(text, pos); ok {
				flush(pos)
				out = append(out, &ast.Comment{Body: body})
				pos = end
				paraStart = pos
				continue
			}
		}

		if atLineStart && strings.HasPrefix(text[pos:], "```") {
			if end, lang, body, ok := tryParseFence(text, pos); ok {
				flush(pos)
				out = append(out, &ast.Code{Language: lang, Content: body})
				pos = end
				paraStart = pos
				continue
			}
		}

		if atLineStart {
			if end, lr, ok := tryParseLinkRefLine(text, pos); ok {
				flush(pos)
				out = append(out, lr)
				pos = end
				paraStart = pos
				continue
			}
		}

		if atLineStart {
			if end, blank := lineBounds(text, pos); blank {
				flush(pos)
				pos = end
				paraStart = pos
				continue
			}
		}

		pos++
	}

	flush(len(text))
	return out
}

// lineBounds returns the index just past the line starting at pos (including
// its newline, if any) and whether that line is blank (empty or whitespace
// only).
func lineBounds(text string, pos int) (end int, blank bool) {
	nl := strings.IndexByte(text[pos:], '\n')
	var lineEnd int
	if nl < 0 {
		lineEnd = len(text)
		end = lineEnd
	} else {
		lineEnd = pos + nl
		end = lineEnd + 1
	}
	return end, strings.TrimSpace(text[pos:lineEnd]) == ""
}

// tryParseComment parses an HTML-style comment starting at pos (which must
// point at "<!--"). Matching spans newlines and stops at the first "-->".
func tryParseComment(text string, pos int) (end int, body string, ok bool) {
	closeIdx := strings.Index(text[pos+4:], "-->")
	if closeIdx < 0 {
		return 0, "", false
	}
	bodyEnd := pos + 4 + closeIdx
	return bodyEnd + 3, text[pos+4 : bodyEnd], true
}

// tryParseFence parses a fenced code block starting at pos (which must point
// at a line-initial "```"). Returns false if no closing fence is found.
func tryParseFence(text string, pos int) (end int, lang, body string, ok bool) {
	nl := strings.IndexByte(text[pos+3:], '\n')
	if nl < 0 {
		return 0, "", "", false
	}
	lang = text[pos+3 : pos+3+nl]
	bodyStart := pos + 3 + nl + 1

	loc := fenceCloseRE.FindStringIndex(text[bodyStart:])
	if loc == nil {
		return 0, "", "", false
	}
	body = text[bodyStart : bodyStart+loc[0]]
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	if body == "" {
		body = "\n"
	}
	return bodyStart + loc[1], lang, body, true
}

// tryParseLinkRefLine parses the single line starting at pos (which must be
// at a line start) as a LinkRef definition.
func tryParseLinkRefLine(text string, pos int) (end int, lr *ast.LinkRef, ok bool) {
	nl := strings.IndexByte(text[pos:], '\n')
	var lineEnd, next int
	if nl < 0 {
		lineEnd = len(text)
		next = lineEnd
	} else {
		lineEnd = pos + nl
		next = lineEnd + 1
	}
	ref, parsed := linkref.Parse(text[pos:lineEnd])
	if !parsed {
		return 0, nil, false
	}
	return next, ref, true
}
