// Package tableparse implements §4.C's table-detection algorithm: deciding
// whether a Paragraph's text can be reinterpreted as an ast.Table (the pass-3
// "refinement" step of the document parser).
package tableparse

import (
	"regexp"
	"strings"

	"github.com/gomarkd/markd/ast"
)

// alignRowCellRE matches one alignment-row cell: centered, right, or left
// (explicit ':' prefix or plain dashes).
var alignRowCellRE = regexp.MustCompile(`^\s*(:-+:|---+|:--+|-+:)\s*$`)

// TryParse attempts to parse text as a table. ok is false if text does not
// satisfy the table grammar, in which case the caller should keep the
// original Paragraph.
func TryParse(text string) (table *ast.Table, ok bool) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, false
	}

	tokenized := make([][]string, len(lines))
	for i, line := range lines {
		tokenized[i] = dropTrailingWhitespaceCells(tokenizeRow(line))
	}

	if hasLeadingEmptyCell(tokenized[1]) {
		for i := range tokenized {
			tokenized[i] = dropLeadingEmptyCell(tokenized[i])
		}
	}

	aligns, ok := parseAlignRow(tokenized[1])
	if !ok {
		return nil, false
	}

	rows := make([]*ast.TableRow, 0, len(tokenized)-1)
	rows = append(rows, trimRow(tokenized[0]))
	for i := 2; i < len(tokenized); i++ {
		rows = append(rows, trimRow(tokenized[i]))
	}

	return &ast.Table{Aligns: aligns, Rows: rows}, true
}

// splitLines splits text into lines, dropping one trailing empty line caused
// by a final "\n" (Paragraph text may or may not carry one).
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// tokenizeRow splits line into raw cells on '|' not preceded by '\'.
func tokenizeRow(line string) []string {
	var cells []string
	var cur strings.Builder
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		switch {
		case runes[i] == '\\' && i+1 < len(runes):
			cur.WriteRune(runes[i])
			cur.WriteRune(runes[i+1])
			i++
		case runes[i] == '|':
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(runes[i])
		}
	}
	cells = append(cells, cur.String())
	return cells
}

// dropTrailingWhitespaceCells removes trailing cells that are empty or
// whitespace-only, preserving any such cells in the middle.
func dropTrailingWhitespaceCells(cells []string) []string {
	for len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func hasLeadingEmptyCell(cells []string) bool {
	return len(cells) > 0 && strings.TrimSpace(cells[0]) == ""
}

func dropLeadingEmptyCell(cells []string) []string {
	if hasLeadingEmptyCell(cells) {
		return cells[1:]
	}
	return cells
}

// parseAlignRow parses the alignment-marker row. ok is false if any cell
// fails to match the alignment grammar (which leaves fewer alignments than
// the row had cells).
func parseAlignRow(cells []string) ([]ast.Align, bool) {
	aligns := make([]ast.Align, 0, len(cells))
	for _, c := range cells {
		if !alignRowCellRE.MatchString(c) {
			return nil, false
		}
		aligns = append(aligns, alignOf(c))
	}
	return aligns, true
}

func alignOf(cell string) ast.Align {
	trimmed := strings.TrimSpace(cell)
	left := strings.HasPrefix(trimmed, ":")
	right := strings.HasSuffix(trimmed, ":")
	switch {
	case left && right:
		return ast.AlignCenter
	case right:
		return ast.AlignRight
	default:
		return ast.AlignLeft
	}
}

func trimRow(cells []string) *ast.TableRow {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return &ast.TableRow{Cells: out}
}
