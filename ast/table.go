package ast

import "strings"

// Align is a table column's alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TableRow is an ordered sequence of cell strings. It is a leaf for generic
// container traversal: Table owns TableRows as children, but cells are plain
// strings, not Nodes, so traversal never descends into them.
type TableRow struct {
	Cells []string
}

func (r *TableRow) Kind() Kind { return KindTableRow }

func (r *TableRow) PreSpace(out []byte, prev Node) []byte { return out }

// Build renders this row standalone: "| cell | cell |\n", each column padded
// only to its own cell's width (no cross-row alignment context). Table.Build
// is what actually renders a table with proper column alignment; this exists
// so TableRow satisfies Node on its own, e.g. when returned in isolation by a
// query.
func (r *TableRow) Build(out []byte) []byte {
	for _, cell := range r.Cells {
		out = append(out, "| "...)
		out = append(out, cell...)
		out = append(out, ' ')
	}
	out = append(out, "|\n"...)
	return out
}

// Cell returns the cell at index i, or "" if out of range.
func (r *TableRow) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// Table is a vector of column alignments and an ordered sequence of rows.
// Row 0 is the header row.
type Table struct {
	Aligns []Align
	Rows   []*TableRow
}

func (t *Table) Kind() Kind { return KindTable }

func (t *Table) NodeChildren() []Node {
	out := make([]Node, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r
	}
	return out
}

func (t *Table) WithChildren(children []Node) Container {
	rows := make([]*TableRow, 0, len(children))
	for _, c := range children {
		if r, ok := c.(*TableRow); ok {
			rows = append(rows, r)
		}
	}
	return &Table{Aligns: append([]Align{}, t.Aligns...), Rows: rows}
}

func (t *Table) PreSpace(out []byte, prev Node) []byte {
	return defaultPreSpace(out, prev)
}

// colSize reports the number of aligned columns.
func (t *Table) colSize() int { return len(t.Aligns) }

// Build renders the full table: header row, alignment separator row, then
// each remaining row, all padded to per-column widths. Ragged cells beyond
// colSize are appended as additional "| cell" segments without padding.
func (t *Table) Build(out []byte) []byte {
	widths := t.columnWidths()

	for i, row := range t.Rows {
		out = t.buildRow(out, row, widths)
		if i == 0 {
			out = t.buildSeparator(out, widths)
		}
	}
	return out
}

func (t *Table) columnWidths() []int {
	n := t.colSize()
	widths := make([]int, n)
	for i := range widths {
		widths[i] = 1
	}
	for _, row := range t.Rows {
		for i := 0; i < n && i < len(row.Cells); i++ {
			if l := len(row.Cells[i]); l > widths[i] {
				widths[i] = l
			}
		}
	}
	return widths
}

func (t *Table) buildRow(out []byte, row *TableRow, widths []int) []byte {
	n := t.colSize()
	for i := 0; i < n; i++ {
		cell := ""
		if i < len(row.Cells) {
			cell = row.Cells[i]
		}
		out = append(out, '|', ' ')
		out = append(out, padCell(cell, widths[i], t.alignOf(i))...)
		out = append(out, ' ')
	}
	out = append(out, '|')
	for i := n; i < len(row.Cells); i++ {
		out = append(out, ' ', '|', ' ')
		out = append(out, row.Cells[i]...)
	}
	out = append(out, '\n')
	return out
}

func (t *Table) buildSeparator(out []byte, widths []int) []byte {
	for i, w := range widths {
		out = append(out, '|')
		out = append(out, separatorCell(w, t.alignOf(i))...)
	}
	out = append(out, "|\n"...)
	return out
}

func (t *Table) alignOf(i int) Align {
	if i < 0 || i >= len(t.Aligns) {
		return AlignLeft
	}
	return t.Aligns[i]
}

func padCell(cell string, width int, align Align) string {
	pad := width - len(cell)
	if pad <= 0 {
		return cell
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + cell
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", right)
	default:
		return cell + strings.Repeat(" ", pad)
	}
}

// separatorCell builds the "-----" (width+2 dashes) segment with ':'
// alignment markers, e.g. ":---:" for center and "----:" for right at width 3.
func separatorCell(width int, align Align) string {
	dashes := width + 2
	switch align {
	case AlignCenter:
		return ":" + strings.Repeat("-", dashes-2) + ":"
	case AlignRight:
		return strings.Repeat("-", dashes-1) + ":"
	default:
		return strings.Repeat("-", dashes)
	}
}

// Row returns the row at index i. Negative or out-of-range indices yield an
// empty row (never an error).
func (t *Table) Row(i int) *TableRow {
	if i < 0 || i >= len(t.Rows) {
		return &TableRow{}
	}
	return t.Rows[i]
}

// RowByName returns the first row whose head cell equals name (searched
// including the header row). Not found yields an empty row.
func (t *Table) RowByName(name string) *TableRow {
	for _, r := range t.Rows {
		if len(r.Cells) > 0 && r.Cells[0] == name {
			return r
		}
	}
	return &TableRow{}
}

// columnIndexOf returns the index of the header-row cell equal to name, or
// -1 if not found.
func (t *Table) columnIndexOf(name string) int {
	if len(t.Rows) == 0 {
		return -1
	}
	header := t.Rows[0]
	for i, c := range header.Cells {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the cell at (colIdx, rowIdx). Any miss yields "".
func (t *Table) Cell(colIdx, rowIdx int) string {
	return t.Row(rowIdx).Cell(colIdx)
}

// CellByRowName returns the cell at (colIdx, rowName). Any miss yields "".
func (t *Table) CellByRowName(colIdx int, rowName string) string {
	row := t.RowByName(rowName)
	if len(row.Cells) == 0 {
		return ""
	}
	return row.Cell(colIdx)
}

// CellByNames returns the cell at (colName, rowName). Lookup is
// column-first: colName addresses the column via the header row, rowName
// addresses the row via its own first cell. Any miss yields "".
func (t *Table) CellByNames(colName, rowName string) string {
	colIdx := t.columnIndexOf(colName)
	if colIdx < 0 {
		return ""
	}
	return t.CellByRowName(colIdx, rowName)
}

// Updated returns a new Table with the cell at (col, row) set to value.
// If row == 0, Aligns is padded with AlignLeft to at least col+1. The target
// row is padded with empty cells to col+1, value assigned, then trailing
// empty cells trimmed. If row is past the current row count, blank rows are
// inserted to reach it.
func (t *Table) Updated(col, row int, value string) *Table {
	aligns := append([]Align{}, t.Aligns...)
	if row == 0 {
		for len(aligns) <= col {
			aligns = append(aligns, AlignLeft)
		}
	}

	rows := make([]*TableRow, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = &TableRow{Cells: append([]string{}, r.Cells...)}
	}
	for len(rows) <= row {
		rows = append(rows, &TableRow{})
	}

	cells := append([]string{}, rows[row].Cells...)
	for len(cells) <= col {
		cells = append(cells, "")
	}
	cells[col] = value
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	rows[row] = &TableRow{Cells: cells}

	return &Table{Aligns: aligns, Rows: rows}
}

// UpdatedByRowName sets the cell at (col, rowName), inserting a new row
// (with rowName as its first cell) if rowName does not already match a row.
func (t *Table) UpdatedByRowName(col int, rowName, value string) *Table {
	for i, r := range t.Rows {
		if len(r.Cells) > 0 && r.Cells[0] == rowName {
			return t.Updated(col, i, value)
		}
	}
	newRowIdx := len(t.Rows)
	withName := t.Updated(0, newRowIdx, rowName)
	return withName.Updated(col, newRowIdx, value)
}

// UpdatedByNames sets the cell at (colName, rowName), inserting a new header
// column named colName if it does not already exist, and/or a new row named
// rowName if it does not already exist.
func (t *Table) UpdatedByNames(colName, rowName, value string) *Table {
	colIdx := t.columnIndexOf(colName)
	if colIdx < 0 {
		colIdx = t.colSize()
		withHeader := t.Updated(colIdx, 0, colName)
		return withHeader.UpdatedByRowName(colIdx, rowName, value)
	}
	return t.UpdatedByRowName(colIdx, rowName, value)
}
