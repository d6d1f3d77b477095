package ast

import "testing"

func sampleTable() *Table {
	return &Table{
		Aligns: []Align{AlignLeft, AlignCenter, AlignRight, AlignRight},
		Rows: []*TableRow{
			{Cells: []string{"Id1", "Id2", "Id3", "Name"}},
			{Cells: []string{"1", "1", "1", "One"}},
			{Cells: []string{"22", "22", "22", "Two"}},
		},
	}
}

func TestTableBuild_Alignment(t *testing.T) {
	// Column widths follow "max(1, longest cell in that column)" uniformly:
	// col3's longest cell is its header "Name" (4 chars), so width is 4.
	table := sampleTable()
	out := string(table.Build(nil))
	wantFirstTwoLines := "| Id1 | Id2 | Id3 | Name |\n|-----|:---:|----:|-----:|\n"
	if len(out) < len(wantFirstTwoLines) || out[:len(wantFirstTwoLines)] != wantFirstTwoLines {
		t.Errorf("got first lines %q, want %q", out[:len(wantFirstTwoLines)], wantFirstTwoLines)
	}
}

func TestTableBuild_RaggedRow(t *testing.T) {
	table := &Table{
		Aligns: []Align{AlignLeft, AlignLeft},
		Rows: []*TableRow{
			{Cells: []string{"A", "B"}},
			{Cells: []string{"1", "2", "3"}},
		},
	}
	out := string(table.Build(nil))
	want := "| A | B |\n|---|---|\n| 1 | 2 | | 3\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestTableAccessors(t *testing.T) {
	table := sampleTable()

	if got := table.Cell(1, 1); got != "1" {
		t.Errorf("Cell(1,1) = %q", got)
	}
	if got := table.Cell(99, 99); got != "" {
		t.Errorf("out-of-range Cell should be empty, got %q", got)
	}
	if got := table.Row(-1); len(got.Cells) != 0 {
		t.Errorf("negative Row should be empty, got %#v", got)
	}
	if got := table.RowByName("22"); got.Cell(0) != "22" {
		t.Errorf("RowByName(22) = %#v", got)
	}
	if got := table.RowByName("missing"); len(got.Cells) != 0 {
		t.Errorf("RowByName(missing) should be empty, got %#v", got)
	}
	if got := table.CellByNames("Name", "22"); got != "Two" {
		t.Errorf("CellByNames(Name,22) = %q", got)
	}
	if got := table.CellByNames("Missing", "22"); got != "" {
		t.Errorf("CellByNames with missing column should be empty, got %q", got)
	}
}

func TestTableUpdated_ExistingCell(t *testing.T) {
	table := sampleTable()
	updated := table.Updated(3, 1, "Uno")
	if got := updated.Cell(3, 1); got != "Uno" {
		t.Errorf("Cell(3,1) = %q, want Uno", got)
	}
	if got := table.Cell(3, 1); got != "One" {
		t.Errorf("original table should be unmodified, got %q", got)
	}
}

func TestTableUpdated_PastRowSizeInsertsBlankRows(t *testing.T) {
	table := &Table{Aligns: []Align{AlignLeft}, Rows: []*TableRow{{Cells: []string{"H"}}}}
	updated := table.Updated(0, 2, "X")
	if len(updated.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(updated.Rows))
	}
	if got := updated.Cell(0, 2); got != "X" {
		t.Errorf("Cell(0,2) = %q", got)
	}
}

func TestTableUpdatedByNames_CreatesColumnAndRow(t *testing.T) {
	table := &Table{
		Aligns: []Align{AlignLeft, AlignLeft},
		Rows: []*TableRow{
			{Cells: []string{"To Do", "Description"}},
			{Cells: []string{"R1", "D1"}},
		},
	}
	updated := table.UpdatedByNames("Description", "R2", "D2")
	if got := updated.CellByNames("Description", "R2"); got != "D2" {
		t.Errorf("CellByNames(Description,R2) = %q", got)
	}

	withNewColumn := table.UpdatedByNames("Owner", "R1", "alice")
	if got := withNewColumn.CellByNames("Owner", "R1"); got != "alice" {
		t.Errorf("CellByNames(Owner,R1) = %q", got)
	}
}
