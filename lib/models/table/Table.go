package table

import "github.com/pagecraft/pages-go/lib/formula"

// Cell is one grid cell. A cell with a formula is formula-derived: its Value
// is always a computed display string, never independently user-edited.
type Cell struct {
	Value   string              `json:"value"`
	Formula string              `json:"formula,omitempty"`
	Format  *formula.CellFormat `json:"format,omitempty"`
}

// Row is one table row. Total rows are excluded from the positional row-index
// sequence used by cell references but may host formulas themselves.
type Row struct {
	Cells   []Cell `json:"cells"`
	IsTotal bool   `json:"isTotal,omitempty"`
}

// Table is a rectangular grid of cells identified by its position within the
// host page. Formula scopes are per table; a formula in one table never
// references cells of another.
type Table struct {
	Rows []Row `json:"rows"`
}

// NewTable creates a table with the given number of data rows and columns.
func NewTable(rows, cols int) *Table {
	t := &Table{Rows: make([]Row, rows)}
	for i := range t.Rows {
		t.Rows[i].Cells = make([]Cell, cols)
	}
	return t
}

// AddTotalRow appends a row flagged as a total row.
func (t *Table) AddTotalRow() *Row {
	cols := t.ColumnCount()
	t.Rows = append(t.Rows, Row{Cells: make([]Cell, cols), IsTotal: true})
	return &t.Rows[len(t.Rows)-1]
}

// InsertDataRow inserts a blank data row before the given absolute row index.
func (t *Table) InsertDataRow(before int) {
	if before < 0 {
		before = 0
	}
	if before > len(t.Rows) {
		before = len(t.Rows)
	}
	row := Row{Cells: make([]Cell, t.ColumnCount())}
	t.Rows = append(t.Rows[:before], append([]Row{row}, t.Rows[before:]...)...)
}

// ColumnCount returns the width of the widest row.
func (t *Table) ColumnCount() int {
	cols := 0
	for _, row := range t.Rows {
		if len(row.Cells) > cols {
			cols = len(row.Cells)
		}
	}
	return cols
}
