package table

import (
	"github.com/pagecraft/pages-go/lib/formula"
	table2 "github.com/pagecraft/pages-go/lib/models/table"
)

// Accessor is the boundary through which the formula engine reads and writes
// table state. Data-row coordinates are zero-based and exclude total rows;
// total-row cells are addressed separately by total index. Implementations
// own the mapping to the host document, the engine never walks a block tree.
type Accessor interface {
	GetCell(col, row int) (table2.Cell, bool)
	GetTotalCell(col, idx int) (table2.Cell, bool)
	SetCellFormula(col, row int, formulaText string)
	SetCellDisplayValue(col, row int, display string)
	SetTotalCellDisplayValue(col, idx int, display string)
	DataRowCount() int
	TotalRowCount() int
	ColumnCount() int
	Position() string
}

// Grid adapts a models/table grid to the Accessor interface. It precomputes
// the data-row and total-row index sequences so reference resolution never
// recomputes offsets against the underlying row list.
type Grid struct {
	pos       string
	tbl       *table2.Table
	dataRows  []int // absolute indices of non-total rows, in order
	totalRows []int // absolute indices of total rows, in order
}

func NewGrid(pos string, tbl *table2.Table) *Grid {
	g := &Grid{pos: pos, tbl: tbl}
	for i := range tbl.Rows {
		if tbl.Rows[i].IsTotal {
			g.totalRows = append(g.totalRows, i)
		} else {
			g.dataRows = append(g.dataRows, i)
		}
	}
	return g
}

func (g *Grid) Position() string {
	return g.pos
}

func (g *Grid) DataRowCount() int {
	return len(g.dataRows)
}

func (g *Grid) TotalRowCount() int {
	return len(g.totalRows)
}

func (g *Grid) ColumnCount() int {
	return g.tbl.ColumnCount()
}

func (g *Grid) GetCell(col, row int) (table2.Cell, bool) {
	cell := g.cellAt(g.dataRows, row, col)
	if cell == nil {
		return table2.Cell{}, false
	}
	return *cell, true
}

func (g *Grid) GetTotalCell(col, idx int) (table2.Cell, bool) {
	cell := g.cellAt(g.totalRows, idx, col)
	if cell == nil {
		return table2.Cell{}, false
	}
	return *cell, true
}

func (g *Grid) SetCellFormula(col, row int, formulaText string) {
	if cell := g.cellAt(g.dataRows, row, col); cell != nil {
		cell.Formula = formulaText
	}
}

func (g *Grid) SetCellDisplayValue(col, row int, display string) {
	if cell := g.cellAt(g.dataRows, row, col); cell != nil {
		cell.Value = display
	}
}

func (g *Grid) SetTotalCellDisplayValue(col, idx int, display string) {
	if cell := g.cellAt(g.totalRows, idx, col); cell != nil {
		cell.Value = display
	}
}

func (g *Grid) cellAt(rows []int, idx, col int) *table2.Cell {
	if idx < 0 || idx >= len(rows) || col < 0 {
		return nil
	}
	row := &g.tbl.Rows[rows[idx]]
	if col >= len(row.Cells) {
		return nil
	}
	return &row.Cells[col]
}

// snapshot is an immutable copy of the accessor's data cells. Evaluation only
// ever sees this copy, so write-backs during recalculation cannot race an
// in-flight resolution.
type snapshot struct {
	cells map[formula.CellAddr]formula.CellData
}

func (s *snapshot) Cell(addr formula.CellAddr) (formula.CellData, bool) {
	data, ok := s.cells[addr]
	return data, ok
}

// Snapshot captures the accessor's data-row cells as a formula.Snapshot.
func Snapshot(acc Accessor) formula.Snapshot {
	s := &snapshot{cells: make(map[formula.CellAddr]formula.CellData)}
	for row := 0; row < acc.DataRowCount(); row++ {
		for col := 0; col < acc.ColumnCount(); col++ {
			cell, ok := acc.GetCell(col, row)
			if !ok {
				continue
			}
			s.cells[formula.CellAddr{Col: col, Row: row}] = formula.CellData{
				Value:   cell.Value,
				Formula: cell.Formula,
			}
		}
	}
	return s
}
