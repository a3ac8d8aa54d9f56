package table

import (
	"github.com/pagecraft/pages-go/lib/formula"
	"go.uber.org/zap"
)

// CellUpdate is the outcome of recalculating one formula cell, suitable for
// persistence and broadcast to editing surfaces.
type CellUpdate struct {
	TablePos string `json:"tablePos"`
	Col      int    `json:"col"`
	Row      int    `json:"row"`
	IsTotal  bool   `json:"isTotal,omitempty"`
	Display  string `json:"display"`
	Error    string `json:"error,omitempty"`
}

// Recalculate re-evaluates every formula cell of one table against a snapshot
// taken on entry and writes the resulting display values back through the
// accessor. Recalculation is per-cell isolated: a failing cell gets its error
// token, siblings still compute. Cells are visited in row-major order and the
// whole pass is synchronous, so by the time it returns every dependent cell
// holds its new value.
func Recalculate(acc Accessor, logger *zap.SugaredLogger) []CellUpdate {
	snap := Snapshot(acc)
	pass := formula.NewPass(snap)

	var updates []CellUpdate

	for row := 0; row < acc.DataRowCount(); row++ {
		for col := 0; col < acc.ColumnCount(); col++ {
			cell, ok := acc.GetCell(col, row)
			if !ok || cell.Formula == "" {
				continue
			}

			at := formula.CellAddr{Col: col, Row: row}
			v, err := pass.Evaluate(cell.Formula, at)
			display := formula.Display(v, err, cell.Format)
			acc.SetCellDisplayValue(col, row, display)

			update := CellUpdate{
				TablePos: acc.Position(),
				Col:      col,
				Row:      row,
				Display:  display,
			}
			if err != nil {
				update.Error = err.Error()
				logger.Debugw("formula cell failed",
					"table", acc.Position(),
					"ref", formula.EncodeRef(col, row),
					"err", err)
			}
			updates = append(updates, update)
		}
	}

	for idx := 0; idx < acc.TotalRowCount(); idx++ {
		for col := 0; col < acc.ColumnCount(); col++ {
			cell, ok := acc.GetTotalCell(col, idx)
			if !ok || cell.Formula == "" {
				continue
			}

			// total rows sit outside the addressable row sequence; a negative
			// row keeps their memo entries from colliding with data cells.
			at := formula.CellAddr{Col: col, Row: -(idx + 1)}
			v, err := pass.Evaluate(cell.Formula, at)
			display := formula.Display(v, err, cell.Format)
			acc.SetTotalCellDisplayValue(col, idx, display)

			update := CellUpdate{
				TablePos: acc.Position(),
				Col:      col,
				Row:      idx,
				IsTotal:  true,
				Display:  display,
			}
			if err != nil {
				update.Error = err.Error()
				logger.Debugw("total row formula failed",
					"table", acc.Position(),
					"col", col,
					"totalRow", idx,
					"err", err)
			}
			updates = append(updates, update)
		}
	}

	return updates
}
