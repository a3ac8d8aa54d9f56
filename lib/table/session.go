package table

import (
	"go.uber.org/zap"

	"github.com/pagecraft/pages-go/lib/formula"
)

// Session owns the singleton formula mode of one editing surface and applies
// the machine's outcomes to the composing table through its accessor. All
// handlers are synchronous: when one returns, every dependent cell of the
// affected table has been recomputed.
type Session struct {
	mode   *Mode
	acc    Accessor // accessor of the composing table, nil while Idle
	logger *zap.SugaredLogger
}

func NewSession(logger *zap.SugaredLogger) *Session {
	return &Session{
		mode:   NewMode(),
		logger: logger,
	}
}

func (s *Session) Composing() bool {
	return s.mode.State() == Composing
}

// CapturesInput reports whether host document events must be intercepted.
func (s *Session) CapturesInput() bool {
	return s.mode.CapturesInput()
}

// CurrentFormula returns the accumulated formula text while composing.
func (s *Session) CurrentFormula() (string, bool) {
	comp, ok := s.mode.Current()
	if !ok {
		return "", false
	}
	return comp.Formula, true
}

// BeginFormula starts composing on a cell, cancelling any prior composition
// first. A cell that already holds a formula is re-opened for edit.
func (s *Session) BeginFormula(acc Accessor, col, row int) bool {
	if s.Composing() {
		s.cancel()
	}

	cell, ok := acc.GetCell(col, row)
	if !ok {
		return false
	}

	s.acc = acc
	s.mode.Start(acc.Position(), col, row, cell.Formula, cell.Value)
	return true
}

// HandleCellClick routes a pointer click on a table cell. Clicks within the
// composing table append a reference; clicks in a different table count as
// clicking outside and commit the composition.
func (s *Session) HandleCellClick(acc Accessor, col, row int) []CellUpdate {
	if !s.Composing() {
		return nil
	}
	if acc.Position() != s.acc.Position() {
		return s.HandleClickOutside()
	}
	s.mode.ClickCell(col, row)
	return nil
}

// HandleDoubleClick cancels any active composition (no save) and immediately
// starts a new one on the clicked cell.
func (s *Session) HandleDoubleClick(acc Accessor, col, row int) bool {
	return s.BeginFormula(acc, col, row)
}

// HandleOperator appends an operator key pressed outside the formula input.
func (s *Session) HandleOperator(op byte) {
	s.mode.TypeOperator(op)
}

// HandleInput appends text typed into the formula's own input surface.
func (s *Session) HandleInput(text string) {
	s.mode.Append(text)
}

// HandleEnter commits the composition and recalculates the affected table.
func (s *Session) HandleEnter() []CellUpdate {
	return s.commit()
}

// HandleClickOutside treats a click outside the table as an implicit Enter.
func (s *Session) HandleClickOutside() []CellUpdate {
	return s.commit()
}

// HandleEscape discards the composition and restores the previous value.
func (s *Session) HandleEscape() {
	s.cancel()
}

// Preview evaluates the in-progress formula against the table snapshot for
// the formula-bar preview. Failures show their display token; a formula with
// no content yet previews as empty.
func (s *Session) Preview() string {
	comp, ok := s.mode.Current()
	if !ok {
		return ""
	}

	v, err := formula.Evaluate(comp.Formula, formula.CellAddr{Col: comp.Col, Row: comp.Row}, Snapshot(s.acc))
	if err != nil {
		if kind, ok := formula.KindOf(err); ok &&
			(kind == formula.KindEmptyFormula || kind == formula.KindInvalidFormula) {
			return ""
		}
		return formula.DisplayToken(err)
	}

	cell, _ := s.acc.GetCell(comp.Col, comp.Row)
	return formula.FormatValue(v, cell.Format)
}

func (s *Session) commit() []CellUpdate {
	comp, action := s.mode.Commit()
	acc := s.acc
	s.acc = nil

	switch action {
	case CommitSet:
		acc.SetCellFormula(comp.Col, comp.Row, comp.Formula)
	case CommitClear:
		acc.SetCellFormula(comp.Col, comp.Row, "")
		acc.SetCellDisplayValue(comp.Col, comp.Row, "")
	default:
		return nil
	}

	return Recalculate(acc, s.logger)
}

func (s *Session) cancel() {
	comp, ok := s.mode.Cancel()
	if !ok {
		return
	}

	// the composing cell's display may hold a stale placeholder; put the
	// pre-composition value back. Cells that kept their formula get their
	// display refreshed on the next recalculation anyway.
	if s.acc != nil {
		s.acc.SetCellDisplayValue(comp.Col, comp.Row, comp.PreviousValue)
	}
	s.acc = nil
}
