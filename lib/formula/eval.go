package formula

import (
	"strconv"
	"strings"
)

// CellAddr identifies a cell within one table's data-row coordinate space.
// Total-row cells are addressed with negative rows by the recalculation
// driver; references can never produce those, so total rows stay outside the
// addressable sequence.
type CellAddr struct {
	Col int
	Row int
}

// CellData is the snapshot view of a single cell.
type CellData struct {
	Value   string
	Formula string
}

// Snapshot is a read-only view of one table's data cells, taken at the moment
// evaluation starts. Formulas are scoped to a single table, so a snapshot
// never spans tables.
type Snapshot interface {
	Cell(addr CellAddr) (CellData, bool)
}

// Pass evaluates formulas against one snapshot, memoizing resolved cells so a
// recalculation over many formula cells does not recompute shared inputs.
type Pass struct {
	snap Snapshot
	memo map[CellAddr]float64
}

func NewPass(snap Snapshot) *Pass {
	return &Pass{
		snap: snap,
		memo: make(map[CellAddr]float64),
	}
}

// Evaluate computes the numeric result of the formula hosted at the given
// cell. The raw string may be an in-progress formula; it is cleaned first.
func (p *Pass) Evaluate(raw string, at CellAddr) (float64, error) {
	cleaned, err := Clean(raw)
	if err != nil {
		return 0, err
	}

	ev := &evaluator{
		pass: p,
		path: make(map[CellAddr]bool),
	}
	return ev.evalFormula(cleaned, at)
}

// Evaluate is the one-shot form of Pass.Evaluate.
func Evaluate(raw string, at CellAddr, snap Snapshot) (float64, error) {
	return NewPass(snap).Evaluate(raw, at)
}

type evaluator struct {
	pass *Pass
	path map[CellAddr]bool // cells on the current resolution path
}

func (ev *evaluator) evalFormula(cleaned string, at CellAddr) (float64, error) {
	if v, ok := ev.pass.memo[at]; ok {
		return v, nil
	}
	if ev.path[at] {
		return 0, NewCircularReference(EncodeRef(at.Col, at.Row))
	}
	ev.path[at] = true
	defer delete(ev.path, at)

	root, err := parseExpr(strings.TrimPrefix(cleaned, "="))
	if err != nil {
		return 0, err
	}

	v, err := root.eval(ev)
	if err != nil {
		return 0, err
	}

	ev.pass.memo[at] = v
	return v, nil
}

func (ev *evaluator) resolveRef(n *refNode) (float64, error) {
	addr := CellAddr{Col: n.col, Row: n.row}

	cell, ok := ev.pass.snap.Cell(addr)
	if !ok {
		return 0, NewInvalidOperand("reference " + n.label + " is out of range")
	}

	if cell.Formula != "" {
		cleaned, err := Clean(cell.Formula)
		if err != nil {
			return 0, err
		}
		return ev.evalFormula(cleaned, addr)
	}

	v, err := coerceNumeric(cell.Value)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// currency noise stripped before numeric coercion, matching what formatted
// display values contain.
var numericNoise = strings.NewReplacer("$", "", "€", "", "£", "", "¥", "", ",", "")

// coerceNumeric converts cell text to a number using permissive spreadsheet
// conventions: empty text counts as zero, formatted numbers ("$1,200.50")
// coerce to their value, wholly non-numeric text is an invalid operand.
func coerceNumeric(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, nil
	}

	cleaned := strings.TrimSpace(numericNoise.Replace(trimmed))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, NewInvalidOperand("'" + text + "' is not numeric")
	}
	return v, nil
}
