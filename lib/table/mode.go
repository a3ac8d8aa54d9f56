package table

import (
	"strings"

	"github.com/pagecraft/pages-go/lib/formula"
)

// State of the formula-authoring machine. Idle means normal editing; while
// Composing, keyboard and pointer input on the host document is intercepted
// and redirected into formula construction.
type State int

const (
	Idle State = iota
	Composing
)

// Composition is the in-progress formula for one target cell.
type Composition struct {
	TablePos      string
	Col           int
	Row           int
	Formula       string // accumulated text, always starts with '='
	PreviousValue string // restored on cancel
}

// CommitAction is the outcome of committing a composition.
type CommitAction int

const (
	// CommitNone: no composition was active.
	CommitNone CommitAction = iota
	// CommitSet: the cleaned formula should be written onto the target cell.
	CommitSet
	// CommitClear: the formula was empty; any existing formula on the target
	// cell should be cleared instead.
	CommitClear
)

// Mode is the single in-progress-formula slot of an editing session. Only one
// formula may be under composition at a time; starting a new composition
// implicitly discards any prior one.
type Mode struct {
	state State
	comp  Composition
}

func NewMode() *Mode {
	return &Mode{state: Idle}
}

func (m *Mode) State() State {
	return m.state
}

// Current returns the active composition, if any.
func (m *Mode) Current() (Composition, bool) {
	if m.state != Composing {
		return Composition{}, false
	}
	return m.comp, true
}

// CapturesInput reports whether the host must suppress normal text-editing
// events. Events targeting the formula's own input surface stay exempt.
func (m *Mode) CapturesInput() bool {
	return m.state == Composing
}

// Start begins composing on the given cell, discarding any active
// composition. An existing formula is re-opened for edit; otherwise the
// composition starts as a bare "=".
func (m *Mode) Start(tablePos string, col, row int, existingFormula, previousValue string) {
	text := existingFormula
	if text == "" {
		text = "="
	}
	m.state = Composing
	m.comp = Composition{
		TablePos:      tablePos,
		Col:           col,
		Row:           row,
		Formula:       text,
		PreviousValue: previousValue,
	}
}

// ClickCell appends the clicked cell's reference to the formula, inserting an
// implicit "*" when the text does not already end in an operator or open
// paren. Clicks on the composing cell itself are silently ignored. Reports
// whether the formula changed.
func (m *Mode) ClickCell(col, row int) bool {
	if m.state != Composing {
		return false
	}
	if col == m.comp.Col && row == m.comp.Row {
		return false
	}

	if !endsInOperator(m.comp.Formula) {
		m.comp.Formula += "*"
	}
	m.comp.Formula += formula.EncodeRef(col, row)
	return true
}

// TypeOperator appends an arithmetic operator typed outside the formula's own
// text input.
func (m *Mode) TypeOperator(op byte) bool {
	if m.state != Composing {
		return false
	}
	switch op {
	case '+', '-', '*', '/', '(', ')':
		m.comp.Formula += string(op)
		return true
	}
	return false
}

// Append adds text typed directly into the formula input surface.
func (m *Mode) Append(text string) {
	if m.state != Composing {
		return
	}
	m.comp.Formula += text
}

// Commit validates the composition and returns to Idle. A valid formula
// yields CommitSet with the cleaned text; a formula with no computable
// content yields CommitClear ("user cleared the formula").
func (m *Mode) Commit() (Composition, CommitAction) {
	if m.state != Composing {
		return Composition{}, CommitNone
	}

	comp := m.comp
	m.state = Idle
	m.comp = Composition{}

	cleaned, err := formula.Clean(comp.Formula)
	if err != nil {
		return comp, CommitClear
	}
	comp.Formula = cleaned
	return comp, CommitSet
}

// Cancel discards the composition with no document mutation; the caller
// restores PreviousValue where applicable.
func (m *Mode) Cancel() (Composition, bool) {
	if m.state != Composing {
		return Composition{}, false
	}
	comp := m.comp
	m.state = Idle
	m.comp = Composition{}
	return comp, true
}

// endsInOperator reports whether the accumulated text ends in a spot where a
// reference may directly follow: the '=' prefix, an operator or an open
// paren.
func endsInOperator(text string) bool {
	trimmed := strings.TrimRight(text, " ")
	if trimmed == "" {
		return true
	}
	switch trimmed[len(trimmed)-1] {
	case '=', '+', '-', '*', '/', '(':
		return true
	}
	return false
}
