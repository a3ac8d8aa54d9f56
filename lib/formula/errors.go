package formula

import (
	"errors"
	"fmt"
)

// Kind classifies formula failures. Every failure is recovered locally and
// rendered as a short display token; none may escape to the host document.
type Kind int

const (
	KindMalformedReference Kind = iota + 1
	KindInvalidFormula
	KindEmptyFormula
	KindCircularReference
	KindInvalidOperand
)

// Error is the typed failure produced by the codec, parser and evaluator.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewMalformedReference(label string) *Error {
	return &Error{
		Kind:    KindMalformedReference,
		Message: fmt.Sprintf("malformed cell reference '%s'", label),
	}
}

func NewInvalidFormula(reason string) *Error {
	return &Error{
		Kind:    KindInvalidFormula,
		Message: "invalid formula: " + reason,
	}
}

func NewEmptyFormula() *Error {
	return &Error{
		Kind:    KindEmptyFormula,
		Message: "formula has no cell references or numeric content",
	}
}

func NewCircularReference(label string) *Error {
	return &Error{
		Kind:    KindCircularReference,
		Message: fmt.Sprintf("circular reference through %s", label),
	}
}

func NewInvalidOperand(reason string) *Error {
	return &Error{
		Kind:    KindInvalidOperand,
		Message: "invalid operand: " + reason,
	}
}

// KindOf extracts the formula error kind, if err carries one.
func KindOf(err error) (Kind, bool) {
	var formulaErr *Error
	if errors.As(err, &formulaErr) {
		return formulaErr.Kind, true
	}
	return 0, false
}

const (
	TokenCircular = "Circular!"
	TokenInvalid  = "Invalid"
)

// DisplayToken converts a formula failure into the short token shown in place
// of the cell's computed value.
func DisplayToken(err error) string {
	if kind, ok := KindOf(err); ok && kind == KindCircularReference {
		return TokenCircular
	}
	return TokenInvalid
}
