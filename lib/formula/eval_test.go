package formula

import (
	"math"
	"testing"
)

type mapSnapshot map[CellAddr]CellData

func (m mapSnapshot) Cell(addr CellAddr) (CellData, bool) {
	cell, ok := m[addr]
	return cell, ok
}

func addr(col, row int) CellAddr {
	return CellAddr{Col: col, Row: row}
}

func TestEvaluateArithmetic(t *testing.T) {
	snap := mapSnapshot{
		addr(0, 0): {Value: "10"}, // A1
		addr(1, 0): {Value: "20"}, // B1
		addr(0, 1): {Value: ""},   // A2
	}

	testCases := []struct {
		name    string
		formula string
		want    float64
	}{
		{"addition", "=A1+B1", 30},
		{"multiplication binds tighter", "=2+3*4", 14},
		{"parens override", "=(2+3)*4", 20},
		{"left associative subtraction", "=8-3-2", 3},
		{"left associative division", "=8/2/2", 2},
		{"unary minus", "=-3+5", 2},
		{"unary plus", "=+4*2", 8},
		{"empty cell is zero", "=A2+5", 5},
		{"decimal literal", "=1.5*2", 3},
		{"refs and literals mixed", "=A1*2+B1/4", 25},
		{"nested parens", "=((A1))", 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Evaluate(tc.formula, addr(5, 5), snap)
			if err != nil {
				t.Fatalf("Evaluate(%q): unexpected error: %v", tc.formula, err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Evaluate(%q) = %v; want %v", tc.formula, got, tc.want)
			}
		})
	}
}

func TestEvaluateCoercion(t *testing.T) {
	snap := mapSnapshot{
		addr(0, 0): {Value: "$1,200.50"},
		addr(1, 0): {Value: "  42  "},
	}

	got, err := Evaluate("=A1*2", addr(5, 5), snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2401 {
		t.Errorf("got %v; want 2401", got)
	}

	got, err = Evaluate("=B1", addr(5, 5), snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("got %v; want 42", got)
	}
}

func TestEvaluateInvalidOperand(t *testing.T) {
	snap := mapSnapshot{
		addr(0, 0): {Value: "hello"},
		addr(1, 0): {Value: "0"},
	}

	testCases := []struct {
		name    string
		formula string
	}{
		{"garbage operand", "=A1+1"},
		{"division by zero literal", "=5/0"},
		{"division by zero ref", "=1/B1"},
		{"reference out of range", "=Z99+1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.formula, addr(5, 5), snap)
			if err == nil {
				t.Fatalf("Evaluate(%q): expected error, got none", tc.formula)
			}
			kind, ok := KindOf(err)
			if !ok || kind != KindInvalidOperand {
				t.Errorf("Evaluate(%q): got kind %v, want KindInvalidOperand", tc.formula, kind)
			}
		})
	}
}

func TestEvaluateCircularReference(t *testing.T) {
	snap := mapSnapshot{
		addr(0, 0): {Formula: "=B1+1"}, // A1
		addr(1, 0): {Formula: "=A1+1"}, // B1
		addr(2, 0): {Formula: "=C1"},   // C1, self-referential
	}

	_, err := Evaluate("=B1+1", addr(0, 0), snap)
	if err == nil {
		t.Fatal("expected circular reference error, got none")
	}
	kind, ok := KindOf(err)
	if !ok || kind != KindCircularReference {
		t.Errorf("got kind %v, want KindCircularReference", kind)
	}

	_, err = Evaluate("=C1", addr(2, 0), snap)
	if err == nil {
		t.Fatal("expected self-reference to be circular, got no error")
	}
	kind, ok = KindOf(err)
	if !ok || kind != KindCircularReference {
		t.Errorf("self reference: got kind %v, want KindCircularReference", kind)
	}
}

func TestEvaluateFormulaChain(t *testing.T) {
	snap := mapSnapshot{
		addr(0, 0): {Value: "5"},        // A1
		addr(1, 0): {Formula: "=A1*2"},  // B1
		addr(2, 0): {Formula: "=B1+A1"}, // C1
	}

	got, err := Evaluate("=B1+A1", addr(2, 0), snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 15 {
		t.Errorf("got %v; want 15", got)
	}
}

func TestPassMemoization(t *testing.T) {
	snap := mapSnapshot{
		addr(0, 0): {Value: "5"},       // A1
		addr(1, 0): {Formula: "=A1*2"}, // B1
	}

	pass := NewPass(snap)
	first, err := pass.Evaluate("=B1+B1", addr(2, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 20 {
		t.Errorf("got %v; want 20", first)
	}

	// memoized result survives across evaluations of the same pass
	second, err := pass.Evaluate("=B1", addr(3, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != 10 {
		t.Errorf("got %v; want 10", second)
	}
}
