package table

import "testing"

func TestModeStartEmptyCell(t *testing.T) {
	mode := NewMode()
	mode.Start("page#0", 0, 0, "", "old value")

	if mode.State() != Composing {
		t.Fatal("expected Composing state after Start")
	}
	comp, ok := mode.Current()
	if !ok {
		t.Fatal("expected active composition")
	}
	if comp.Formula != "=" {
		t.Errorf("got formula %q; want \"=\"", comp.Formula)
	}
	if comp.PreviousValue != "old value" {
		t.Errorf("got previous value %q; want \"old value\"", comp.PreviousValue)
	}
}

func TestModeStartReopensExistingFormula(t *testing.T) {
	mode := NewMode()
	mode.Start("page#0", 0, 0, "=A1+B1", "30")

	comp, _ := mode.Current()
	if comp.Formula != "=A1+B1" {
		t.Errorf("got formula %q; want \"=A1+B1\"", comp.Formula)
	}
}

func TestModeClickCellImplicitMultiply(t *testing.T) {
	mode := NewMode()
	mode.Start("page#0", 0, 0, "", "")

	// directly after '=', no implicit operator
	if !mode.ClickCell(1, 0) {
		t.Fatal("expected click to change the formula")
	}
	comp, _ := mode.Current()
	if comp.Formula != "=B1" {
		t.Errorf("got %q; want \"=B1\"", comp.Formula)
	}

	// no trailing operator now, so '*' is inserted
	mode.ClickCell(2, 0)
	comp, _ = mode.Current()
	if comp.Formula != "=B1*C1" {
		t.Errorf("got %q; want \"=B1*C1\"", comp.Formula)
	}

	// after an explicit operator, no '*'
	mode.TypeOperator('+')
	mode.ClickCell(3, 0)
	comp, _ = mode.Current()
	if comp.Formula != "=B1*C1+D1" {
		t.Errorf("got %q; want \"=B1*C1+D1\"", comp.Formula)
	}
}

func TestModeClickOwnCellIgnored(t *testing.T) {
	mode := NewMode()
	mode.Start("page#0", 0, 0, "", "")
	mode.ClickCell(1, 0)

	if mode.ClickCell(0, 0) {
		t.Error("expected click on the composing cell to be ignored")
	}
	comp, _ := mode.Current()
	if comp.Formula != "=B1" {
		t.Errorf("got %q; want \"=B1\"", comp.Formula)
	}
}

func TestModeTypeOperator(t *testing.T) {
	mode := NewMode()
	mode.Start("page#0", 0, 0, "", "")
	mode.Append("5")

	for _, op := range []byte{'+', '-', '*', '/', '(', ')'} {
		if !mode.TypeOperator(op) {
			t.Errorf("expected operator %q to be accepted", op)
		}
	}
	if mode.TypeOperator('x') {
		t.Error("expected non-operator to be rejected")
	}
	comp, _ := mode.Current()
	if comp.Formula != "=5+-*/()" {
		t.Errorf("got %q; want \"=5+-*/()\"", comp.Formula)
	}
}

func TestModeCommitValid(t *testing.T) {
	mode := NewMode()
	mode.Start("page#0", 2, 1, "", "")
	mode.ClickCell(0, 0)
	mode.TypeOperator('+')
	mode.ClickCell(1, 0)

	comp, action := mode.Commit()
	if action != CommitSet {
		t.Fatalf("got action %v; want CommitSet", action)
	}
	if comp.Formula != "=A1+B1" {
		t.Errorf("got %q; want \"=A1+B1\"", comp.Formula)
	}
	if mode.State() != Idle {
		t.Error("expected Idle state after commit")
	}
}

func TestModeCommitStripsTrailingOperator(t *testing.T) {
	mode := NewMode()
	mode.Start("page#0", 2, 1, "", "")
	mode.ClickCell(0, 0)
	mode.TypeOperator('*')

	comp, action := mode.Commit()
	if action != CommitSet {
		t.Fatalf("got action %v; want CommitSet", action)
	}
	if comp.Formula != "=A1" {
		t.Errorf("got %q; want \"=A1\"", comp.Formula)
	}
}

func TestModeCommitEmptyClears(t *testing.T) {
	mode := NewMode()
	mode.Start("page#0", 2, 1, "=A1+B1", "30")

	// user deletes everything back to the bare '='
	mode.Cancel()
	mode.Start("page#0", 2, 1, "", "30")

	_, action := mode.Commit()
	if action != CommitClear {
		t.Errorf("got action %v; want CommitClear", action)
	}
}

func TestModeCommitWhileIdle(t *testing.T) {
	mode := NewMode()
	_, action := mode.Commit()
	if action != CommitNone {
		t.Errorf("got action %v; want CommitNone", action)
	}
}

func TestModeCancelRestoresNothing(t *testing.T) {
	mode := NewMode()
	mode.Start("page#0", 0, 0, "", "previous")
	mode.ClickCell(1, 0)

	comp, ok := mode.Cancel()
	if !ok {
		t.Fatal("expected cancel to report an active composition")
	}
	if comp.PreviousValue != "previous" {
		t.Errorf("got previous value %q; want \"previous\"", comp.PreviousValue)
	}
	if mode.State() != Idle {
		t.Error("expected Idle state after cancel")
	}
	if mode.CapturesInput() {
		t.Error("expected input capture to end after cancel")
	}
}

func TestModeStartDiscardsPriorComposition(t *testing.T) {
	mode := NewMode()
	mode.Start("page#0", 0, 0, "", "")
	mode.ClickCell(1, 0)

	mode.Start("page#0", 3, 3, "", "")
	comp, _ := mode.Current()
	if comp.Formula != "=" {
		t.Errorf("got %q; want fresh \"=\"", comp.Formula)
	}
	if comp.Col != 3 || comp.Row != 3 {
		t.Errorf("got target (%d, %d); want (3, 3)", comp.Col, comp.Row)
	}
}

func TestEndsInOperator(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"=", true},
		{"=A1+", true},
		{"=A1*(", true},
		{"=A1", false},
		{"=A1+ ", true},
		{"=(A1)", false},
		{"", true},
	}

	for _, tc := range testCases {
		if got := endsInOperator(tc.input); got != tc.want {
			t.Errorf("endsInOperator(%q) = %v; want %v", tc.input, got, tc.want)
		}
	}
}
