package formula

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClean(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "=A1+B2", "=A1+B2"},
		{"single ref", "=A1", "=A1"},
		{"number only", "=42", "=42"},
		{"trailing plus", "=A1+", "=A1"},
		{"trailing star", "=A1*", "=A1"},
		{"trailing minus", "=A1-", "=A1"},
		{"trailing slash", "=A1/", "=A1"},
		{"trailing open paren", "=A1*(", "=A1*"},
		{"balanced parens kept", "=(A1+B2)", "=(A1+B2)"},
		{"whitespace trimmed", "=  A1 + B2  ", "=A1 + B2"},
		{"trailing operator after space", "=A1 + ", "=A1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Clean(tc.input)
			if err != nil {
				t.Fatalf("Clean(%q): unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("Clean(%q) = %q; want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanRejects(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Kind
	}{
		{"no equals prefix", "A1+B2", KindInvalidFormula},
		{"plain text", "hello", KindInvalidFormula},
		{"empty string", "", KindInvalidFormula},
		{"bare equals", "=", KindEmptyFormula},
		{"operators only", "=+*", KindEmptyFormula},
		{"letters only", "=abc", KindEmptyFormula},
		{"parens only", "=()", KindEmptyFormula},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Clean(tc.input)
			if err == nil {
				t.Fatalf("Clean(%q): expected error, got none", tc.input)
			}
			kind, ok := KindOf(err)
			if !ok || kind != tc.want {
				t.Errorf("Clean(%q): got kind %v, want %v", tc.input, kind, tc.want)
			}
		})
	}
}

func TestReferences(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{"two refs", "=A1+B2", []string{"A1", "B2"}},
		{"duplicates collapse", "=A1*A1+a1", []string{"A1"}},
		{"mixed case", "=a1+B2*c3", []string{"A1", "B2", "C3"}},
		{"numbers only", "=1+2", nil},
		{"order of first appearance", "=Z9+A1+Z9", []string{"Z9", "A1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := References(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("References(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}
