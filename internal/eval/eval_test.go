package eval

import "testing"

// TestEndToEndScenarios runs a handful of representative expressions —
// precedence, grouping, hex literals, short-circuit and/or, modulo,
// empty input, and adjacent unary operators — against a null callback.
func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"precedence", "16 * 17 + 18", 290},
		{"grouping and comparison", "(5 - 5 - 5) == -5", 1},
		{"hex literal", "0x07012ABD", 117516989},
		{"and-or precedence", "1 || 1 && 0", 1},
		{"modulo", "17 % 18", 17},
		{"empty input", "", 0},
		{"double unary plus", "1 + + 2", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diag := Evaluate(tt.input, nil)
			if diag != "" {
				t.Fatalf("Evaluate(%q) diagnostic = %q, want none", tt.input, diag)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestIncompleteExpression(t *testing.T) {
	got, diag := Evaluate("1 + ", nil)
	if diag != diagIncomplete {
		t.Fatalf("diag = %q, want %q", diag, diagIncomplete)
	}
	if got != Sentinel {
		t.Errorf("got = %d, want Sentinel", got)
	}
}

func TestNullCallback(t *testing.T) {
	for _, input := range []string{"a", "a = 1", "f(1)"} {
		got, diag := Evaluate(input, nil)
		if diag != diagNullFunction {
			t.Errorf("Evaluate(%q) diag = %q, want %q", input, diag, diagNullFunction)
		}
		if got != Sentinel {
			t.Errorf("Evaluate(%q) got = %d, want Sentinel", input, got)
		}
	}
}

func TestSyntaxError(t *testing.T) {
	got, diag := Evaluate("1 @ 2", nil)
	if diag != diagSyntaxError {
		t.Fatalf("diag = %q, want %q", diag, diagSyntaxError)
	}
	if got != Sentinel {
		t.Errorf("got = %d, want Sentinel", got)
	}
}

func TestStatementsReturnLastValue(t *testing.T) {
	got, diag := Evaluate("1; 2; 3", nil)
	if diag != "" {
		t.Fatalf("unexpected diagnostic: %q", diag)
	}
	if got != 3 {
		t.Errorf("got = %d, want 3", got)
	}
}

func TestTrailingEmptyStatement(t *testing.T) {
	got, diag := Evaluate("5;", nil)
	if diag != "" {
		t.Fatalf("unexpected diagnostic: %q", diag)
	}
	if got != 5 {
		t.Errorf("got = %d, want 5", got)
	}
}
