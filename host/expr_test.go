package host

import (
	"testing"

	"github.com/pkg/errors"
)

type testResolver map[string]int64

func (r testResolver) resolveIdentifier(s string) (int64, error) {
	if v, ok := r[s]; ok {
		return v, nil
	}
	return 0, errors.Errorf("identifier '%s' not found", s)
}

func TestParseExpr(t *testing.T) {
	r := testResolver{"a": 0x10, "pc": 0x8000}

	tests := []struct {
		expr string
		exp  uint16
	}{
		{"$1F", 0x1f},
		{"0x1f", 0x1f},
		{"%1010", 10},
		{"42", 42},
		{"a", 0x10},
		{"pc+3", 0x8003},
		{"pc - $10 + 2", 0x7ff2},
		{"-1", 0xffff},
		{"$FFFF+2", 0x0001},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			v, err := parseExpr(tt.expr, r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v != tt.exp {
				t.Errorf("value incorrect. exp: $%04X, got: $%04X", tt.exp, v)
			}
		})
	}
}

func TestParseExprErrors(t *testing.T) {
	r := testResolver{}
	for _, expr := range []string{"", "$", "$G1", "%102", "1+", "zz"} {
		if _, err := parseExpr(expr, r); err == nil {
			t.Errorf("expected error parsing %q", expr)
		}
	}
}
