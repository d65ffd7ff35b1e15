package costalg

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name   string
		expr   Expr
		values map[string]decimal.Decimal
		want   string
	}{
		{
			name: "constant",
			expr: ConstInt(3),
			want: "3",
		},
		{
			name:   "sum of var and const",
			expr:   Sum{Terms: []Expr{Var{Name: "leg"}, ConstInt(2)}},
			values: map[string]decimal.Decimal{"leg": decimal.NewFromInt(1)},
			want:   "3",
		},
		{
			name:   "product",
			expr:   Product{Factors: []Expr{ConstInt(4), Var{Name: "leg"}}},
			values: map[string]decimal.Decimal{"leg": decimal.NewFromInt(1)},
			want:   "4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.expr, tt.values)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Eval = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEval_UnboundVariable(t *testing.T) {
	_, err := Eval(Var{Name: "leg"}, nil)
	if err == nil {
		t.Fatalf("expected UnboundVariableError")
	}
	if _, ok := err.(*UnboundVariableError); !ok {
		t.Errorf("error type = %T, want *UnboundVariableError", err)
	}
}

func TestSubstitute(t *testing.T) {
	expr := Sum{Terms: []Expr{Var{Name: "leg"}, ConstInt(3)}}
	substituted := Substitute(expr, "leg", ConstInt(7))

	got, err := Eval(substituted, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "10" {
		t.Errorf("Eval(substituted) = %s, want 10", got)
	}
}

func TestParseExpr_ChairCost(t *testing.T) {
	// spec scenario S5: C2's cost expression is intrinsic 3 plus 4 legs
	// plus seat plus back.
	expr, err := ParseExpr("3 + 4 * leg + seat + back")
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	values := map[string]decimal.Decimal{
		"leg":  decimal.NewFromInt(1),
		"seat": decimal.NewFromInt(2),
		"back": decimal.NewFromInt(3),
	}
	got, err := Eval(expr, values)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got.String() != "12" {
		t.Errorf("score = %s, want 12", got)
	}
}

func TestParseExpr_Parentheses(t *testing.T) {
	expr, err := ParseExpr("2 * (leg + 1)")
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	got, err := Eval(expr, map[string]decimal.Decimal{"leg": decimal.NewFromInt(3)})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got.String() != "8" {
		t.Errorf("score = %s, want 8", got)
	}
}

func TestFreeVariables(t *testing.T) {
	expr, _ := ParseExpr("4 * leg + seat + back")
	vars := FreeVariables(expr)
	seen := map[string]bool{}
	for _, v := range vars {
		seen[v] = true
	}
	for _, want := range []string{"leg", "seat", "back"} {
		if !seen[want] {
			t.Errorf("FreeVariables missing %q, got %v", want, vars)
		}
	}
}
