package codegen

import (
	"testing"

	"github.com/gofmm/symgen/expr"
)

func TestReduceFractions(t *testing.T) {
	tests := []struct {
		name string
		node expr.Node
		want expr.Node
	}{
		{"exact quotient", expr.Div(expr.Int(6), expr.Int(3)), expr.Int(2)},
		{"inexact quotient", expr.Div(expr.Int(5), expr.Int(2)), expr.Float(2.5)},
		{"negative exact", expr.Div(expr.Int(-8), expr.Int(4)), expr.Int(-2)},
		{"exact rational", expr.Rational{Num: 4, Den: 2}, expr.Int(2)},
		{"inexact rational", expr.Rational{Num: 1, Den: 4}, expr.Float(0.25)},
		{"negative denominator rational", expr.Rational{Num: 6, Den: -3}, expr.Int(-2)},
		{
			name: "nested in product",
			node: expr.Mul(expr.Div(expr.Int(6), expr.Int(3)), expr.Var("x")),
			want: expr.Mul(expr.Int(2), expr.Var("x")),
		},
		{
			name: "symbolic numerator unchanged",
			node: expr.Div(expr.Var("x"), expr.Int(2)),
			want: expr.Div(expr.Var("x"), expr.Int(2)),
		},
		{
			name: "float operands unchanged",
			node: expr.Div(expr.Float(5), expr.Int(2)),
			want: expr.Div(expr.Float(5), expr.Int(2)),
		},
		{
			name: "zero denominator unchanged",
			node: expr.Div(expr.Int(1), expr.Int(0)),
			want: expr.Div(expr.Int(1), expr.Int(0)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReduceFractions(tt.node); !expr.Equal(got, tt.want) {
				t.Errorf("ReduceFractions(%s) = %s, want %s", expr.Format(tt.node), expr.Format(got), expr.Format(tt.want))
			}
		})
	}
}
