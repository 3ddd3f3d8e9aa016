package gosym

import (
	"math"
	"math/cmplx"
	"testing"

	gosymbol "github.com/njchilds90/gosymbol"

	"github.com/gofmm/symgen/expr"
)

// evalConverted converts a foreign expression and evaluates the result
// at x. The go-sympy simplifier may reorder terms, so tests compare
// values rather than exact tree shapes.
func evalConverted(t *testing.T, e gosymbol.Expr, x float64) complex128 {
	t.Helper()
	node, err := Convert(e)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	env := &expr.Env{
		Vars: map[string]complex128{"x": complex(x, 0)},
		Funcs: map[string]expr.FuncImpl{
			"sin": func(args []complex128) (complex128, error) { return cmplx.Sin(args[0]), nil },
			"cos": func(args []complex128) (complex128, error) { return cmplx.Cos(args[0]), nil },
		},
	}
	got, err := expr.Eval(node, env)
	if err != nil {
		t.Fatalf("evaluating converted tree %s: %v", expr.Format(node), err)
	}
	return got
}

func TestConvertLiterals(t *testing.T) {
	tests := []struct {
		name string
		in   gosymbol.Expr
		want expr.Node
	}{
		{"integer", gosymbol.N(42), expr.Int(42)},
		{"negative integer", gosymbol.N(-7), expr.Int(-7)},
		{"rational", gosymbol.F(3, 4), expr.Rational{Num: 3, Den: 4}},
		{"symbol", gosymbol.S("r"), expr.Var("r")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.in)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !expr.Equal(got, tt.want) {
				t.Errorf("Convert(%s) = %s, want %s", tt.in.String(), expr.Format(got), expr.Format(tt.want))
			}
		})
	}
}

func TestConvertAlgebra(t *testing.T) {
	x := 1.3

	tests := []struct {
		name string
		in   gosymbol.Expr
		want float64
	}{
		{
			name: "sum",
			in:   gosymbol.AddOf(gosymbol.S("x"), gosymbol.N(2)),
			want: x + 2,
		},
		{
			name: "product with power",
			in:   gosymbol.MulOf(gosymbol.N(2), gosymbol.PowOf(gosymbol.S("x"), gosymbol.N(3))),
			want: 2 * math.Pow(x, 3),
		},
		{
			name: "negative power",
			in:   gosymbol.PowOf(gosymbol.S("x"), gosymbol.N(-2)),
			want: math.Pow(x, -2),
		},
		{
			name: "half power",
			in:   gosymbol.PowOf(gosymbol.S("x"), gosymbol.F(1, 2)),
			want: math.Sqrt(x),
		},
		{
			name: "function application",
			in:   gosymbol.SinOf(gosymbol.S("x")),
			want: math.Sin(x),
		},
		{
			name: "nested",
			in: gosymbol.AddOf(
				gosymbol.MulOf(gosymbol.N(3), gosymbol.CosOf(gosymbol.S("x"))),
				gosymbol.PowOf(gosymbol.S("x"), gosymbol.N(2)),
			),
			want: 3*math.Cos(x) + x*x,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalConverted(t, tt.in, x)
			if cmplx.Abs(got-complex(tt.want, 0)) > 1e-12 {
				t.Errorf("converted %s evaluates to %g, want %g", tt.in.String(), got, tt.want)
			}
		})
	}
}

func TestConvertKeepsExactRationals(t *testing.T) {
	node, err := Convert(gosymbol.F(1, 2))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if _, ok := node.(expr.Rational); !ok {
		t.Errorf("Convert(1/2) = %T, want exact Rational (the power pass depends on it)", node)
	}
}
