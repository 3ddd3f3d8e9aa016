package expr

import (
	"math"
	"math/cmplx"
	"testing"
)

func testEnv() *Env {
	return &Env{
		Vars: map[string]complex128{
			"x": 1.5,
			"y": complex(0, 2),
		},
		Vectors: map[string][]complex128{
			"d": {0.3, 0.4},
		},
		Funcs: map[string]FuncImpl{
			"sqrt": func(args []complex128) (complex128, error) {
				return cmplx.Sqrt(args[0]), nil
			},
		},
		Records: map[string]RecordImpl{
			"pair": func(args []complex128) (map[string]complex128, error) {
				return map[string]complex128{"lo": args[0], "hi": 2 * args[0]}, nil
			},
		},
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want complex128
	}{
		{"int", Int(-3), -3},
		{"rational", Rational{Num: 5, Den: 2}, 2.5},
		{"float", Float(0.25), 0.25},
		{"complex", Complex{Value: complex(1, -1)}, complex(1, -1)},
		{"variable", Var("x"), 1.5},
		{"sum", Sum{Terms: []Node{Int(1), Var("x"), Var("y")}}, complex(2.5, 2)},
		{"product", Product{Factors: []Node{Int(2), Var("x")}}, 3},
		{"quotient", Quotient{Numer: Int(3), Denom: Int(2)}, 1.5},
		{"power", Power{Base: Var("x"), Exponent: Int(2)}, 2.25},
		{"call", CallOf("sqrt", Float(2.25)), 1.5},
		{"cse unwraps", CSE(Product{Factors: []Node{Int(2), Int(3)}}, "p"), 6},
		{"lookup", Lookup{Base: CSE(CallOf("pair", Int(3)), "pair_result"), Field: "hi"}, 6},
		{"subscript", Subscript{Base: Var("d"), Index: Int(1)}, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.node, testEnv())
			if err != nil {
				t.Fatalf("Eval() error = %v", err)
			}
			if cmplx.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Eval(%s) = %g, want %g", Format(tt.node), got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"unbound variable", Var("nope")},
		{"unknown call", CallOf("nope", Int(1))},
		{"lookup on non-call", Lookup{Base: Var("x"), Field: "f"}},
		{"missing field", Lookup{Base: CallOf("pair", Int(1)), Field: "mid"}},
		{"unbound vector", Subscript{Base: Var("e"), Index: Int(0)}},
		{"index out of range", Subscript{Base: Var("d"), Index: Int(7)}},
		{"unexpanded derivative", Derivative{Child: CallOf("hankel_1", Int(0), Var("x")), Count: 1, Args: []Node{Var("x")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Eval(tt.node, testEnv()); err == nil {
				t.Errorf("Eval(%s) succeeded, want error", Format(tt.node))
			}
		})
	}
}

func TestEvalNegativePower(t *testing.T) {
	got, err := Eval(Power{Base: Var("x"), Exponent: Int(-2)}, testEnv())
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	want := complex(math.Pow(1.5, -2), 0)
	if cmplx.Abs(got-want) > 1e-12 {
		t.Errorf("Eval(x**-2) = %g, want %g", got, want)
	}
}
