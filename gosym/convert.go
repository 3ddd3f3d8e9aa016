// Package gosym converts foreign symbolic expressions (the go-sympy
// tree in which kernel math is derived) into the compiler's internal
// expression form. Conversion happens once, at pipeline entry; nothing
// downstream touches the foreign representation again.
package gosym

import (
	"fmt"

	gosymbol "github.com/njchilds90/gosymbol"

	"github.com/gofmm/symgen/expr"
)

// Convert translates a go-sympy expression into an internal tree.
//
// Exact integers and int64-sized rationals keep their exactness;
// rationals too large for int64 fall back to a float literal. Named
// single-argument function applications become calls of the same name.
func Convert(e gosymbol.Expr) (expr.Node, error) {
	switch t := e.(type) {
	case *gosymbol.Num:
		return convertNum(t), nil
	case *gosymbol.Sym:
		return expr.Var(t.Name()), nil
	case *gosymbol.Add:
		terms, err := convertAll(t.Terms())
		if err != nil {
			return nil, err
		}
		return expr.Sum{Terms: terms}, nil
	case *gosymbol.Mul:
		factors, err := convertAll(t.Factors())
		if err != nil {
			return nil, err
		}
		return expr.Product{Factors: factors}, nil
	case *gosymbol.Pow:
		base, err := Convert(t.Base())
		if err != nil {
			return nil, err
		}
		exponent, err := Convert(t.ExpExpr())
		if err != nil {
			return nil, err
		}
		return expr.Power{Base: base, Exponent: exponent}, nil
	case *gosymbol.Func:
		arg, err := Convert(t.Arg())
		if err != nil {
			return nil, err
		}
		return expr.CallOf(t.FuncName(), arg), nil
	default:
		return nil, fmt.Errorf("gosym: unsupported expression kind %T", e)
	}
}

func convertNum(n *gosymbol.Num) expr.Node {
	rat := n.Rat()
	if rat.IsInt() {
		if rat.Num().IsInt64() {
			return expr.Int(rat.Num().Int64())
		}
		return expr.Float(n.Float64())
	}
	if rat.Num().IsInt64() && rat.Denom().IsInt64() {
		return expr.Rational{Num: rat.Num().Int64(), Den: rat.Denom().Int64()}
	}
	return expr.Float(n.Float64())
}

func convertAll(exprs []gosymbol.Expr) ([]expr.Node, error) {
	out := make([]expr.Node, len(exprs))
	for i, e := range exprs {
		node, err := Convert(e)
		if err != nil {
			return nil, err
		}
		out[i] = node
	}
	return out, nil
}
