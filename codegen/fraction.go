package codegen

import "github.com/gofmm/symgen/expr"

// ReduceFractions folds quotients of integer literals: an exact
// division yields an integer, anything else a floating quotient.
// Rational literals reduce the same way. Quotients with non-integer
// operands are left unchanged.
func ReduceFractions(n expr.Node) expr.Node {
	return expr.Transform(n, func(n expr.Node) expr.Node {
		switch t := n.(type) {
		case expr.Quotient:
			numer, nok := t.Numer.(expr.Int)
			denom, dok := t.Denom.(expr.Int)
			if !nok || !dok || denom == 0 {
				return n
			}
			return foldRatio(int64(numer), int64(denom))
		case expr.Rational:
			if t.Den == 0 {
				return n
			}
			return foldRatio(t.Num, t.Den)
		default:
			return n
		}
	})
}

func foldRatio(num, den int64) expr.Node {
	if num%den == 0 {
		return expr.Int(num / den)
	}
	return expr.Float(float64(num) / float64(den))
}
