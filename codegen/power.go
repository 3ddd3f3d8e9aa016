package codegen

import (
	"fmt"

	"github.com/gofmm/symgen/expr"
)

// RewritePowers normalizes powers with integer or rational exponents
// into repeated-squaring, reciprocal, and sqrt/rsqrt forms, wrapping
// reused bases as common subexpressions. Exponent shapes it does not
// recognize are left unchanged.
func RewritePowers(n expr.Node) expr.Node {
	return expr.Transform(n, func(n expr.Node) expr.Node {
		if p, ok := n.(expr.Power); ok {
			return rewritePower(p)
		}
		return n
	})
}

func rewritePower(p expr.Power) expr.Node {
	if e, ok := p.Exponent.(expr.Int); ok {
		if e == 0 {
			return p
		}
		return rewriteIntPower(p.Base, int64(e))
	}

	// A rational exponent may arrive as a rational literal or as an
	// integer/integer quotient; both mean the same p/q.
	var num, den int64
	switch e := p.Exponent.(type) {
	case expr.Rational:
		num, den = e.Num, e.Den
	case expr.Quotient:
		n, nok := e.Numer.(expr.Int)
		d, dok := e.Denom.(expr.Int)
		if !nok || !dok {
			return p
		}
		num, den = int64(n), int64(d)
	default:
		return p
	}

	if den < 0 {
		num, den = -num, -den
	}

	switch den {
	case 1:
		if num == 0 {
			return p
		}
		return rewriteIntPower(p.Base, num)
	case 2:
		if num == 0 {
			panic(fmt.Sprintf("codegen: zero half-integer exponent on %s", expr.Format(p.Base)))
		}
		if num > 0 {
			base := expr.WrapCSE(expr.CallOf("sqrt", expr.WrapCSE(p.Base, "")), "")
			return rewriteIntPower(base, num)
		}
		base := expr.WrapCSE(expr.CallOf("rsqrt", p.Base), "")
		return rewriteIntPower(base, -num)
	default:
		return p
	}
}

// rewriteIntPower lowers base**e by halving the exponent: an even
// exponent squares the base and recurses on e/2, an odd one keeps a
// single extra factor of the base. Negative exponents go through the
// reciprocal of the positive form.
func rewriteIntPower(base expr.Node, e int64) expr.Node {
	wrapped := expr.WrapCSE(base, "")
	switch {
	case e > 1 && e%2 == 0:
		square := expr.WrapCSE(expr.Mul(wrapped, wrapped), "")
		return expr.WrapCSE(rewriteIntPower(square, e/2), "")
	case e > 1:
		square := expr.WrapCSE(expr.Mul(wrapped, wrapped), "")
		return expr.Mul(expr.WrapCSE(rewriteIntPower(square, (e-1)/2), ""), wrapped)
	case e == 1:
		return wrapped
	case e < 0:
		return rewriteIntPower(expr.Div(expr.Int(1), wrapped), -e)
	default:
		// e == 0 never reaches lowering; the caller leaves it untouched.
		panic(fmt.Sprintf("codegen: zero exponent on %s reached power lowering", expr.Format(base)))
	}
}
