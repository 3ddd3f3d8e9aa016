package codegen

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/gofmm/symgen/expr"
)

// ExpandDerivatives eliminates symbolic derivatives of Hankel/Bessel-J
// calls before any other rewriting. The n-th derivative of either
// family obeys the same order-shift identity, AS (9.1.31):
//
//	f_ν^(n)(z) = 2^(-n) · Σ_{i=0}^{n} (-1)^i · C(n,i) · f_{ν-n+2i}(z)
//
// Derivatives of any other call pass through untouched for later
// stages to handle.
func ExpandDerivatives(n expr.Node) expr.Node {
	return expr.Transform(n, func(n expr.Node) expr.Node {
		d, ok := n.(expr.Derivative)
		if !ok {
			return n
		}
		if d.Child.Name != NameHankel1 && d.Child.Name != NameBesselJ {
			return n
		}

		order, _ := recurrenceOperands(d.Child)
		if len(d.Args) != 1 {
			panic(fmt.Sprintf("codegen: derivative of %s expects one evaluation point, got %d", d.Child.Name, len(d.Args)))
		}
		arg := d.Args[0]
		k := d.Count

		terms := make([]expr.Node, 0, k+1)
		for idx := 0; idx <= k; idx++ {
			coeff := new(big.Int).Binomial(int64(k), int64(idx)).Int64()
			if idx%2 == 1 {
				coeff = -coeff
			}
			shifted := expr.CallOf(d.Child.Name, expr.Int(order-k+2*idx), arg)
			terms = append(terms, expr.Mul(expr.Int(coeff), shifted))
		}

		return expr.CSE(
			expr.Mul(expr.Float(math.Ldexp(1, -k)), expr.Sum{Terms: terms}),
			derivativeTag(k, d.Child.Name, order),
		)
	})
}

// derivativeTag encodes derivative count, family, and signed order,
// e.g. d2_hankel_1_0 or d1_bessel_j_m3.
func derivativeTag(count int, family string, order int) string {
	orderStr := strconv.Itoa(order)
	if order < 0 {
		orderStr = "m" + strconv.Itoa(-order)
	}
	return "d" + strconv.Itoa(count) + "_" + family + "_" + orderStr
}
