package codegen

import "github.com/gofmm/symgen/expr"

// GroupSumSigns reorders the terms of every sum so that negated
// products trail the rest. A term counts as negated when, after
// unwrapping one common-subexpression layer, it is a product with an
// odd number of negative integer-literal factors. The resulting term
// order depends only on the input structure, so structurally identical
// batches regenerate byte-identical code. Applying the pass twice is
// the same as applying it once.
func GroupSumSigns(n expr.Node) expr.Node {
	return expr.Transform(n, func(n expr.Node) expr.Node {
		sum, ok := n.(expr.Sum)
		if !ok {
			return n
		}

		plus := make([]expr.Node, 0, len(sum.Terms))
		var minus []expr.Node
		for _, term := range sum.Terms {
			if negatedProduct(term) {
				minus = append(minus, term)
			} else {
				plus = append(plus, term)
			}
		}
		return expr.Sum{Terms: append(plus, minus...)}
	})
}

func negatedProduct(term expr.Node) bool {
	if cse, ok := term.(expr.CommonSub); ok {
		term = cse.Child
	}
	product, ok := term.(expr.Product)
	if !ok {
		return false
	}

	negatives := 0
	for _, factor := range product.Factors {
		if i, ok := factor.(expr.Int); ok && i < 0 {
			negatives++
		}
	}
	return negatives%2 == 1
}
