package codegen

import (
	"regexp"
	"strconv"

	"github.com/gofmm/symgen/expr"
)

var indexedVarRE = regexp.MustCompile(`^([a-zA-Z_]+)([0-9]+)$`)

// RewriteVectorComponents turns digit-suffixed variable names into
// indexed accesses: with "r" whitelisted, r0 becomes r[0]. Names whose
// base is not whitelisted keep their plain-variable form, as do names
// that do not match the <base><digits> shape at all.
func RewriteVectorComponents(n expr.Node, whitelist map[string]bool) expr.Node {
	if len(whitelist) == 0 {
		return n
	}
	return expr.Transform(n, func(n expr.Node) expr.Node {
		v, ok := n.(expr.Variable)
		if !ok {
			return n
		}
		m := indexedVarRE.FindStringSubmatch(v.Name)
		if m == nil || !whitelist[m[1]] {
			return n
		}
		index, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			// Suffix too large to be a component index; leave alone.
			return n
		}
		return expr.Subscript{Base: expr.Var(m[1]), Index: expr.Int(index)}
	})
}
