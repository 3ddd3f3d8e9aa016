package expr

import "fmt"

// Walk traverses the tree rooted at n in depth-first pre-order, calling
// fn for each node. If fn returns false for a node, its children are
// not visited. Walk never modifies the tree.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	switch t := n.(type) {
	case Variable, Int, Rational, Float, Complex:
		// Leaf kinds.
	case Call:
		walkAll(t.Args, fn)
	case Sum:
		walkAll(t.Terms, fn)
	case Product:
		walkAll(t.Factors, fn)
	case Power:
		Walk(t.Base, fn)
		Walk(t.Exponent, fn)
	case Quotient:
		Walk(t.Numer, fn)
		Walk(t.Denom, fn)
	case Lookup:
		Walk(t.Base, fn)
	case Subscript:
		Walk(t.Base, fn)
		Walk(t.Index, fn)
	case CommonSub:
		Walk(t.Child, fn)
	case Derivative:
		Walk(t.Child, fn)
		walkAll(t.Args, fn)
	default:
		panic(fmt.Sprintf("expr: unknown node kind %T", n))
	}
}

func walkAll(children []Node, fn func(Node) bool) {
	for _, c := range children {
		Walk(c, fn)
	}
}

// Transform rewrites the tree bottom-up: children are transformed
// first, then fn is applied to the rebuilt node. fn is not re-applied
// inside its own output, so a replacement may safely contain nodes that
// fn would otherwise match.
func Transform(n Node, fn func(Node) Node) Node {
	switch t := n.(type) {
	case Variable, Int, Rational, Float, Complex:
		return fn(n)
	case Call:
		return fn(Call{Name: t.Name, Args: transformAll(t.Args, fn)})
	case Sum:
		return fn(Sum{Terms: transformAll(t.Terms, fn)})
	case Product:
		return fn(Product{Factors: transformAll(t.Factors, fn)})
	case Power:
		return fn(Power{Base: Transform(t.Base, fn), Exponent: Transform(t.Exponent, fn)})
	case Quotient:
		return fn(Quotient{Numer: Transform(t.Numer, fn), Denom: Transform(t.Denom, fn)})
	case Lookup:
		return fn(Lookup{Base: Transform(t.Base, fn), Field: t.Field})
	case Subscript:
		return fn(Subscript{Base: Transform(t.Base, fn), Index: Transform(t.Index, fn)})
	case CommonSub:
		return fn(CommonSub{Child: Transform(t.Child, fn), Prefix: t.Prefix})
	case Derivative:
		child := Transform(t.Child, fn)
		call, ok := child.(Call)
		if !ok {
			// The derivative target must stay a call; a transform that
			// replaces it with another kind is ignored for the target.
			call = t.Child
		}
		return fn(Derivative{Child: call, Count: t.Count, Args: transformAll(t.Args, fn)})
	default:
		panic(fmt.Sprintf("expr: unknown node kind %T", n))
	}
}

func transformAll(children []Node, fn func(Node) Node) []Node {
	out := make([]Node, len(children))
	for i, c := range children {
		out[i] = Transform(c, fn)
	}
	return out
}
