package expr

// Var returns a variable reference.
func Var(name string) Variable {
	return Variable{Name: name}
}

// Add builds a sum. A single term is returned unwrapped.
func Add(terms ...Node) Node {
	if len(terms) == 1 {
		return terms[0]
	}
	return Sum{Terms: terms}
}

// Mul builds a product. A single factor is returned unwrapped.
func Mul(factors ...Node) Node {
	if len(factors) == 1 {
		return factors[0]
	}
	return Product{Factors: factors}
}

// Sub builds a difference as Sum(a, (-1)*b), the form the sign-grouping
// pass recognizes.
func Sub(a, b Node) Node {
	return Sum{Terms: []Node{a, Neg(b)}}
}

// Neg negates by multiplying with the integer literal -1.
func Neg(n Node) Node {
	return Product{Factors: []Node{Int(-1), n}}
}

// Pow builds a power.
func Pow(base, exponent Node) Power {
	return Power{Base: base, Exponent: exponent}
}

// Div builds a quotient.
func Div(numer, denom Node) Quotient {
	return Quotient{Numer: numer, Denom: denom}
}

// CallOf builds a named call.
func CallOf(name string, args ...Node) Call {
	return Call{Name: name, Args: args}
}

// CSE wraps n as a tagged common subexpression.
func CSE(n Node, prefix string) CommonSub {
	return CommonSub{Child: n, Prefix: prefix}
}

// WrapCSE wraps n as a common subexpression unless wrapping would be
// pointless: variables and subscripts are trivially reusable, and an
// already-wrapped node is not wrapped twice. An untagged existing
// wrapper picks up the given prefix instead.
func WrapCSE(n Node, prefix string) Node {
	switch t := n.(type) {
	case Variable, Subscript:
		return n
	case CommonSub:
		if prefix != "" && t.Prefix == "" {
			return CommonSub{Child: t.Child, Prefix: prefix}
		}
		return n
	default:
		return CommonSub{Child: n, Prefix: prefix}
	}
}
