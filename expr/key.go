package expr

import (
	"fmt"
	"strconv"
)

// Key returns a canonical string key for the structure of n. Two nodes
// have the same key exactly when they are structurally identical; no
// algebraic rewriting is applied, so Sum(a, b) and Sum(b, a) key
// differently. Keys are used for memoization and for the per-argument
// Bessel order map.
func Key(n Node) string {
	return string(appendKey(make([]byte, 0, 64), n))
}

func appendKey(b []byte, n Node) []byte {
	switch t := n.(type) {
	case Variable:
		b = append(b, "var:"...)
		b = append(b, t.Name...)
	case Int:
		b = append(b, "int:"...)
		b = strconv.AppendInt(b, int64(t), 10)
	case Rational:
		b = append(b, "rat:"...)
		b = strconv.AppendInt(b, t.Num, 10)
		b = append(b, '/')
		b = strconv.AppendInt(b, t.Den, 10)
	case Float:
		b = append(b, "flt:"...)
		b = strconv.AppendFloat(b, float64(t), 'g', -1, 64)
	case Complex:
		b = append(b, "cplx:"...)
		b = strconv.AppendFloat(b, real(t.Value), 'g', -1, 64)
		b = append(b, ',')
		b = strconv.AppendFloat(b, imag(t.Value), 'g', -1, 64)
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(t.Width), 10)
	case Call:
		b = append(b, "call:"...)
		b = append(b, t.Name...)
		b = appendChildKeys(b, t.Args)
	case Sum:
		b = append(b, "sum"...)
		b = appendChildKeys(b, t.Terms)
	case Product:
		b = append(b, "prod"...)
		b = appendChildKeys(b, t.Factors)
	case Power:
		b = append(b, "pow"...)
		b = appendChildKeys(b, []Node{t.Base, t.Exponent})
	case Quotient:
		b = append(b, "quo"...)
		b = appendChildKeys(b, []Node{t.Numer, t.Denom})
	case Lookup:
		b = append(b, "lookup:"...)
		b = append(b, t.Field...)
		b = appendChildKeys(b, []Node{t.Base})
	case Subscript:
		b = append(b, "sub"...)
		b = appendChildKeys(b, []Node{t.Base, t.Index})
	case CommonSub:
		b = append(b, "cse:"...)
		b = append(b, t.Prefix...)
		b = appendChildKeys(b, []Node{t.Child})
	case Derivative:
		b = append(b, "deriv:"...)
		b = strconv.AppendInt(b, int64(t.Count), 10)
		b = appendChildKeys(b, append([]Node{t.Child}, t.Args...))
	default:
		// Every kind is handled above; a new kind must be added here.
		panic(fmt.Sprintf("expr: unknown node kind %T", n))
	}
	return b
}

func appendChildKeys(b []byte, children []Node) []byte {
	b = append(b, '(')
	for i, c := range children {
		if i > 0 {
			b = append(b, ';')
		}
		b = appendKey(b, c)
	}
	return append(b, ')')
}

// Equal reports structural equality of two nodes.
func Equal(a, b Node) bool {
	switch ta := a.(type) {
	case Variable:
		tb, ok := b.(Variable)
		return ok && ta.Name == tb.Name
	case Int:
		tb, ok := b.(Int)
		return ok && ta == tb
	case Rational:
		tb, ok := b.(Rational)
		return ok && ta == tb
	case Float:
		tb, ok := b.(Float)
		return ok && ta == tb
	case Complex:
		tb, ok := b.(Complex)
		return ok && ta == tb
	case Call:
		tb, ok := b.(Call)
		return ok && ta.Name == tb.Name && equalSlices(ta.Args, tb.Args)
	case Sum:
		tb, ok := b.(Sum)
		return ok && equalSlices(ta.Terms, tb.Terms)
	case Product:
		tb, ok := b.(Product)
		return ok && equalSlices(ta.Factors, tb.Factors)
	case Power:
		tb, ok := b.(Power)
		return ok && Equal(ta.Base, tb.Base) && Equal(ta.Exponent, tb.Exponent)
	case Quotient:
		tb, ok := b.(Quotient)
		return ok && Equal(ta.Numer, tb.Numer) && Equal(ta.Denom, tb.Denom)
	case Lookup:
		tb, ok := b.(Lookup)
		return ok && ta.Field == tb.Field && Equal(ta.Base, tb.Base)
	case Subscript:
		tb, ok := b.(Subscript)
		return ok && Equal(ta.Base, tb.Base) && Equal(ta.Index, tb.Index)
	case CommonSub:
		tb, ok := b.(CommonSub)
		return ok && ta.Prefix == tb.Prefix && Equal(ta.Child, tb.Child)
	case Derivative:
		tb, ok := b.(Derivative)
		return ok && ta.Count == tb.Count && Equal(ta.Child, tb.Child) && equalSlices(ta.Args, tb.Args)
	default:
		panic(fmt.Sprintf("expr: unknown node kind %T", a))
	}
}

func equalSlices(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
