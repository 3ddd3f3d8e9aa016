package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator precedence levels for rendering.
const (
	precSum = iota + 1
	precProduct
	precPower
	precAtom
)

// Format renders n as a deterministic, human-readable infix string.
// The output is for inspection and golden tests; it is not the code
// generator's input.
func Format(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n, 0)
	return sb.String()
}

func writeNode(sb *strings.Builder, n Node, parent int) {
	switch t := n.(type) {
	case Variable:
		sb.WriteString(t.Name)
	case Int:
		if t < 0 && parent > precSum {
			sb.WriteByte('(')
			sb.WriteString(strconv.FormatInt(int64(t), 10))
			sb.WriteByte(')')
			return
		}
		sb.WriteString(strconv.FormatInt(int64(t), 10))
	case Rational:
		paren := parent > precSum
		if paren {
			sb.WriteByte('(')
		}
		sb.WriteString(strconv.FormatInt(t.Num, 10))
		sb.WriteByte('/')
		sb.WriteString(strconv.FormatInt(t.Den, 10))
		if paren {
			sb.WriteByte(')')
		}
	case Float:
		s := strconv.FormatFloat(float64(t), 'g', -1, 64)
		if t < 0 && parent > precSum {
			sb.WriteString("(" + s + ")")
			return
		}
		sb.WriteString(s)
	case Complex:
		fmt.Fprintf(sb, "cplx%d(%g, %g)", t.Width, real(t.Value), imag(t.Value))
	case Call:
		sb.WriteString(t.Name)
		writeArgs(sb, t.Args)
	case Sum:
		writeSeq(sb, t.Terms, " + ", precSum, parent)
	case Product:
		writeSeq(sb, t.Factors, "*", precProduct, parent)
	case Power:
		paren := parent >= precPower
		if paren {
			sb.WriteByte('(')
		}
		writeNode(sb, t.Base, precPower)
		sb.WriteString("**")
		writeNode(sb, t.Exponent, precPower)
		if paren {
			sb.WriteByte(')')
		}
	case Quotient:
		paren := parent > precProduct
		if paren {
			sb.WriteByte('(')
		}
		writeNode(sb, t.Numer, precProduct)
		sb.WriteString(" / ")
		writeNode(sb, t.Denom, precPower)
		if paren {
			sb.WriteByte(')')
		}
	case Lookup:
		writeNode(sb, t.Base, precAtom)
		sb.WriteByte('.')
		sb.WriteString(t.Field)
	case Subscript:
		writeNode(sb, t.Base, precAtom)
		sb.WriteByte('[')
		writeNode(sb, t.Index, 0)
		sb.WriteByte(']')
	case CommonSub:
		sb.WriteString("cse")
		if t.Prefix != "" {
			sb.WriteByte('.')
			sb.WriteString(t.Prefix)
		}
		sb.WriteByte('(')
		writeNode(sb, t.Child, 0)
		sb.WriteByte(')')
	case Derivative:
		fmt.Fprintf(sb, "deriv%d[", t.Count)
		writeNode(sb, t.Child, 0)
		sb.WriteByte(']')
		writeArgs(sb, t.Args)
	default:
		panic(fmt.Sprintf("expr: unknown node kind %T", n))
	}
}

func writeSeq(sb *strings.Builder, children []Node, sep string, prec, parent int) {
	paren := parent > prec
	if paren {
		sb.WriteByte('(')
	}
	for i, c := range children {
		if i > 0 {
			sb.WriteString(sep)
		}
		writeNode(sb, c, prec)
	}
	if paren {
		sb.WriteByte(')')
	}
}

func writeArgs(sb *strings.Builder, args []Node) {
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeNode(sb, a, 0)
	}
	sb.WriteByte(')')
}
