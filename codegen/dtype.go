package codegen

import "github.com/gofmm/symgen/expr"

// SizeComplexConstants pins every complex literal to the given width so
// no mixed-width complex constant reaches the downstream generator.
// Width expr.WidthComplex64 additionally rounds the value through
// single precision. Non-complex literals are untouched.
func SizeComplexConstants(n expr.Node, width uint8) expr.Node {
	return expr.Transform(n, func(n expr.Node) expr.Node {
		c, ok := n.(expr.Complex)
		if !ok {
			return n
		}
		value := c.Value
		if width == expr.WidthComplex64 {
			value = complex128(complex64(value))
		}
		return expr.Complex{Value: value, Width: width}
	})
}

// RewriteMathConstants renames the symbolic constant pi to the math
// library spelling M_PI expected by generated code. It is not part of
// the fixed pipeline; callers that need it add it as an extra pass.
func RewriteMathConstants(n expr.Node) expr.Node {
	return expr.Transform(n, func(n expr.Node) expr.Node {
		if v, ok := n.(expr.Variable); ok && v.Name == "pi" {
			return expr.Var("M_PI")
		}
		return n
	})
}
