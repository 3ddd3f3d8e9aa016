// Package symgen compiles closed-form special-function kernel
// expressions into an ordered list of scalar/complex assignment
// instructions, ready to be lowered into fast loop-generated numeric
// code by an external generator.
//
// The compiler's job is numerical stability and compactness, not
// evaluation: Hankel and Bessel-J calls are rewritten into recurrences
// that are safe at run time (downward for Bessel-J, the only stable
// direction for that family), powers and fractions are normalized into
// cheap arithmetic, and reused subexpressions are tagged so the
// generator can hoist them.
//
// Example:
//
//	arg := expr.Var("z")
//	batch := []codegen.Assignment{
//	    {Name: "h0", Expr: expr.CallOf(codegen.NameHankel1, expr.Int(0), arg)},
//	    {Name: "j2", Expr: expr.CallOf(codegen.NameBesselJ, expr.Int(2), arg)},
//	}
//	result := symgen.Compile(batch, codegen.DefaultOptions())
//	for _, insn := range result.Instructions {
//	    fmt.Printf("%s <- %s\n", insn.Assignee, expr.Format(insn.Expression))
//	}
//
// Kernel math derived in the go-sympy symbolic engine enters through
// CompileSymbolic, which converts the foreign trees first.
package symgen

import (
	gosymbol "github.com/njchilds90/gosymbol"

	"github.com/gofmm/symgen/codegen"
	"github.com/gofmm/symgen/gosym"
)

// SymbolicAssignment pairs a temporary name with a foreign go-sympy
// expression.
type SymbolicAssignment struct {
	Name string
	Expr gosymbol.Expr
}

// Compile runs one batch of internal-form assignments through the
// rewrite pipeline.
func Compile(batch []codegen.Assignment, opts codegen.Options) *codegen.Result {
	return codegen.ToInstructions(batch, opts)
}

// CompileSymbolic converts a batch of go-sympy assignments into
// internal form and compiles it.
func CompileSymbolic(batch []SymbolicAssignment, opts codegen.Options) (*codegen.Result, error) {
	converted := make([]codegen.Assignment, len(batch))
	for i, a := range batch {
		node, err := gosym.Convert(a.Expr)
		if err != nil {
			return nil, err
		}
		converted[i] = codegen.Assignment{Name: a.Name, Expr: node}
	}
	return codegen.ToInstructions(converted, opts), nil
}
