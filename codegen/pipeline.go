package codegen

import (
	"github.com/samber/lo"

	"github.com/gofmm/symgen/expr"
)

// Assignment pairs a temporary name with the expression computing it.
// Assignments in a batch are independent of each other except through
// the shared Bessel order gathering.
type Assignment struct {
	Name string
	Expr expr.Node
}

// Pass is a caller-supplied tree rewrite appended to the pipeline.
type Pass func(expr.Node) expr.Node

// Options configures one compilation batch.
type Options struct {
	// VectorNames lists base names whose digit-suffixed variables
	// rewrite to indexed accesses (r0 -> r[0]).
	VectorNames []string

	// ExtraPasses run after the fixed pipeline, in order.
	ExtraPasses []Pass

	// ComplexWidth pins complex literals to a fixed width
	// (expr.WidthComplex64 or expr.WidthComplex128). Zero leaves
	// complex literals abstract.
	ComplexWidth uint8
}

// DefaultOptions returns options for a plain double-precision batch.
func DefaultOptions() Options {
	return Options{ComplexWidth: expr.WidthComplex128}
}

// StorageType tells the downstream generator how to type the assigned
// temporary.
type StorageType uint8

// StorageInfer lets the generator infer the temporary's type from use.
// It is the only storage type this compiler emits.
const StorageInfer StorageType = iota

func (s StorageType) String() string {
	if s == StorageInfer {
		return "infer-from-use"
	}
	return "unknown"
}

// Instruction is one fully rewritten assignment, ready for lowering
// into loop-generated numeric code.
type Instruction struct {
	Assignee   string
	Expression expr.Node
	Storage    StorageType
}

// Result is the output of one batch compilation: the ordered
// instruction list and the composite result types it references.
type Result struct {
	Instructions []Instruction
	Types        *TypeRegistry
}

// ToInstructions runs the fixed rewrite pipeline over a batch and
// returns the instruction list. The batch is processed synchronously
// and shares nothing with other batches; independent batches may be
// compiled concurrently by the caller.
func ToInstructions(batch []Assignment, opts Options) *Result {
	// Derivatives must be gone before gathering, since expansion
	// introduces Bessel calls at shifted orders.
	batch = lo.Map(batch, func(a Assignment, _ int) Assignment {
		return Assignment{Name: a.Name, Expr: ExpandDerivatives(a.Expr)}
	})

	tops := GatherBesselOrders(batch)
	types := NewTypeRegistry()
	basis := newBesselBasis(tops, types, opts.ComplexWidth)

	whitelist := make(map[string]bool, len(opts.VectorNames))
	for _, name := range opts.VectorNames {
		whitelist[name] = true
	}

	convert := func(e expr.Node) expr.Node {
		e = substituteBessel(basis, e)
		e = RewriteVectorComponents(e, whitelist)
		e = RewritePowers(e)
		e = ReduceFractions(e)
		e = GroupSumSigns(e)
		if opts.ComplexWidth != 0 {
			e = SizeComplexConstants(e, opts.ComplexWidth)
		}
		for _, pass := range opts.ExtraPasses {
			e = pass(e)
		}
		return e
	}

	instructions := lo.Map(batch, func(a Assignment, _ int) Instruction {
		return Instruction{
			Assignee:   a.Name,
			Expression: convert(a.Expr),
			Storage:    StorageInfer,
		}
	})

	return &Result{Instructions: instructions, Types: types}
}
