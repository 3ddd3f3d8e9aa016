// Command symgenc compiles built-in demo expansion kernels and prints
// the resulting instruction list.
//
// Usage:
//
//	symgenc [kernel]
//
// Examples:
//
//	symgenc                          # 2-D Helmholtz single-layer kernel
//	symgenc helmholtz-local -n 6     # local expansion, truncation order 6
//	symgenc helmholtz-sl --check     # also evaluate at a sample point
package main

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gofmm/symgen"
	"github.com/gofmm/symgen/codegen"
	"github.com/gofmm/symgen/expr"
)

var (
	order         int
	useComplex64  bool
	check         bool
	mathConstants bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symgenc [kernel]",
		Short: "Compile demo expansion kernels to instruction lists",
		Long: `symgenc compiles a built-in demo kernel batch through the full
rewrite pipeline and prints one line per emitted instruction, plus any
composite result types the downstream generator must declare.

Available kernels:

  helmholtz-sl     2-D Helmholtz single-layer potential: Hankel
                   expansion coefficients plus a radial derivative
  helmholtz-local  local expansion coefficients on Bessel-J, all
                   orders descending from one top-order evaluation`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().IntVarP(&order, "order", "n", 4, "truncation order of the demo expansion")
	cmd.Flags().BoolVar(&useComplex64, "complex64", false, "pin complex constants to single precision")
	cmd.Flags().BoolVar(&check, "check", false, "evaluate each instruction at a sample point")
	cmd.Flags().BoolVar(&mathConstants, "math-constants", false, "rewrite pi to M_PI as an extra pass")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	kernel := "helmholtz-sl"
	if len(args) > 0 {
		kernel = args[0]
	}
	if order < 1 {
		return fmt.Errorf("order must be at least 1, got %d", order)
	}

	var batch []codegen.Assignment
	switch kernel {
	case "helmholtz-sl":
		batch = helmholtzSingleLayer(order)
	case "helmholtz-local":
		batch = helmholtzLocal(order)
	default:
		return fmt.Errorf("unknown kernel %q", kernel)
	}

	opts := codegen.Options{
		VectorNames:  []string{"d"},
		ComplexWidth: expr.WidthComplex128,
	}
	if useComplex64 {
		opts.ComplexWidth = expr.WidthComplex64
	}
	if mathConstants {
		opts.ExtraPasses = append(opts.ExtraPasses, codegen.RewriteMathConstants)
	}

	result := symgen.Compile(batch, opts)

	lines := lo.Map(result.Instructions, func(insn codegen.Instruction, _ int) string {
		return fmt.Sprintf("%s <- %s  [%s]", insn.Assignee, expr.Format(insn.Expression), insn.Storage)
	})
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	for _, ct := range result.Types.Types() {
		fields := lo.Map(ct.Fields, func(f codegen.CompositeField, _ int) string {
			return fmt.Sprintf("%s:c%d", f.Name, f.Width)
		})
		fmt.Fprintf(cmd.OutOrStdout(), "type %s {%v}\n", ct.Name, fields)
	}

	if check {
		return evaluate(cmd, result)
	}
	return nil
}

// helmholtzSingleLayer builds multipole coefficients of the 2-D
// Helmholtz single-layer potential G = (i/4) H1_0(k|d|), together with
// one radial-derivative assignment.
func helmholtzSingleLayer(order int) []codegen.Assignment {
	z := waveArg()
	prefactor := expr.Complex{Value: complex(0, 0.25)}

	batch := make([]codegen.Assignment, 0, order+2)
	for n := 0; n <= order; n++ {
		batch = append(batch, codegen.Assignment{
			Name: fmt.Sprintf("mpole%d", n),
			Expr: expr.Mul(prefactor, expr.CallOf(codegen.NameHankel1, expr.Int(int64(n)), z)),
		})
	}
	batch = append(batch, codegen.Assignment{
		Name: "dknl",
		Expr: expr.Mul(expr.Var("k"), expr.Derivative{
			Child: expr.CallOf(codegen.NameHankel1, expr.Int(0), expr.Var("z")),
			Count: 1,
			Args:  []expr.Node{z},
		}),
	})
	return batch
}

// helmholtzLocal builds local expansion coefficients on Bessel-J. Only
// the top two orders evaluate directly; the rest descend from them.
func helmholtzLocal(order int) []codegen.Assignment {
	z := waveArg()

	batch := make([]codegen.Assignment, 0, order+1)
	for n := 0; n <= order; n++ {
		batch = append(batch, codegen.Assignment{
			Name: fmt.Sprintf("local%d", n),
			Expr: expr.Mul(
				expr.Div(expr.Int(1), expr.Int(4)),
				expr.CallOf(codegen.NameBesselJ, expr.Int(int64(n)), z),
			),
		})
	}
	return batch
}

// waveArg is k*|d| with the distance expressed as a half-integer power,
// so the demo exercises the sqrt rewrite and vector-component pass.
func waveArg() expr.Node {
	dist := expr.Pow(
		expr.Add(
			expr.Pow(expr.Var("d0"), expr.Int(2)),
			expr.Pow(expr.Var("d1"), expr.Int(2)),
		),
		expr.Rational{Num: 1, Den: 2},
	)
	return expr.Mul(expr.Var("k"), dist)
}

// evaluate prints each instruction's value at a fixed sample point
// using the reference implementations of the emitted primitives.
func evaluate(cmd *cobra.Command, result *codegen.Result) error {
	env := codegen.ReferenceEnv(map[string]complex128{
		"k":    2,
		"M_PI": complex(3.141592653589793, 0),
	})
	env.Vectors = map[string][]complex128{
		"d": {0.3, 0.4},
	}

	for _, insn := range result.Instructions {
		value, err := expr.Eval(insn.Expression, env)
		if err != nil {
			return fmt.Errorf("evaluating %s: %w", insn.Assignee, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "check %s = %g\n", insn.Assignee, value)
	}
	return nil
}
