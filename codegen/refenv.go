package codegen

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/gofmm/symgen/expr"
)

// ReferenceEnv builds an evaluation environment implementing the
// primitives the compiler emits (hank1_01, bessel_jv, sqrt, rsqrt)
// for real-valued arguments, together with the caller's variable
// bindings. It exists for numeric verification of compiled
// instructions (tests, the CLI's check mode); generated production
// code supplies its own implementations.
func ReferenceEnv(vars map[string]complex128) *expr.Env {
	return &expr.Env{
		Vars: vars,
		Funcs: map[string]expr.FuncImpl{
			"sqrt": func(args []complex128) (complex128, error) {
				if len(args) != 1 {
					return 0, fmt.Errorf("codegen: sqrt expects 1 argument, got %d", len(args))
				}
				return cmplx.Sqrt(args[0]), nil
			},
			"rsqrt": func(args []complex128) (complex128, error) {
				if len(args) != 1 {
					return 0, fmt.Errorf("codegen: rsqrt expects 1 argument, got %d", len(args))
				}
				return 1 / cmplx.Sqrt(args[0]), nil
			},
			NameBesselJImpl: func(args []complex128) (complex128, error) {
				if len(args) != 2 {
					return 0, fmt.Errorf("codegen: %s expects 2 arguments, got %d", NameBesselJImpl, len(args))
				}
				order, err := realInt(args[0])
				if err != nil {
					return 0, err
				}
				x, err := realArg(args[1])
				if err != nil {
					return 0, err
				}
				return complex(math.Jn(order, x), 0), nil
			},
		},
		Records: map[string]expr.RecordImpl{
			NamePairedHankel: func(args []complex128) (map[string]complex128, error) {
				if len(args) != 1 {
					return nil, fmt.Errorf("codegen: %s expects 1 argument, got %d", NamePairedHankel, len(args))
				}
				x, err := realArg(args[0])
				if err != nil {
					return nil, err
				}
				return map[string]complex128{
					FieldOrder0: complex(math.J0(x), math.Y0(x)),
					FieldOrder1: complex(math.J1(x), math.Y1(x)),
				}, nil
			},
		},
	}
}

func realArg(z complex128) (float64, error) {
	if imag(z) != 0 {
		return 0, fmt.Errorf("codegen: reference environment handles real arguments only, got %g", z)
	}
	return real(z), nil
}

func realInt(z complex128) (int, error) {
	x, err := realArg(z)
	if err != nil {
		return 0, err
	}
	n := int(x)
	if float64(n) != x {
		return 0, fmt.Errorf("codegen: order must be integral, got %g", x)
	}
	return n, nil
}
