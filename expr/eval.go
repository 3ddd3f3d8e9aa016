package expr

import (
	"fmt"
	"math/cmplx"
)

// FuncImpl numerically implements a named call.
type FuncImpl func(args []complex128) (complex128, error)

// RecordImpl implements a named call whose result is a record of named
// fields, such as a paired special-function evaluation.
type RecordImpl func(args []complex128) (map[string]complex128, error)

// Env supplies the bindings needed to evaluate an expression tree
// numerically. Evaluation is used by tests and by inspection tooling;
// the compiler itself never evaluates.
type Env struct {
	Vars    map[string]complex128
	Vectors map[string][]complex128
	Funcs   map[string]FuncImpl
	Records map[string]RecordImpl
}

// Eval computes the numeric value of n under env.
func Eval(n Node, env *Env) (complex128, error) {
	switch t := n.(type) {
	case Variable:
		v, ok := env.Vars[t.Name]
		if !ok {
			return 0, fmt.Errorf("expr: unbound variable %q", t.Name)
		}
		return v, nil
	case Int:
		return complex(float64(t), 0), nil
	case Rational:
		return complex(float64(t.Num)/float64(t.Den), 0), nil
	case Float:
		return complex(float64(t), 0), nil
	case Complex:
		return t.Value, nil
	case Call:
		fn, ok := env.Funcs[t.Name]
		if !ok {
			return 0, fmt.Errorf("expr: no implementation for call %q", t.Name)
		}
		args, err := evalAll(t.Args, env)
		if err != nil {
			return 0, err
		}
		return fn(args)
	case Sum:
		var acc complex128
		for _, term := range t.Terms {
			v, err := Eval(term, env)
			if err != nil {
				return 0, err
			}
			acc += v
		}
		return acc, nil
	case Product:
		acc := complex128(1)
		for _, factor := range t.Factors {
			v, err := Eval(factor, env)
			if err != nil {
				return 0, err
			}
			acc *= v
		}
		return acc, nil
	case Power:
		base, err := Eval(t.Base, env)
		if err != nil {
			return 0, err
		}
		exponent, err := Eval(t.Exponent, env)
		if err != nil {
			return 0, err
		}
		return cmplx.Pow(base, exponent), nil
	case Quotient:
		numer, err := Eval(t.Numer, env)
		if err != nil {
			return 0, err
		}
		denom, err := Eval(t.Denom, env)
		if err != nil {
			return 0, err
		}
		return numer / denom, nil
	case Lookup:
		rec, err := evalRecord(t.Base, env)
		if err != nil {
			return 0, err
		}
		v, ok := rec[t.Field]
		if !ok {
			return 0, fmt.Errorf("expr: record has no field %q", t.Field)
		}
		return v, nil
	case Subscript:
		base, ok := t.Base.(Variable)
		if !ok {
			return 0, fmt.Errorf("expr: subscript base must be a variable, got %T", t.Base)
		}
		vec, ok := env.Vectors[base.Name]
		if !ok {
			return 0, fmt.Errorf("expr: unbound vector %q", base.Name)
		}
		idx, ok := t.Index.(Int)
		if !ok {
			return 0, fmt.Errorf("expr: subscript index must be an integer literal, got %T", t.Index)
		}
		if int(idx) < 0 || int(idx) >= len(vec) {
			return 0, fmt.Errorf("expr: index %d out of range for vector %q", idx, base.Name)
		}
		return vec[idx], nil
	case CommonSub:
		return Eval(t.Child, env)
	case Derivative:
		return 0, fmt.Errorf("expr: cannot evaluate unexpanded derivative of %q", t.Child.Name)
	default:
		panic(fmt.Sprintf("expr: unknown node kind %T", n))
	}
}

func evalAll(nodes []Node, env *Env) ([]complex128, error) {
	out := make([]complex128, len(nodes))
	for i, n := range nodes {
		v, err := Eval(n, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// evalRecord evaluates a record-valued expression, unwrapping any
// common-subexpression marker around the producing call.
func evalRecord(n Node, env *Env) (map[string]complex128, error) {
	if cse, ok := n.(CommonSub); ok {
		n = cse.Child
	}
	call, ok := n.(Call)
	if !ok {
		return nil, fmt.Errorf("expr: field lookup on non-call expression %T", n)
	}
	impl, ok := env.Records[call.Name]
	if !ok {
		return nil, fmt.Errorf("expr: no record implementation for call %q", call.Name)
	}
	args, err := evalAll(call.Args, env)
	if err != nil {
		return nil, err
	}
	return impl(args)
}
