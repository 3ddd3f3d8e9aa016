package codegen

import (
	"fmt"
	"strconv"

	"github.com/gofmm/symgen/expr"
)

// Special-function call names recognized by the pipeline.
const (
	// NameHankel1 is the first-kind Hankel function call in incoming
	// expressions: hankel_1(order, arg) with an integer-literal order.
	NameHankel1 = "hankel_1"

	// NameBesselJ is the first-kind Bessel function call in incoming
	// expressions: bessel_j(order, arg) with an integer-literal order.
	NameBesselJ = "bessel_j"

	// NamePairedHankel is the emitted primitive evaluating Hankel
	// orders 0 and 1 together, returning a two-field record.
	NamePairedHankel = "hank1_01"

	// NameBesselJImpl is the emitted generic (less precise) Bessel-J
	// primitive, used only for the top two orders per argument.
	NameBesselJImpl = "bessel_jv"
)

// Field names of the paired Hankel evaluation record.
const (
	FieldOrder0 = "order0"
	FieldOrder1 = "order1"
)

// pairedHankelTypeName tags both the CSE wrapper and the registered
// composite type for the paired evaluation.
const pairedHankelTypeName = "hank1_01_result"

// TopOrders maps each distinct Bessel-J argument subexpression to the
// maximum absolute order requested for it anywhere in a batch.
// Arguments are compared by exact structural identity, with no
// algebraic canonicalization: 2*x and x*2 are distinct entries.
// Merging them could change which recurrence chain is generated and
// therefore the numerical results.
type TopOrders struct {
	byArg map[string]int
}

// Top returns the recorded maximum |order| for arg.
func (t *TopOrders) Top(arg expr.Node) (int, bool) {
	order, ok := t.byArg[expr.Key(arg)]
	return order, ok
}

func (t *TopOrders) record(arg expr.Node, order int) {
	if order < 0 {
		order = -order
	}
	key := expr.Key(arg)
	if order > t.byArg[key] {
		t.byArg[key] = order
	}
}

// GatherBesselOrders walks every assignment in the batch and records,
// per distinct argument subexpression, the highest Bessel-J order in
// use. All orders below the maximum are later computed by the stable
// downward recurrence, so the gathering must cover the whole batch
// before any substitution starts.
func GatherBesselOrders(batch []Assignment) *TopOrders {
	tops := &TopOrders{byArg: make(map[string]int)}
	for _, a := range batch {
		expr.Walk(a.Expr, func(n expr.Node) bool {
			call, ok := n.(expr.Call)
			if !ok || call.Name != NameBesselJ {
				return true
			}
			order, arg := recurrenceOperands(call)
			tops.record(arg, order)
			return true
		})
	}
	return tops
}

// recurrenceOperands splits a hankel_1/bessel_j call into its
// integer-literal order and argument. A malformed call is a compiler
// bug upstream, not a user error.
func recurrenceOperands(call expr.Call) (int, expr.Node) {
	if len(call.Args) != 2 {
		panic(fmt.Sprintf("codegen: %s expects (order, arg), got %d arguments", call.Name, len(call.Args)))
	}
	order, ok := call.Args[0].(expr.Int)
	if !ok {
		panic(fmt.Sprintf("codegen: %s order must be an integer literal, got %T", call.Name, call.Args[0]))
	}
	return int(order), call.Args[1]
}

// besselBasis builds the concrete, numerically stable evaluation plan
// for Hankel and Bessel-J requests. Every result is memoized per
// (order, argument) for the lifetime of one batch, so repeated
// requests share one recurrence chain.
type besselBasis struct {
	tops  *TopOrders
	types *TypeRegistry
	width uint8

	paired  map[string]expr.Node
	hankel  map[string]expr.Node
	besselj map[string]expr.Node
}

func newBesselBasis(tops *TopOrders, types *TypeRegistry, complexWidth uint8) *besselBasis {
	return &besselBasis{
		tops:    tops,
		types:   types,
		width:   complexWidthOrDefault(complexWidth),
		paired:  make(map[string]expr.Node),
		hankel:  make(map[string]expr.Node),
		besselj: make(map[string]expr.Node),
	}
}

// pairedHankel returns the shared hank1_01(arg) call and registers its
// record type with the batch registry.
func (b *besselBasis) pairedHankel(arg expr.Node) expr.Node {
	key := expr.Key(arg)
	if cached, ok := b.paired[key]; ok {
		return cached
	}

	b.types.GetOrCreate(pairedHankelTypeName, []CompositeField{
		{Name: FieldOrder0, Width: b.width},
		{Name: FieldOrder1, Width: b.width},
	})
	call := expr.Node(expr.CallOf(NamePairedHankel, arg))
	b.paired[key] = call
	return call
}

// hankel1 returns a stable expression for hankel_1(order, arg).
//
// Orders 0 and 1 are field lookups into the single paired evaluation.
// Negative orders reflect via AS (9.1.6); higher orders use the
// forward recurrence AS (9.1.27), which is the stable direction for
// this family.
func (b *besselBasis) hankel1(order int, arg expr.Node) expr.Node {
	key := memoKey(order, arg)
	if cached, ok := b.hankel[key]; ok {
		return cached
	}

	var result expr.Node
	switch {
	case order == 0:
		result = expr.Lookup{
			Base:  expr.CSE(b.pairedHankel(arg), pairedHankelTypeName),
			Field: FieldOrder0,
		}
	case order == 1:
		result = expr.Lookup{
			Base:  expr.CSE(b.pairedHankel(arg), pairedHankelTypeName),
			Field: FieldOrder1,
		}
	case order < 0:
		// AS (9.1.6)
		nu := -order
		result = expr.WrapCSE(
			expr.Mul(expr.Int(parity(nu)), b.hankel1(nu, arg)),
			"hank1_neg"+strconv.Itoa(nu),
		)
	default:
		// AS (9.1.27)
		nu := order - 1
		result = expr.CSE(
			expr.Sub(
				expr.Mul(expr.Div(expr.Int(2*int64(nu)), arg), b.hankel1(nu, arg)),
				b.hankel1(nu-1, arg),
			),
			"hank1_"+strconv.Itoa(order),
		)
	}
	b.hankel[key] = result
	return result
}

// besselJ returns a stable expression for bessel_j(order, arg).
//
// The top two orders recorded for arg evaluate directly through the
// generic primitive; every lower order descends from them via the
// backward recurrence AS (9.1.27). The upward direction amplifies
// floating-point error for this family and is never generated.
func (b *besselBasis) besselJ(order int, arg expr.Node) expr.Node {
	key := memoKey(order, arg)
	if cached, ok := b.besselj[key]; ok {
		return cached
	}

	top, ok := b.tops.Top(arg)
	if !ok {
		panic(fmt.Sprintf("codegen: bessel_j argument %s missed by order gathering", expr.Format(arg)))
	}

	var result expr.Node
	switch {
	case order == top || order == top-1:
		result = expr.CSE(
			expr.CallOf(NameBesselJImpl, expr.Int(order), arg),
			"bessel_j_"+strconv.Itoa(order),
		)
	case order < 0:
		result = expr.Mul(expr.Int(parity(order)), b.besselJ(-order, arg))
	default:
		if order >= top {
			panic(fmt.Sprintf("codegen: bessel_j order %d exceeds gathered top order %d", order, top))
		}
		nu := order + 1
		result = expr.CSE(
			expr.Sub(
				expr.Mul(expr.Div(expr.Int(2*int64(nu)), arg), b.besselJ(nu, arg)),
				b.besselJ(nu+1, arg),
			),
			"bessel_j_"+strconv.Itoa(order),
		)
	}
	b.besselj[key] = result
	return result
}

// substituteBessel replaces abstract hankel_1/bessel_j calls with
// concrete stable recurrences drawn from the shared basis. Substituted
// results are final: the pass does not descend into its own output.
func substituteBessel(basis *besselBasis, n expr.Node) expr.Node {
	return expr.Transform(n, func(n expr.Node) expr.Node {
		call, ok := n.(expr.Call)
		if !ok {
			return n
		}
		switch call.Name {
		case NameHankel1:
			order, arg := recurrenceOperands(call)
			return basis.hankel1(order, arg)
		case NameBesselJ:
			order, arg := recurrenceOperands(call)
			return basis.besselJ(order, arg)
		default:
			return n
		}
	})
}

// parity returns (-1)^n.
func parity(n int) int64 {
	if n%2 != 0 {
		return -1
	}
	return 1
}

func memoKey(order int, arg expr.Node) string {
	return strconv.Itoa(order) + "|" + expr.Key(arg)
}
