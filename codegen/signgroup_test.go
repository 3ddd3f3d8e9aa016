package codegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gofmm/symgen/expr"
)

func TestGroupSumSigns(t *testing.T) {
	x := expr.Var("x")
	y := expr.Var("y")

	negX := expr.Mul(expr.Int(-1), x)
	negY := expr.CSE(expr.Mul(expr.Int(-3), y), "t")
	doubleNeg := expr.Mul(expr.Int(-1), expr.Int(-2), x)

	sum := expr.Sum{Terms: []expr.Node{negX, x, negY, doubleNeg, y}}
	got := GroupSumSigns(sum)

	// Positive terms keep their relative order, negated products move
	// to the back in theirs.
	want := expr.Sum{Terms: []expr.Node{x, doubleNeg, y, negX, negY}}
	if !expr.Equal(got, want) {
		t.Errorf("GroupSumSigns = %s, want %s", expr.Format(got), expr.Format(want))
	}
}

func TestGroupSumSignsIdempotent(t *testing.T) {
	sum := expr.Sum{Terms: []expr.Node{
		expr.Mul(expr.Int(-1), expr.Var("a")),
		expr.Var("b"),
		expr.CSE(expr.Mul(expr.Int(-5), expr.Var("c")), "t"),
		expr.Mul(expr.Int(2), expr.Var("d")),
	}}

	once := GroupSumSigns(sum)
	twice := GroupSumSigns(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("pass is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestGroupSumSignsNonProductsStay(t *testing.T) {
	// Only products with an odd count of negative integer literals
	// move; a bare negative literal or a float-negated product stays.
	sum := expr.Sum{Terms: []expr.Node{
		expr.Int(-4),
		expr.Mul(expr.Float(-2), expr.Var("x")),
		expr.Var("y"),
	}}
	got := GroupSumSigns(sum)
	if !expr.Equal(got, sum) {
		t.Errorf("GroupSumSigns = %s, want unchanged", expr.Format(got))
	}
}

func TestGroupSumSignsRewritesNestedSums(t *testing.T) {
	inner := expr.Sum{Terms: []expr.Node{
		expr.Mul(expr.Int(-1), expr.Var("a")),
		expr.Var("b"),
	}}
	outer := expr.Mul(expr.Int(2), inner)

	got := GroupSumSigns(outer)
	wantInner := expr.Sum{Terms: []expr.Node{
		expr.Var("b"),
		expr.Mul(expr.Int(-1), expr.Var("a")),
	}}
	want := expr.Mul(expr.Int(2), wantInner)
	if !expr.Equal(got, want) {
		t.Errorf("GroupSumSigns = %s, want %s", expr.Format(got), expr.Format(want))
	}
}
