// Package expr defines the expression tree for symgen.
//
// The tree is a closed tagged union of node kinds: every pass in the
// compiler switches exhaustively over Node implementations, so adding a
// kind forces every consumer to handle it.
//
// Nodes are immutable by convention. Transforms never mutate a node in
// place; they rebuild the spine above any changed child. Structural
// identity (Key, Equal) is the basis for all memoization: two trees with
// the same Key are interchangeable, and no algebraic canonicalization is
// applied before keying, so 2*x and x*2 are distinct.
//
// # Structure
//
// Leaf kinds are Variable and the numeric literals (Int, Rational, Float,
// Complex). Interior kinds are Call, Sum, Product, Power, Quotient,
// Lookup, Subscript, CommonSub, and Derivative.
//
// CommonSub is a first-class common-subexpression marker, not decoration.
// It survives every pass so that the downstream code generator can hoist
// and deduplicate the wrapped computation; no pass flattens it away.
package expr
