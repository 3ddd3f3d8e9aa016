// Package codegen compiles symbolic kernel expressions into an ordered
// list of assignment instructions for a downstream loop-nest code
// generator.
//
// A batch of named assignments flows once through a fixed pipeline of
// pure tree rewrites:
//
//  1. Special-function derivative expansion
//  2. Bessel-J order gathering (whole batch, read-only)
//  3. Special-function substitution with stable recurrences
//  4. Indexed-name to vector-component rewriting
//  5. Power normalization
//  6. Fraction reduction
//  7. Sign-based term grouping
//  8. Complex-constant width pinning
//  9. Caller-supplied extra passes
//
// Later passes rely on invariants established by earlier ones. In
// particular, substitution requires the order gathering to have seen
// the entire batch: one assignment's recurrence may descend from a
// maximum order that only another assignment requests.
//
// The pipeline is deterministic and side-effect free. Recoverable
// problems do not exist here: an input shape a pass does not handle is
// passed through unchanged for a later stage or the downstream
// generator to deal with, while a violated internal invariant (an
// order above the gathered maximum, a non-literal recurrence order)
// panics, since it indicates a compiler bug that retrying cannot fix.
package codegen
