// Package policy defines the composable boolean predicate used across
// trailhead: construction-time node and edge validation, and
// traversal-time termination rules, all share the same Policy contract
// and the same And/Or/Not combinators.
//
// A Policy is a boolean-valued rule over an (entity, context) pair. The
// combinators build an immutable expression tree that is evaluated by a
// recursive short-circuiting walk, left operand first:
//
//   - And(a, b) skips b when a denies.
//   - Or(a, b) skips b when a allows.
//   - Not(p) inverts p and never short-circuits.
//
// Composition is associative in result but not side-effect-commutative:
// a stateful policy (say, a budget counter) placed after a cheaper check
// is simply not evaluated on the short-circuited branch. This ordering
// sensitivity is part of the contract: place stateful or expensive
// policies so that short-circuiting yields the side-effect profile you
// want.
//
// Evaluation must not fail. A policy that cannot determine an answer
// encodes that as a context-dependent boolean decision (typically
// default-deny), never as an error.
package policy
