// Package policies provides the preset predicates used with the policy
// combinators: value filters and structural rules for graph
// construction, budget counters, and termination rules for traversal.
//
// Construction presets judge builder candidates against the builder's
// Draft context; termination presets judge the just-visited identifier
// against a visitor.Progress snapshot. All of them compose with
// policy.And, policy.Or and policy.Not.
//
// Budget is deliberately stateful: each Allow that admits an entity
// consumes one unit. Combined under a short-circuiting combinator, a
// budget placed after a cheaper check is not consumed on the branch that
// check already decided; place it accordingly.
package policies
