// Package visitor provides ready-made Visitor implementations and the
// extension interfaces generic helpers operate against.
//
// Simple pairs with a Queue or Stack frontier for breadth-first or
// depth-first traversal: it deduplicates at discovery time, records
// parent links, and remembers visit order. Weighted pairs with a MinHeap
// frontier for Dijkstra-style shortest path: it tracks the minimum
// cumulative cost discovered so far and re-admits a node whenever a
// strictly cheaper path appears before the node is finalized
// (relaxation).
//
// Both presets take a termination policy (a policy.Policy over the
// just-visited identifier and a Progress snapshot), so stop conditions
// compose with policy.And/Or/Not. See the policies package for
// GoalReached, OpeningExhausted and NoTermination.
//
// Optional capabilities (parent links, cost lookup, visit counting) are
// modeled as independent interfaces so helpers such as PathTo depend
// only on the capability, never on a concrete visitor type.
//
// A visitor instance is scoped to one traversal call. Keep it around
// after Traverse returns to query the accumulated state; never feed it
// into a second traversal.
package visitor
