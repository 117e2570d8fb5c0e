// Package graph provides the immutable adjacency structure at the heart of
// trailhead, together with the traversal orchestration loop that drives a
// Frontier and a Visitor against it.
//
// A Graph is built once (usually through the builder package) and never
// mutated afterwards: every traversal observes the same node and edge
// tables, so a single Graph may safely back any number of concurrently
// running traversals as long as each traversal owns its own Frontier and
// Visitor instances.
//
// The traversal loop is deliberately algorithm-agnostic. It becomes
// breadth-first search, depth-first search or Dijkstra purely through the
// Frontier discipline (FIFO, LIFO, min-priority) and the Visitor's
// exploration decisions; the loop itself performs no deduplication and
// keeps no visited state.
//
// Per-pop flow (fixed order, see Traverse):
//
//  1. Pop the next node from the Frontier.
//  2. For each outgoing edge, ask the Visitor ShouldExplore; admissible
//     targets are pushed with the Visitor's ExplorationCost as priority.
//  3. Visit the popped node.
//  4. Ask the Visitor ShouldStop; a true answer terminates immediately.
//
// Edge expansion happens before the node's own Visit on purpose: a Visitor
// deciding to stop in step 4 can rely on all admissible successors of the
// current node having been queued, which weighted relaxation requires.
//
// Complexity of Traverse: O(P·(F + d)) where P is the number of pops,
// d the out-degree of popped nodes, and F the Frontier's per-operation
// cost (O(1) for Queue/Stack, O(log n) for the heaps).
//
// Errors:
//
//	ErrStartNotFound - traversal started from an identifier absent from the graph.
//	ErrFrontierNil   - nil Frontier passed to Traverse.
//	ErrVisitorNil    - nil Visitor passed to Traverse.
//	ErrNodeBounds    - node identifier outside the table during construction.
//	ErrEdgeBounds    - edge endpoint outside the table during construction.
package graph
