// Package graph core types: node identifiers, edges, the Frontier and
// Visitor contracts, and the traversal Context.
package graph

import "errors"

// Sentinel errors for graph construction and traversal.
var (
	// ErrStartNotFound is returned when Traverse is given an identifier
	// that is absent from the graph (never sampled, or dropped by a
	// node policy at construction time).
	ErrStartNotFound = errors.New("graph: start node not found")

	// ErrFrontierNil is returned when Traverse is given a nil Frontier.
	ErrFrontierNil = errors.New("graph: frontier is nil")

	// ErrVisitorNil is returned when Traverse is given a nil Visitor.
	ErrVisitorNil = errors.New("graph: visitor is nil")

	// ErrNodeBounds is returned by New when a node's identifier lies
	// outside the node table.
	ErrNodeBounds = errors.New("graph: node identifier out of bounds")

	// ErrEdgeBounds is returned by New when an edge endpoint lies
	// outside the node table.
	ErrEdgeBounds = errors.New("graph: edge endpoint out of bounds")
)

// NodeID is an opaque, densely-assigned handle into a Graph's node table.
// Identifiers are assigned starting at 0 in candidate-emission order and
// are stable for the lifetime of the Graph; they are never reused or
// renumbered after construction.
type NodeID int

// Node pairs an identifier with its application-supplied payload.
type Node[V any] struct {
	ID    NodeID
	Value V
}

// Edge is a directed connection between two nodes. Weight is 1 for edges
// produced by unweighted samplers.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight float64
}

// Frontier is an exploration-order container over raw node identifiers.
// The discipline (FIFO, LIFO, priority) is a property of the concrete
// implementation; the traversal loop never depends on it.
//
// A Frontier must not deduplicate: the same identifier may be pushed
// several times (weighted relaxation re-inserts an already-seen node with
// a better priority), and visited-tracking belongs to the Visitor alone.
// Priority is meaningful only to priority-ordered frontiers; Queue and
// Stack ignore it.
type Frontier interface {
	// Push adds id to the frontier with the given priority key.
	Push(id NodeID, priority float64)

	// Pop removes and returns the next identifier per the discipline.
	// The second result is false when the frontier is empty.
	Pop() (NodeID, bool)

	// Empty reports whether no identifiers remain.
	Empty() bool
}

// Visitor holds the per-traversal exploration and termination logic.
// Implementations own all traversal state (visited sets, parent links,
// cost maps); the loop never re-derives whether a node is finalized.
//
// The loop invokes the methods in a fixed order for every popped node:
// ShouldExplore once per outgoing edge, then Visit, then ShouldStop.
// None of the methods may fail; a Visitor that cannot decide should
// encode that as a boolean policy (typically default-deny), and queries
// for never-reached nodes must yield an explicit absent result rather
// than an error.
type Visitor[V any] interface {
	// ShouldExplore decides whether the edge from→to is followed. A
	// false result means to is not pushed onto the frontier as a result
	// of this edge.
	ShouldExplore(from, to NodeID, tc *Context[V]) bool

	// ExplorationCost supplies the priority key used when to is pushed
	// after a positive ShouldExplore. Unweighted visitors return a
	// constant; weighted visitors return the cumulative cost to reach
	// to via from.
	ExplorationCost(from, to NodeID, tc *Context[V]) float64

	// Visit records that id was popped and accepted for processing.
	// All visit-time side effects (marking visited, recording parents
	// and costs) happen here.
	Visit(id NodeID, tc *Context[V])

	// ShouldStop is consulted after Visit; a true result terminates the
	// traversal immediately, even if the frontier is non-empty.
	ShouldStop(id NodeID, tc *Context[V]) bool
}

// Context carries read-only traversal-scoped information that a Visitor
// may consult but does not own. A fresh Context is created per Traverse
// call.
type Context[V any] struct {
	// Graph is the structure being traversed.
	Graph *Graph[V]

	// Pops counts nodes popped from the frontier so far, including the
	// one currently being processed.
	Pops int
}
