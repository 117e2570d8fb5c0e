package visitor

import "github.com/wrenfield/trailhead/graph"

// Simple is the unweighted preset visitor: it admits each node through
// exactly one edge (dedup at discovery), records the discovering parent,
// and remembers visit order. With a Queue frontier this is breadth-first
// search; with a Stack frontier, depth-first search.
//
// V is the graph's payload type; Simple never reads payloads, the
// parameter only binds it to graph.Visitor[V].
type Simple[V any] struct {
	discovered map[graph.NodeID]bool
	parent     map[graph.NodeID]graph.NodeID
	visited    map[graph.NodeID]bool
	order      []graph.NodeID
	terminate  Terminate
}

// NewSimple returns a Simple visitor. terminate decides after every
// visit whether the traversal halts; nil means run to frontier
// exhaustion.
func NewSimple[V any](terminate Terminate) *Simple[V] {
	return &Simple[V]{
		discovered: make(map[graph.NodeID]bool),
		parent:     make(map[graph.NodeID]graph.NodeID),
		visited:    make(map[graph.NodeID]bool),
		terminate:  terminate,
	}
}

// ShouldExplore admits the edge only when to has been neither discovered
// nor finalized yet, and records from as its parent. The finalized check
// matters for the start node: it is seeded onto the frontier rather than
// discovered through an edge, so a cycle closing back onto it must not
// give it a parent link.
func (s *Simple[V]) ShouldExplore(from, to graph.NodeID, _ *graph.Context[V]) bool {
	// A self-loop can never discover anything new.
	if from == to || s.discovered[to] || s.visited[to] {
		return false
	}
	s.discovered[to] = true
	s.parent[to] = from

	return true
}

// ExplorationCost is a constant hop cost; Queue and Stack ignore it.
func (s *Simple[V]) ExplorationCost(_, _ graph.NodeID, _ *graph.Context[V]) float64 {
	return 1
}

// Visit finalizes id. A repeated visit of the same identifier (possible
// when the start node is also discovered through an edge) is ignored.
func (s *Simple[V]) Visit(id graph.NodeID, _ *graph.Context[V]) {
	if s.visited[id] {
		return
	}
	s.visited[id] = true
	s.order = append(s.order, id)
}

// ShouldStop consults the termination policy with the current progress.
func (s *Simple[V]) ShouldStop(id graph.NodeID, tc *graph.Context[V]) bool {
	if s.terminate == nil {
		return false
	}

	return s.terminate.Allow(id, Progress{Pops: tc.Pops, Visited: len(s.visited)})
}

// Parent returns the node that discovered id. The second result is false
// for the start node and for nodes never discovered.
func (s *Simple[V]) Parent(id graph.NodeID) (graph.NodeID, bool) {
	p, ok := s.parent[id]

	return p, ok
}

// Reached reports whether id was finalized.
func (s *Simple[V]) Reached(id graph.NodeID) bool { return s.visited[id] }

// VisitedCount returns the number of finalized nodes.
func (s *Simple[V]) VisitedCount() int { return len(s.visited) }

// Order returns the finalized nodes in visit order.
func (s *Simple[V]) Order() []graph.NodeID {
	out := make([]graph.NodeID, len(s.order))
	copy(out, s.order)

	return out
}
