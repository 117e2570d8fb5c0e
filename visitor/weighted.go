package visitor

import "github.com/wrenfield/trailhead/graph"

// Weighted is the cost-tracking preset visitor for shortest-path
// traversal over non-negative edge weights. Pair it with a MinHeap
// frontier: the frontier pops nodes in order of cumulative cost and
// Weighted relaxes edges, overwriting a node's tentative cost whenever a
// strictly cheaper path is found before the node is finalized.
//
// Stale frontier entries (a node re-pushed with a better key leaves the
// worse entry behind) are recognized in Visit and ignored.
type Weighted[V any] struct {
	dist      map[graph.NodeID]float64
	parent    map[graph.NodeID]graph.NodeID
	done      map[graph.NodeID]bool
	order     []graph.NodeID
	terminate Terminate
}

// NewWeighted returns a Weighted visitor. terminate decides after every
// visit whether the traversal halts; nil means run to frontier
// exhaustion.
func NewWeighted[V any](terminate Terminate) *Weighted[V] {
	return &Weighted[V]{
		dist:      make(map[graph.NodeID]float64),
		parent:    make(map[graph.NodeID]graph.NodeID),
		done:      make(map[graph.NodeID]bool),
		terminate: terminate,
	}
}

// ExplorationCost returns the cumulative cost to reach to via from: the
// best known cost of from plus the weight of the edge between them.
func (w *Weighted[V]) ExplorationCost(from, to graph.NodeID, tc *graph.Context[V]) float64 {
	weight, _ := tc.Graph.EdgeWeight(from, to)

	return w.dist[from] + weight
}

// ShouldExplore admits the edge when to is unseen or the path via from
// is strictly cheaper than the best known one. On improvement the cost
// is overwritten, not accumulated, and the parent link is re-pointed.
// Finalized nodes are never re-admitted.
func (w *Weighted[V]) ShouldExplore(from, to graph.NodeID, tc *graph.Context[V]) bool {
	// A self-loop over non-negative weights can never improve a path.
	if from == to || w.done[to] {
		return false
	}
	cand := w.ExplorationCost(from, to, tc)
	cur, seen := w.dist[to]
	if seen && cand >= cur {
		return false
	}
	w.dist[to] = cand
	w.parent[to] = from

	return true
}

// Visit finalizes id at its current tentative cost. Pops of stale
// frontier entries are ignored. The start node, which carries no
// tentative cost, is finalized at zero.
func (w *Weighted[V]) Visit(id graph.NodeID, _ *graph.Context[V]) {
	if w.done[id] {
		return
	}
	if _, seen := w.dist[id]; !seen {
		w.dist[id] = 0
	}
	w.done[id] = true
	w.order = append(w.order, id)
}

// ShouldStop consults the termination policy with the current progress.
func (w *Weighted[V]) ShouldStop(id graph.NodeID, tc *graph.Context[V]) bool {
	if w.terminate == nil {
		return false
	}

	return w.terminate.Allow(id, Progress{Pops: tc.Pops, Visited: len(w.done)})
}

// CostTo returns the finalized cost of id. The second result is false
// for nodes never reached; asking about an unreached node is an expected
// outcome, not an error.
func (w *Weighted[V]) CostTo(id graph.NodeID) (float64, bool) {
	if !w.done[id] {
		return 0, false
	}

	return w.dist[id], true
}

// Parent returns the predecessor of id on the cheapest discovered path.
// The second result is false for the start node and for nodes never
// discovered.
func (w *Weighted[V]) Parent(id graph.NodeID) (graph.NodeID, bool) {
	p, ok := w.parent[id]

	return p, ok
}

// Reached reports whether id was finalized.
func (w *Weighted[V]) Reached(id graph.NodeID) bool { return w.done[id] }

// VisitedCount returns the number of finalized nodes.
func (w *Weighted[V]) VisitedCount() int { return len(w.done) }

// Order returns the finalized nodes in visit order.
func (w *Weighted[V]) Order() []graph.NodeID {
	out := make([]graph.NodeID, len(w.order))
	copy(out, w.order)

	return out
}
