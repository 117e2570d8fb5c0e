package graph

import "fmt"

// Graph is an immutable adjacency structure over validated nodes and
// directed edges. The node table has a fixed span: every identifier in
// [0, Span) was assigned to a candidate at construction time, but slots
// whose candidate was rejected stay absent. Edge existence is
// authoritative; traversal never consults the original domain data.
//
// V is the application-supplied node payload type.
type Graph[V any] struct {
	values  []V
	present []bool
	out     [][]Edge
	edges   int
}

// New assembles a Graph from a node-table span, the accepted nodes, and
// the accepted directed edges.
//
// span is the total number of identifiers that were assigned, accepted or
// not; nodes carries only the accepted ones. A node listed twice replaces
// its earlier payload (guard against this with a DenyNodeOverride policy
// at build time). Returns ErrNodeBounds or ErrEdgeBounds when an
// identifier or endpoint falls outside [0, span).
//
// Complexity: O(span + E).
func New[V any](span int, nodes []Node[V], edges []Edge) (*Graph[V], error) {
	if span < 0 {
		return nil, fmt.Errorf("%w: negative span %d", ErrNodeBounds, span)
	}
	g := &Graph[V]{
		values:  make([]V, span),
		present: make([]bool, span),
		out:     make([][]Edge, span),
	}
	for _, n := range nodes {
		if n.ID < 0 || int(n.ID) >= span {
			return nil, fmt.Errorf("%w: node %d outside [0,%d)", ErrNodeBounds, n.ID, span)
		}
		g.values[n.ID] = n.Value
		g.present[n.ID] = true
	}
	for _, e := range edges {
		if e.From < 0 || int(e.From) >= span || e.To < 0 || int(e.To) >= span {
			return nil, fmt.Errorf("%w: edge %d→%d outside [0,%d)", ErrEdgeBounds, e.From, e.To, span)
		}
		g.out[e.From] = append(g.out[e.From], e)
		g.edges++
	}

	return g, nil
}

// Span returns the size of the node table, counting absent slots.
func (g *Graph[V]) Span() int { return len(g.present) }

// NodeCount returns the number of present nodes.
// Complexity: O(span).
func (g *Graph[V]) NodeCount() int {
	n := 0
	for _, p := range g.present {
		if p {
			n++
		}
	}

	return n
}

// EdgeCount returns the number of directed edges.
func (g *Graph[V]) EdgeCount() int { return g.edges }

// HasNode reports whether id names a present node.
func (g *Graph[V]) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.present) && g.present[id]
}

// Value returns the payload stored at id. The second result is false
// when id is absent from the graph.
func (g *Graph[V]) Value(id NodeID) (V, bool) {
	if !g.HasNode(id) {
		var zero V
		return zero, false
	}

	return g.values[id], true
}

// Nodes returns the identifiers of all present nodes in ascending order.
// Complexity: O(span).
func (g *Graph[V]) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(g.present))
	for i, p := range g.present {
		if p {
			ids = append(ids, NodeID(i))
		}
	}

	return ids
}

// OutEdges returns a copy of the outgoing edges of id, in insertion
// order. An absent or out-of-range id yields nil.
func (g *Graph[V]) OutEdges(id NodeID) []Edge {
	if id < 0 || int(id) >= len(g.out) || len(g.out[id]) == 0 {
		return nil
	}
	edges := make([]Edge, len(g.out[id]))
	copy(edges, g.out[id])

	return edges
}

// EdgeWeight returns the weight of the first edge from→to. The second
// result is false when no such edge exists.
// Complexity: O(out-degree of from).
func (g *Graph[V]) EdgeWeight(from, to NodeID) (float64, bool) {
	if from < 0 || int(from) >= len(g.out) {
		return 0, false
	}
	for _, e := range g.out[from] {
		if e.To == to {
			return e.Weight, true
		}
	}

	return 0, false
}
