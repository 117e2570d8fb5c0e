package builder

import (
	"errors"

	"github.com/wrenfield/trailhead/graph"
)

// Sentinel errors for graph construction.
var (
	// ErrSamplerNil is returned by New when no Sampler is supplied.
	ErrSamplerNil = errors.New("builder: sampler is nil")

	// ErrEdgeBounds is returned by Build when an accepted edge
	// references an identifier outside the node table. An edge policy
	// (e.g. DenyDanglingEdge) can reject such candidates instead.
	ErrEdgeBounds = errors.New("builder: accepted edge endpoint out of bounds")
)

// NodeCandidate is a tentative node proposed by a Sampler, subject to
// node-policy approval. ID is assigned by the builder in emission order;
// samplers leave it zero.
type NodeCandidate[V any] struct {
	ID    graph.NodeID
	Value V
}

// EdgeCandidate is a tentative directed edge proposed by a Sampler,
// subject to edge-policy approval. From and To reference node
// identifiers, i.e. candidate-emission positions. Weight is 1 for
// unweighted samplers.
type EdgeCandidate struct {
	From   graph.NodeID
	To     graph.NodeID
	Weight float64
}

// Sampler converts domain data into candidate nodes and edges. A
// Sampler must be deterministic for a given input: the order of
// SampleNodes determines identifier assignment in the resulting graph.
//
// D is the domain-data type (a grid, a matrix, an adjacency list); V is
// the node payload type.
type Sampler[D, V any] interface {
	// SampleNodes proposes one candidate per future node, in
	// identifier-assignment order.
	SampleNodes(domain D) []NodeCandidate[V]

	// SampleEdges proposes directed edge candidates between sampled
	// positions.
	SampleEdges(domain D) []EdgeCandidate
}

// Draft is the read-only view of accepted-so-far state handed to
// construction policies as their context. Node policies observe the
// nodes accepted before the candidate under judgment; edge policies
// additionally observe the edges accepted before theirs.
type Draft[V any] struct {
	span  int
	nodes map[graph.NodeID]V
	adj   map[graph.NodeID]map[graph.NodeID]bool
	edges int
}

func newDraft[V any](span int) *Draft[V] {
	return &Draft[V]{
		span:  span,
		nodes: make(map[graph.NodeID]V, span),
		adj:   make(map[graph.NodeID]map[graph.NodeID]bool),
	}
}

// Span returns the total number of identifiers assigned, accepted or not.
func (d *Draft[V]) Span() int { return d.span }

// NodeCount returns the number of accepted nodes so far.
func (d *Draft[V]) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of accepted edges so far.
func (d *Draft[V]) EdgeCount() int { return d.edges }

// HasNode reports whether id was accepted.
func (d *Draft[V]) HasNode(id graph.NodeID) bool {
	_, ok := d.nodes[id]

	return ok
}

// Value returns the payload of an accepted node. The second result is
// false when id was rejected or not yet judged.
func (d *Draft[V]) Value(id graph.NodeID) (V, bool) {
	v, ok := d.nodes[id]

	return v, ok
}

// HasEdge reports whether an edge from→to was already accepted.
func (d *Draft[V]) HasEdge(from, to graph.NodeID) bool {
	return d.adj[from][to]
}

func (d *Draft[V]) addNode(c NodeCandidate[V]) {
	d.nodes[c.ID] = c.Value
}

func (d *Draft[V]) addEdge(c EdgeCandidate) {
	if d.adj[c.From] == nil {
		d.adj[c.From] = make(map[graph.NodeID]bool)
	}
	d.adj[c.From][c.To] = true
	d.edges++
}
