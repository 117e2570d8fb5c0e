package builder

import (
	"fmt"
	"log/slog"

	"github.com/wrenfield/trailhead/graph"
	"github.com/wrenfield/trailhead/policy"
)

// Option configures a Builder via functional arguments.
type Option func(*Options)

// Options holds builder observation settings.
type Options struct {
	// Logger, when set, receives a Debug record per rejected candidate
	// and a summary record per Build.
	Logger *slog.Logger
}

// WithLogger enables Debug-level logging of construction decisions.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Builder produces immutable graphs from domain data using a Sampler and
// a pair of construction policies. A Builder is reusable across Build
// calls as long as its policies are stateless; stateful policies (budget
// counters) make it single-use.
type Builder[D, V any] struct {
	sampler    Sampler[D, V]
	nodePolicy policy.Policy[NodeCandidate[V], *Draft[V]]
	edgePolicy policy.Policy[EdgeCandidate, *Draft[V]]
	opts       Options
}

// New returns a Builder over the given sampler and policies. A nil
// policy admits every candidate of its kind. Returns ErrSamplerNil when
// sampler is nil.
func New[D, V any](
	sampler Sampler[D, V],
	nodePolicy policy.Policy[NodeCandidate[V], *Draft[V]],
	edgePolicy policy.Policy[EdgeCandidate, *Draft[V]],
	opts ...Option,
) (*Builder[D, V], error) {
	if sampler == nil {
		return nil, ErrSamplerNil
	}
	b := &Builder[D, V]{
		sampler:    sampler,
		nodePolicy: nodePolicy,
		edgePolicy: edgePolicy,
	}
	for _, opt := range opts {
		opt(&b.opts)
	}

	return b, nil
}

// Build samples the domain data, filters candidates through the
// policies, and assembles the immutable graph.
//
// Node candidates are judged first, in emission order, each receiving
// the next dense identifier whether or not it is accepted. Edge
// candidates are judged afterwards against the complete node
// population. Rejections are silent; Build fails only when an accepted
// edge references an identifier outside the node table (ErrEdgeBounds).
//
// Complexity: O(N + E) policy evaluations.
func (b *Builder[D, V]) Build(domain D) (*graph.Graph[V], error) {
	nodeCands := b.sampler.SampleNodes(domain)
	span := len(nodeCands)
	draft := newDraft[V](span)

	nodes := make([]graph.Node[V], 0, span)
	for i, cand := range nodeCands {
		cand.ID = graph.NodeID(i)
		if b.nodePolicy != nil && !b.nodePolicy.Allow(cand, draft) {
			if b.opts.Logger != nil {
				b.opts.Logger.Debug("node rejected", "id", i)
			}
			continue
		}
		draft.addNode(cand)
		nodes = append(nodes, graph.Node[V]{ID: cand.ID, Value: cand.Value})
	}

	var edges []graph.Edge
	for _, cand := range b.sampler.SampleEdges(domain) {
		if b.edgePolicy != nil && !b.edgePolicy.Allow(cand, draft) {
			if b.opts.Logger != nil {
				b.opts.Logger.Debug("edge rejected", "from", int(cand.From), "to", int(cand.To))
			}
			continue
		}
		if cand.From < 0 || int(cand.From) >= span || cand.To < 0 || int(cand.To) >= span {
			return nil, fmt.Errorf("%w: edge %d→%d outside [0,%d)", ErrEdgeBounds, cand.From, cand.To, span)
		}
		draft.addEdge(cand)
		edges = append(edges, graph.Edge{From: cand.From, To: cand.To, Weight: cand.Weight})
	}

	if b.opts.Logger != nil {
		b.opts.Logger.Debug("graph built",
			"span", span, "nodes", len(nodes), "edges", len(edges))
	}

	return graph.New(span, nodes, edges)
}
