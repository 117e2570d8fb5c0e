package policies

import (
	"github.com/wrenfield/trailhead/builder"
	"github.com/wrenfield/trailhead/policy"
)

// DenySelfLoop rejects edge candidates whose endpoints coincide.
func DenySelfLoop[C any]() policy.Policy[builder.EdgeCandidate, C] {
	return policy.Func[builder.EdgeCandidate, C](func(c builder.EdgeCandidate, _ C) bool {
		return c.From != c.To
	})
}

// DenyDanglingEdge rejects edge candidates referencing an identifier
// that is not an accepted node, typically one excluded by a node
// policy. This is how "no dangling edges" stays a policy rather than a
// builder invariant.
func DenyDanglingEdge[V any]() policy.Policy[builder.EdgeCandidate, *builder.Draft[V]] {
	return policy.Func[builder.EdgeCandidate, *builder.Draft[V]](
		func(c builder.EdgeCandidate, d *builder.Draft[V]) bool {
			return d.HasNode(c.From) && d.HasNode(c.To)
		})
}

// DenyParallelEdge rejects edge candidates duplicating an already
// accepted from→to connection.
func DenyParallelEdge[V any]() policy.Policy[builder.EdgeCandidate, *builder.Draft[V]] {
	return policy.Func[builder.EdgeCandidate, *builder.Draft[V]](
		func(c builder.EdgeCandidate, d *builder.Draft[V]) bool {
			return !d.HasEdge(c.From, c.To)
		})
}

// DenyNodeOverride rejects node candidates whose identifier is already
// occupied by an accepted node, preventing later candidates from
// replacing earlier payloads.
func DenyNodeOverride[V any]() policy.Policy[builder.NodeCandidate[V], *builder.Draft[V]] {
	return policy.Func[builder.NodeCandidate[V], *builder.Draft[V]](
		func(c builder.NodeCandidate[V], d *builder.Draft[V]) bool {
			return !d.HasNode(c.ID)
		})
}
