package policies

import (
	"github.com/wrenfield/trailhead/builder"
	"github.com/wrenfield/trailhead/policy"
)

// AllowAll admits every entity. Useful as the neutral element of a
// policy chain and as an explicit "no filtering" argument.
func AllowAll[E, C any]() policy.Policy[E, C] {
	return policy.Func[E, C](func(E, C) bool { return true })
}

// DenyAll rejects every entity.
func DenyAll[E, C any]() policy.Policy[E, C] {
	return policy.Func[E, C](func(E, C) bool { return false })
}

// AllowNodeValue admits only node candidates carrying the given payload.
func AllowNodeValue[V comparable, C any](want V) policy.Policy[builder.NodeCandidate[V], C] {
	return policy.Func[builder.NodeCandidate[V], C](func(c builder.NodeCandidate[V], _ C) bool {
		return c.Value == want
	})
}

// DenyNodeValue rejects node candidates carrying the given payload.
func DenyNodeValue[V comparable, C any](reject V) policy.Policy[builder.NodeCandidate[V], C] {
	return policy.Func[builder.NodeCandidate[V], C](func(c builder.NodeCandidate[V], _ C) bool {
		return c.Value != reject
	})
}

// AllowWeightBelow admits edge candidates with weight strictly below max.
func AllowWeightBelow[C any](max float64) policy.Policy[builder.EdgeCandidate, C] {
	return policy.Func[builder.EdgeCandidate, C](func(c builder.EdgeCandidate, _ C) bool {
		return c.Weight < max
	})
}

// AllowWeightAbove admits edge candidates with weight strictly above min.
func AllowWeightAbove[C any](min float64) policy.Policy[builder.EdgeCandidate, C] {
	return policy.Func[builder.EdgeCandidate, C](func(c builder.EdgeCandidate, _ C) bool {
		return c.Weight > min
	})
}
