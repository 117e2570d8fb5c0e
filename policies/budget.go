package policies

import "github.com/wrenfield/trailhead/policy"

// budget admits the first max entities it judges, then denies.
type budget[E, C any] struct {
	remaining int
}

// Allow consumes one unit per admitted entity. Under a short-circuiting
// combinator the budget is only consumed when this operand is actually
// evaluated.
func (b *budget[E, C]) Allow(_ E, _ C) bool {
	if b.remaining <= 0 {
		return false
	}
	b.remaining--

	return true
}

// Budget returns a stateful policy admitting at most max entities. Each
// positive Allow consumes one unit; once the budget is spent every
// further entity is denied. Budgets are single-use: construct a fresh
// one per Build or per traversal.
func Budget[E, C any](max int) policy.Policy[E, C] {
	return &budget[E, C]{remaining: max}
}
