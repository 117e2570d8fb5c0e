package policy

// Policy is a boolean-valued rule over an (entity, context) pair.
// Implementations are either pure or locally stateful (budget counters);
// either way Allow never fails.
//
// E is the entity kind being judged (a node candidate, an edge candidate,
// a node identifier); C is the read-only context the judgment may
// consult (a construction draft, a traversal progress snapshot).
type Policy[E, C any] interface {
	// Allow reports whether entity passes the rule under ctx.
	Allow(entity E, ctx C) bool
}

// Func adapts an ordinary function to the Policy interface.
type Func[E, C any] func(entity E, ctx C) bool

// Allow invokes the wrapped function.
func (f Func[E, C]) Allow(entity E, ctx C) bool { return f(entity, ctx) }
