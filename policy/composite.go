package policy

// And combines two policies conjunctively. The left operand is evaluated
// first; when it denies, the right operand is not evaluated at all.
func And[E, C any](left, right Policy[E, C]) Policy[E, C] {
	return andNode[E, C]{left: left, right: right}
}

// Or combines two policies disjunctively. The left operand is evaluated
// first; when it allows, the right operand is not evaluated at all.
func Or[E, C any](left, right Policy[E, C]) Policy[E, C] {
	return orNode[E, C]{left: left, right: right}
}

// Not inverts a policy's result. The single operand is always evaluated.
func Not[E, C any](operand Policy[E, C]) Policy[E, C] {
	return notNode[E, C]{operand: operand}
}

// Combined policies form an immutable expression tree; each node owns
// its operands and evaluation walks the tree recursively with the
// short-circuit order documented on the constructors.

type andNode[E, C any] struct {
	left, right Policy[E, C]
}

func (n andNode[E, C]) Allow(entity E, ctx C) bool {
	return n.left.Allow(entity, ctx) && n.right.Allow(entity, ctx)
}

type orNode[E, C any] struct {
	left, right Policy[E, C]
}

func (n orNode[E, C]) Allow(entity E, ctx C) bool {
	return n.left.Allow(entity, ctx) || n.right.Allow(entity, ctx)
}

type notNode[E, C any] struct {
	operand Policy[E, C]
}

func (n notNode[E, C]) Allow(entity E, ctx C) bool {
	return !n.operand.Allow(entity, ctx)
}
