package graph

import (
	"fmt"
	"log/slog"
)

// TraverseOption configures a single Traverse call via functional
// arguments.
type TraverseOption func(*TraverseOptions)

// TraverseOptions holds traversal observation hooks. All hooks default to
// no-ops; the loop's behavior never depends on them.
type TraverseOptions struct {
	// OnPush is called whenever an identifier is pushed onto the
	// frontier, including the initial start push.
	OnPush func(id NodeID, priority float64)

	// OnPop is called immediately after an identifier is popped, before
	// its edges are expanded.
	OnPop func(id NodeID)

	// Logger, when set, receives a Debug record per pop and a final
	// record on termination.
	Logger *slog.Logger
}

// DefaultTraverseOptions returns TraverseOptions with no-op hooks and no
// logger.
func DefaultTraverseOptions() TraverseOptions {
	return TraverseOptions{
		OnPush: func(NodeID, float64) {},
		OnPop:  func(NodeID) {},
	}
}

// WithOnPush registers a callback to run on every frontier push.
func WithOnPush(fn func(id NodeID, priority float64)) TraverseOption {
	return func(o *TraverseOptions) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback to run on every frontier pop.
func WithOnPop(fn func(id NodeID)) TraverseOption {
	return func(o *TraverseOptions) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithLogger enables Debug-level trace logging of the traversal.
func WithLogger(l *slog.Logger) TraverseOption {
	return func(o *TraverseOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// traversal states.
type state uint8

const (
	stateIdle state = iota
	stateExpanding
	stateTerminated
)

// walker encapsulates the mutable state of one Traverse call.
type walker[V any] struct {
	front   Frontier
	visitor Visitor[V]
	opts    TraverseOptions
	tc      Context[V]
	state   state
}

// Traverse explores the graph from start, driving the Frontier and the
// Visitor together. The Frontier decides which discovered node is
// processed next; the Visitor decides which edges are crossed, records
// visits, and decides when to halt.
//
// For every popped node n the loop, in this fixed order:
//
//  1. expands each outgoing edge (n, m), pushing m with the Visitor's
//     ExplorationCost as priority when ShouldExplore allows it;
//  2. calls Visit(n);
//  3. calls ShouldStop(n) and terminates immediately on a true result.
//
// An emptied frontier is a normal, non-error termination. The loop
// performs no deduplication: repeated pops of the same identifier (stale
// heap entries, re-discovery through several edges) are handed to the
// Visitor, which is the sole source of truth for finalization.
//
// Traverse returns ErrStartNotFound when start is absent from the graph,
// and ErrFrontierNil/ErrVisitorNil for nil collaborators. There is no
// external cancellation: callers wanting wall-clock or step limits
// express them as termination policies on the Visitor.
func (g *Graph[V]) Traverse(start NodeID, f Frontier, v Visitor[V], opts ...TraverseOption) error {
	if f == nil {
		return ErrFrontierNil
	}
	if v == nil {
		return ErrVisitorNil
	}
	o := DefaultTraverseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	w := &walker[V]{
		front:   f,
		visitor: v,
		opts:    o,
		tc:      Context[V]{Graph: g},
	}
	// Idle → Expanding: seed the frontier with the start node at the
	// identity priority.
	w.push(start, 0)
	w.state = stateExpanding
	w.loop()

	return nil
}

// loop processes the frontier until it empties or the visitor stops the
// traversal.
func (w *walker[V]) loop() {
	for w.state == stateExpanding && !w.front.Empty() {
		id, ok := w.front.Pop()
		if !ok {
			break
		}
		w.tc.Pops++
		w.opts.OnPop(id)
		if w.opts.Logger != nil {
			w.opts.Logger.Debug("pop", "node", int(id), "pops", w.tc.Pops)
		}

		// Edge expansion precedes the node's own visit so that a stop
		// decision below can rely on all admissible successors having
		// been queued.
		w.expand(id)
		w.visitor.Visit(id, &w.tc)
		if w.visitor.ShouldStop(id, &w.tc) {
			w.state = stateTerminated
			if w.opts.Logger != nil {
				w.opts.Logger.Debug("terminated", "node", int(id), "pops", w.tc.Pops)
			}

			return
		}
	}
	// Exhausted: the frontier drained without a stop decision.
	w.state = stateTerminated
	if w.opts.Logger != nil {
		w.opts.Logger.Debug("exhausted", "pops", w.tc.Pops)
	}
}

// expand offers every outgoing edge of id to the visitor and pushes the
// admissible targets.
func (w *walker[V]) expand(id NodeID) {
	for _, e := range w.tc.Graph.out[id] {
		if w.visitor.ShouldExplore(e.From, e.To, &w.tc) {
			w.push(e.To, w.visitor.ExplorationCost(e.From, e.To, &w.tc))
		}
	}
}

func (w *walker[V]) push(id NodeID, priority float64) {
	w.opts.OnPush(id, priority)
	w.front.Push(id, priority)
}
