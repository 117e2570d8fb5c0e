package frontier

import "github.com/wrenfield/trailhead/graph"

// Queue is a FIFO frontier: paired with a dedup-at-discovery visitor it
// produces breadth-first traversal order. The priority key is ignored.
//
// The zero value is ready to use.
type Queue struct {
	items []graph.NodeID
	head  int
}

// NewQueue returns an empty FIFO frontier.
func NewQueue() *Queue { return &Queue{} }

// Push appends id to the back of the queue. The priority key is ignored.
func (q *Queue) Push(id graph.NodeID, _ float64) {
	q.items = append(q.items, id)
}

// Pop removes and returns the earliest-pushed identifier.
func (q *Queue) Pop() (graph.NodeID, bool) {
	if q.head >= len(q.items) {
		return 0, false
	}
	id := q.items[q.head]
	q.head++
	// Reclaim the drained prefix once it dominates the backing slice.
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return id, true
}

// Empty reports whether no identifiers remain.
func (q *Queue) Empty() bool { return q.head >= len(q.items) }
