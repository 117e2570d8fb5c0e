package frontier

import (
	"container/heap"

	"github.com/wrenfield/trailhead/graph"
)

// heapItem pairs an identifier with its priority key and an insertion
// sequence number used as a deterministic tiebreaker.
type heapItem struct {
	id  graph.NodeID
	key float64
	seq uint64
}

// minItems implements heap.Interface ordered by ascending key, then by
// insertion order among equal keys.
type minItems []*heapItem

func (h minItems) Len() int { return len(h) }

func (h minItems) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].seq < h[j].seq
}

func (h minItems) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *minItems) Push(x interface{}) { *h = append(*h, x.(*heapItem)) }

func (h *minItems) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// MinHeap is a priority frontier: pop returns the identifier with the
// smallest key supplied at push time. Paired with a cost-tracking
// visitor it produces Dijkstra-style shortest-path traversal.
//
// The heap follows the lazy-decrease-key pattern: relaxation pushes a
// duplicate entry with the better key, and the stale entry is popped
// later for the visitor to ignore. Equal keys pop in insertion order, so
// a given push sequence always drains identically.
type MinHeap struct {
	items minItems
	seq   uint64
}

// NewMinHeap returns an empty min-priority frontier.
func NewMinHeap() *MinHeap { return &MinHeap{} }

// Push adds id with the given priority key.
func (h *MinHeap) Push(id graph.NodeID, priority float64) {
	heap.Push(&h.items, &heapItem{id: id, key: priority, seq: h.seq})
	h.seq++
}

// Pop removes and returns the identifier with the smallest key.
func (h *MinHeap) Pop() (graph.NodeID, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	item := heap.Pop(&h.items).(*heapItem)

	return item.id, true
}

// Empty reports whether no identifiers remain.
func (h *MinHeap) Empty() bool { return len(h.items) == 0 }
