package frontier

import (
	"container/heap"

	"github.com/wrenfield/trailhead/graph"
)

// maxItems orders by descending key, insertion order among equal keys.
type maxItems []*heapItem

func (h maxItems) Len() int { return len(h) }

func (h maxItems) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key > h[j].key
	}

	return h[i].seq < h[j].seq
}

func (h maxItems) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *maxItems) Push(x interface{}) { *h = append(*h, x.(*heapItem)) }

func (h *maxItems) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// MaxHeap is the mirror of MinHeap: pop returns the identifier with the
// largest key supplied at push time. Useful for best-first searches that
// maximize a score rather than minimize a cost.
type MaxHeap struct {
	items maxItems
	seq   uint64
}

// NewMaxHeap returns an empty max-priority frontier.
func NewMaxHeap() *MaxHeap { return &MaxHeap{} }

// Push adds id with the given priority key.
func (h *MaxHeap) Push(id graph.NodeID, priority float64) {
	heap.Push(&h.items, &heapItem{id: id, key: priority, seq: h.seq})
	h.seq++
}

// Pop removes and returns the identifier with the largest key.
func (h *MaxHeap) Pop() (graph.NodeID, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	item := heap.Pop(&h.items).(*heapItem)

	return item.id, true
}

// Empty reports whether no identifiers remain.
func (h *MaxHeap) Empty() bool { return len(h.items) == 0 }
