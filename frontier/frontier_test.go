package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/trailhead/frontier"
	"github.com/wrenfield/trailhead/graph"
)

func drain(f graph.Frontier) []graph.NodeID {
	var out []graph.NodeID
	for {
		id, ok := f.Pop()
		if !ok {
			break
		}
		out = append(out, id)
	}

	return out
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := frontier.NewQueue()
	q.Push(3, 0)
	q.Push(1, 0)
	q.Push(2, 0)

	assert.Equal(t, []graph.NodeID{3, 1, 2}, drain(q))
	assert.True(t, q.Empty())
}

func TestQueue_IgnoresPriority(t *testing.T) {
	q := frontier.NewQueue()
	q.Push(1, 100)
	q.Push(2, -5)
	q.Push(3, 0)

	assert.Equal(t, []graph.NodeID{1, 2, 3}, drain(q))
}

func TestQueue_PopEmpty(t *testing.T) {
	q := frontier.NewQueue()

	_, ok := q.Pop()
	assert.False(t, ok)
	assert.True(t, q.Empty())
}

func TestQueue_InterleavedPushPop(t *testing.T) {
	q := frontier.NewQueue()
	q.Push(1, 0)
	q.Push(2, 0)

	id, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, graph.NodeID(1), id)

	q.Push(3, 0)
	assert.Equal(t, []graph.NodeID{2, 3}, drain(q))
}

// Exercises the drained-prefix reclaim path.
func TestQueue_LongDrain(t *testing.T) {
	q := frontier.NewQueue()
	const n = 200
	for i := 0; i < n; i++ {
		q.Push(graph.NodeID(i), 0)
	}
	for i := 0; i < n; i++ {
		id, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, graph.NodeID(i), id)
	}
	assert.True(t, q.Empty())
}

func TestStack_LIFOOrder(t *testing.T) {
	s := frontier.NewStack()
	s.Push(3, 0)
	s.Push(1, 0)
	s.Push(2, 0)

	assert.Equal(t, []graph.NodeID{2, 1, 3}, drain(s))
	assert.True(t, s.Empty())
}

func TestStack_PopEmpty(t *testing.T) {
	s := frontier.NewStack()

	_, ok := s.Pop()
	assert.False(t, ok)
}

func TestStack_InterleavedPushPop(t *testing.T) {
	s := frontier.NewStack()
	s.Push(1, 0)
	s.Push(2, 0)

	id, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, graph.NodeID(2), id)

	s.Push(3, 0)
	assert.Equal(t, []graph.NodeID{3, 1}, drain(s))
}

func TestMinHeap_AscendingKeyOrder(t *testing.T) {
	h := frontier.NewMinHeap()
	h.Push(1, 5)
	h.Push(2, 1)
	h.Push(3, 3)

	assert.Equal(t, []graph.NodeID{2, 3, 1}, drain(h))
	assert.True(t, h.Empty())
}

func TestMinHeap_EqualKeysPopInInsertionOrder(t *testing.T) {
	h := frontier.NewMinHeap()
	h.Push(7, 2)
	h.Push(4, 2)
	h.Push(9, 2)

	assert.Equal(t, []graph.NodeID{7, 4, 9}, drain(h))
}

func TestMinHeap_PopEmpty(t *testing.T) {
	h := frontier.NewMinHeap()

	_, ok := h.Pop()
	assert.False(t, ok)
}

func TestMaxHeap_DescendingKeyOrder(t *testing.T) {
	h := frontier.NewMaxHeap()
	h.Push(1, 5)
	h.Push(2, 1)
	h.Push(3, 3)

	assert.Equal(t, []graph.NodeID{1, 3, 2}, drain(h))
	assert.True(t, h.Empty())
}

func TestMaxHeap_EqualKeysPopInInsertionOrder(t *testing.T) {
	h := frontier.NewMaxHeap()
	h.Push(7, 2)
	h.Push(4, 2)
	h.Push(9, 2)

	assert.Equal(t, []graph.NodeID{7, 4, 9}, drain(h))
}

// Frontiers retain every pushed entry, including repeats of the same
// identifier; deduplication is the visitor's job.
func TestFrontiers_KeepDuplicates(t *testing.T) {
	fs := map[string]graph.Frontier{
		"queue":   frontier.NewQueue(),
		"stack":   frontier.NewStack(),
		"minheap": frontier.NewMinHeap(),
		"maxheap": frontier.NewMaxHeap(),
	}
	for name, f := range fs {
		f.Push(1, 0)
		f.Push(1, 0)
		f.Push(1, 0)

		assert.Len(t, drain(f), 3, "%s must not deduplicate", name)
	}
}
