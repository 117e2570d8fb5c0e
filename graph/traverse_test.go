package graph_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/trailhead/frontier"
	"github.com/wrenfield/trailhead/graph"
	"github.com/wrenfield/trailhead/visitor"
)

// lineGraph builds 0→1→…→n-1 with unit weights.
func lineGraph(t *testing.T, n int) *graph.Graph[int] {
	t.Helper()
	nodes := make([]graph.Node[int], n)
	for i := range nodes {
		nodes[i] = graph.Node[int]{ID: graph.NodeID(i), Value: i}
	}
	edges := make([]graph.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, graph.Edge{From: graph.NodeID(i), To: graph.NodeID(i + 1), Weight: 1})
	}
	g, err := graph.New(n, nodes, edges)
	require.NoError(t, err)

	return g
}

func TestTraverse_NilCollaborators(t *testing.T) {
	g := lineGraph(t, 2)

	err := g.Traverse(0, nil, visitor.NewSimple[int](nil))
	assert.ErrorIs(t, err, graph.ErrFrontierNil)

	err = g.Traverse(0, frontier.NewQueue(), nil)
	assert.ErrorIs(t, err, graph.ErrVisitorNil)
}

func TestTraverse_StartNotFound(t *testing.T) {
	g := lineGraph(t, 2)

	err := g.Traverse(7, frontier.NewQueue(), visitor.NewSimple[int](nil))
	require.ErrorIs(t, err, graph.ErrStartNotFound)
	assert.Contains(t, err.Error(), "7")
}

func TestTraverse_StartOnAbsentSlot(t *testing.T) {
	g, err := graph.New(2, []graph.Node[int]{{ID: 0}}, nil)
	require.NoError(t, err)

	err = g.Traverse(1, frontier.NewQueue(), visitor.NewSimple[int](nil))
	assert.ErrorIs(t, err, graph.ErrStartNotFound)
}

func TestTraverse_SingleNode(t *testing.T) {
	g := lineGraph(t, 1)
	v := visitor.NewSimple[int](nil)

	require.NoError(t, g.Traverse(0, frontier.NewQueue(), v))
	assert.Equal(t, []graph.NodeID{0}, v.Order())
}

func TestTraverse_VisitsReachableOnly(t *testing.T) {
	// Two components: 0→1 and 2→3.
	g, err := graph.New(4,
		[]graph.Node[int]{{ID: 0}, {ID: 1}, {ID: 2}, {ID: 3}},
		[]graph.Edge{{From: 0, To: 1, Weight: 1}, {From: 2, To: 3, Weight: 1}})
	require.NoError(t, err)

	v := visitor.NewSimple[int](nil)
	require.NoError(t, g.Traverse(0, frontier.NewQueue(), v))

	assert.Equal(t, []graph.NodeID{0, 1}, v.Order())
	assert.False(t, v.Reached(2))
	assert.False(t, v.Reached(3))
}

// The loop expands a node's edges before visiting the node itself, so by
// the time Visit(n) runs every admissible successor of n is already on
// the frontier.
func TestTraverse_ExpandsBeforeVisit(t *testing.T) {
	g := lineGraph(t, 3)

	var events []string
	v := &recordingVisitor{events: &events}
	err := g.Traverse(0, frontier.NewQueue(), v,
		graph.WithOnPush(func(id graph.NodeID, priority float64) {
			events = append(events, fmt.Sprintf("push:%d@%g", id, priority))
		}),
		graph.WithOnPop(func(id graph.NodeID) {
			events = append(events, fmt.Sprintf("pop:%d", id))
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"push:0@0",
		"pop:0", "push:1@1", "visit:0",
		"pop:1", "push:2@1", "visit:1",
		"pop:2", "visit:2",
	}, events)
}

// recordingVisitor logs Visit calls into a shared event stream and
// explores every edge at unit cost.
type recordingVisitor struct {
	events *[]string
	stopAt graph.NodeID
	stop   bool
}

func (r *recordingVisitor) ShouldExplore(_, _ graph.NodeID, _ *graph.Context[int]) bool {
	return true
}

func (r *recordingVisitor) ExplorationCost(_, _ graph.NodeID, _ *graph.Context[int]) float64 {
	return 1
}

func (r *recordingVisitor) Visit(id graph.NodeID, _ *graph.Context[int]) {
	*r.events = append(*r.events, fmt.Sprintf("visit:%d", id))
}

func (r *recordingVisitor) ShouldStop(id graph.NodeID, _ *graph.Context[int]) bool {
	return r.stop && id == r.stopAt
}

func TestTraverse_StopHaltsImmediately(t *testing.T) {
	g := lineGraph(t, 5)

	var events []string
	v := &recordingVisitor{events: &events, stop: true, stopAt: 1}
	require.NoError(t, g.Traverse(0, frontier.NewQueue(), v))

	assert.Equal(t, []string{"visit:0", "visit:1"}, events)
}

func TestTraverse_RepeatedPopsReachVisitor(t *testing.T) {
	// Diamond: 0→1, 0→2, 1→3, 2→3. With a visitor that explores
	// everything, node 3 is pushed twice and visited twice.
	g, err := graph.New(4,
		[]graph.Node[int]{{ID: 0}, {ID: 1}, {ID: 2}, {ID: 3}},
		[]graph.Edge{
			{From: 0, To: 1, Weight: 1},
			{From: 0, To: 2, Weight: 1},
			{From: 1, To: 3, Weight: 1},
			{From: 2, To: 3, Weight: 1},
		})
	require.NoError(t, err)

	var events []string
	v := &recordingVisitor{events: &events}
	require.NoError(t, g.Traverse(0, frontier.NewQueue(), v))

	visits := 0
	for _, e := range events {
		if e == "visit:3" {
			visits++
		}
	}
	assert.Equal(t, 2, visits, "the loop must not deduplicate pops")
}

func TestTraverse_CycleTerminatesWithDedupVisitor(t *testing.T) {
	// 0→1→2→0.
	g, err := graph.New(3,
		[]graph.Node[int]{{ID: 0}, {ID: 1}, {ID: 2}},
		[]graph.Edge{
			{From: 0, To: 1, Weight: 1},
			{From: 1, To: 2, Weight: 1},
			{From: 2, To: 0, Weight: 1},
		})
	require.NoError(t, err)

	v := visitor.NewSimple[int](nil)
	require.NoError(t, g.Traverse(0, frontier.NewQueue(), v))

	assert.Equal(t, []graph.NodeID{0, 1, 2}, v.Order())
}

func TestTraverse_Deterministic(t *testing.T) {
	g, err := graph.New(5,
		[]graph.Node[int]{{ID: 0}, {ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}},
		[]graph.Edge{
			{From: 0, To: 2, Weight: 1},
			{From: 0, To: 1, Weight: 1},
			{From: 1, To: 3, Weight: 1},
			{From: 2, To: 4, Weight: 1},
			{From: 2, To: 3, Weight: 1},
		})
	require.NoError(t, err)

	run := func() []graph.NodeID {
		v := visitor.NewSimple[int](nil)
		require.NoError(t, g.Traverse(0, frontier.NewQueue(), v))

		return v.Order()
	}

	first := run()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, run())
	}
}
