package visitor

import (
	"github.com/wrenfield/trailhead/graph"
	"github.com/wrenfield/trailhead/policy"
)

// Progress is the read-only snapshot handed to termination policies on
// every stop decision.
type Progress struct {
	// Pops counts frontier pops so far, including the current node.
	Pops int

	// Visited counts nodes finalized by Visit so far.
	Visited int
}

// Terminate is the policy shape consulted after every visit: the entity
// is the just-visited identifier, the context the current Progress.
// A true result halts the traversal.
type Terminate = policy.Policy[graph.NodeID, Progress]

// ParentTracker is the capability of recording, per node, the node that
// caused it to be discovered. PathTo operates solely against this
// interface.
type ParentTracker interface {
	// Parent returns the recorded parent of id. The second result is
	// false for the start node and for nodes never discovered.
	Parent(id graph.NodeID) (graph.NodeID, bool)

	// Reached reports whether id was finalized by a Visit call.
	Reached(id graph.NodeID) bool
}

// CostTracker is the capability of recording, per node, the minimum
// cumulative weight at which it was finalized.
type CostTracker interface {
	// CostTo returns the finalized cost of id. The second result is
	// false for nodes never reached.
	CostTo(id graph.NodeID) (float64, bool)
}

// Counter is the capability of counting finalized visits.
type Counter interface {
	VisitedCount() int
}

// PathTo reconstructs the start→target path as a lazy backward walk over
// parent links. The second result is false when target was never
// visited; an unreached target is an expected outcome, not an error.
//
// Complexity: O(path length).
func PathTo(t ParentTracker, target graph.NodeID) ([]graph.NodeID, bool) {
	if !t.Reached(target) {
		return nil, false
	}
	path := []graph.NodeID{target}
	for cur := target; ; {
		parent, ok := t.Parent(cur)
		if !ok || parent == cur {
			break
		}
		path = append(path, parent)
		cur = parent
	}
	// Reverse the backward walk into start → target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
