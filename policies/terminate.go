package policies

import (
	"github.com/wrenfield/trailhead/graph"
	"github.com/wrenfield/trailhead/policy"
	"github.com/wrenfield/trailhead/visitor"
)

// GoalReached stops the traversal when the just-visited node is goal.
func GoalReached(goal graph.NodeID) visitor.Terminate {
	return policy.Func[graph.NodeID, visitor.Progress](
		func(id graph.NodeID, _ visitor.Progress) bool {
			return id == goal
		})
}

// OpeningExhausted stops the traversal once limit nodes have been popped
// from the frontier. Combined with GoalReached under policy.Or it bounds
// a search that may never find its goal.
func OpeningExhausted(limit int) visitor.Terminate {
	return policy.Func[graph.NodeID, visitor.Progress](
		func(_ graph.NodeID, p visitor.Progress) bool {
			return p.Pops >= limit
		})
}

// NoTermination never stops; the traversal runs to frontier exhaustion.
func NoTermination() visitor.Terminate {
	return policy.Func[graph.NodeID, visitor.Progress](
		func(graph.NodeID, visitor.Progress) bool {
			return false
		})
}
