package frontier

import "github.com/wrenfield/trailhead/graph"

// Stack is a LIFO frontier: paired with a dedup-at-discovery visitor it
// produces depth-first traversal order. The priority key is ignored.
//
// The zero value is ready to use.
type Stack struct {
	items []graph.NodeID
}

// NewStack returns an empty LIFO frontier.
func NewStack() *Stack { return &Stack{} }

// Push places id on top of the stack. The priority key is ignored.
func (s *Stack) Push(id graph.NodeID, _ float64) {
	s.items = append(s.items, id)
}

// Pop removes and returns the most-recently-pushed identifier.
func (s *Stack) Pop() (graph.NodeID, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	id := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return id, true
}

// Empty reports whether no identifiers remain.
func (s *Stack) Empty() bool { return len(s.items) == 0 }
