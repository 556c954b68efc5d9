package turtle

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/gogpu/gg"
)

// Waypoint is a saved position and heading.
type Waypoint struct {
	Position gg.Point
	Heading  float64
}

// waypointStack is the LIFO of saved waypoints.
type waypointStack struct {
	stack *arraystack.Stack
}

func newWaypointStack() waypointStack {
	return waypointStack{stack: arraystack.New()}
}

func (s waypointStack) push(w Waypoint) {
	s.stack.Push(w)
}

// pop removes the top waypoint. An empty stack yields the origin
// with heading 0 and ok == false.
func (s waypointStack) pop() (w Waypoint, ok bool) {
	v, ok := s.stack.Pop()
	if !ok {
		return Waypoint{}, false
	}
	return v.(Waypoint), true
}

// values returns the waypoints from most to least recent.
func (s waypointStack) values() []Waypoint {
	vals := s.stack.Values()
	out := make([]Waypoint, len(vals))
	for i, v := range vals {
		out[i] = v.(Waypoint)
	}
	return out
}
