package turtle

import (
	"context"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
)

// Turtle is a cursor that draws by moving. It owns its state and
// command queue exclusively; the only thing it shares is the Canvas
// passed to Step.
//
// A Turtle is not safe for concurrent use. Distinct turtles may be
// stepped from different goroutines if their canvases are distinct.
type Turtle struct {
	name      string
	position  gg.Point
	heading   float64
	penDown   bool
	penColor  gg.RGBA
	penWidth  float64
	glyphSize float64

	queue     *Queue
	waypoints waypointStack
}

// New creates a turtle that will run a copy of p.
// A nil program starts the turtle with an empty queue; use Enqueue to
// give it work later. Modifying p afterwards does not affect the turtle.
//
// The turtle starts with the pen up, heading 0 and a black pen of width 2,
// unless options say otherwise.
func New(p *Program, opts ...Option) *Turtle {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q := NewQueue()
	if p != nil {
		q = p.Queue()
	}

	return &Turtle{
		name:      o.name,
		position:  o.origin,
		heading:   o.heading,
		penColor:  o.penColor,
		penWidth:  o.penWidth,
		glyphSize: o.glyphSize,
		queue:     q,
		waypoints: newWaypointStack(),
	}
}

// Enqueue appends a copy of p to the turtle's remaining commands.
// A nil program adds nothing.
func (t *Turtle) Enqueue(p *Program) {
	if p == nil {
		return
	}
	for _, c := range p.Commands() {
		t.queue.PushBack(c)
	}
}

// Name returns the label given with WithName.
func (t *Turtle) Name() string { return t.name }

// Position returns the current canvas position.
func (t *Turtle) Position() gg.Point { return t.position }

// Heading returns the heading in degrees. It is not normalized.
func (t *Turtle) Heading() float64 { return t.heading }

// PenDown reports whether motion currently draws.
func (t *Turtle) PenDown() bool { return t.penDown }

// PenColor returns the current stroke color.
func (t *Turtle) PenColor() gg.RGBA { return t.penColor }

// PenWidth returns the current stroke width.
func (t *Turtle) PenWidth() float64 { return t.penWidth }

// GlyphSize returns the current glyph size.
func (t *Turtle) GlyphSize() float64 { return t.glyphSize }

// Pending returns the number of commands still queued.
func (t *Turtle) Pending() int { return t.queue.Len() }

// Idle reports whether the queue is empty.
func (t *Turtle) Idle() bool { return t.queue.Empty() }

// Commands returns a copy of the remaining queue, front first.
func (t *Turtle) Commands() []Command { return t.queue.Commands() }

// Waypoints returns the saved waypoints, most recent first.
func (t *Turtle) Waypoints() []Waypoint { return t.waypoints.values() }

// Pose returns the rendering snapshot of the turtle.
func (t *Turtle) Pose() Pose {
	return Pose{
		Position:  t.position,
		Heading:   t.heading,
		PenDown:   t.penDown,
		GlyphSize: t.glyphSize,
	}
}

// Step runs one frame of the turtle's queue against c and returns the
// number of commands dequeued.
//
// Step works through at most as many commands as were queued when it
// was called. A Wait with frames left ends the step early. Commands put
// back at the front by Wait or RestoreWaypoint therefore never make a
// single step run forever.
//
// A nil c discards the draw output. Step never fails: NaN or infinite
// values become degenerate segments.
func (t *Turtle) Step(c Canvas) int {
	if c == nil {
		c = discard{}
	}

	budget := t.queue.Len()
	consumed := 0

	for i := 0; i < budget; i++ {
		cmd, ok := t.queue.Front()
		if !ok {
			break
		}
		if !t.exec(cmd, c) {
			break
		}
		consumed++
	}

	if log := Logger(); consumed > 0 && log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("turtle: step",
			slog.String("turtle", t.name),
			slog.Int("consumed", consumed),
			slog.Int("pending", t.queue.Len()))
	}
	return consumed
}

// exec applies the front command. It reports false when the step must
// stop, which happens only for a Wait that still has frames left; in
// that case the front has been rewritten and nothing was dequeued.
func (t *Turtle) exec(cmd Command, c Canvas) bool {
	switch cmd := cmd.(type) {
	case PenUp:
		t.penDown = false
	case PenDown:
		t.penDown = true
	case TurnLeft:
		t.heading += cmd.Angle
	case TurnRight:
		t.heading -= cmd.Angle
	case MoveForward:
		t.move(cmd.Distance, c)
	case MoveBackward:
		t.move(cmd.Distance, c)
	case SetPenColor:
		t.penColor = cmd.Color
	case SetPenSize:
		t.penWidth = cmd.Width
	case SetSize:
		t.glyphSize = cmd.Size
	case GoTo:
		t.moveTo(gg.Pt(cmd.X, cmd.Y), c)
	case SetHeading:
		t.heading = cmd.Angle
	case Wait:
		if cmd.Frames > 0 {
			t.queue.PopFront()
			t.queue.PushFront(Wait{Frames: cmd.Frames - 1})
			return false
		}
	case Clear:
		c.ClearSegments()
		Logger().Debug("turtle: clear", slog.String("turtle", t.name))
	case AddWaypoint:
		t.waypoints.push(Waypoint{Position: t.position, Heading: t.heading})
	case RestoreWaypoint:
		t.queue.PopFront()
		w, ok := t.waypoints.pop()
		if !ok {
			Logger().Debug("turtle: waypoint stack empty, restoring origin",
				slog.String("turtle", t.name))
		}
		// Front insertion is LIFO: SetHeading ends up ahead of GoTo.
		t.queue.PushFront(GoTo{X: w.Position.X, Y: w.Position.Y})
		t.queue.PushFront(SetHeading{Angle: w.Heading})
		return true
	}
	t.queue.PopFront()
	return true
}

// move displaces the turtle by distance along its heading. Both
// MoveForward and MoveBackward subtract the heading vector.
func (t *Turtle) move(distance float64, c Canvas) {
	t.moveTo(t.position.Sub(direction(t.heading).Mul(distance)), c)
}

// moveTo relocates the turtle, drawing from the old position when the
// pen is down.
func (t *Turtle) moveTo(to gg.Point, c Canvas) {
	from := t.position
	t.position = to
	if t.penDown {
		c.DrawSegment(Segment{
			From:  from,
			To:    to,
			Color: t.penColor,
			Width: t.penWidth,
		})
	}
}

// direction returns the unit vector for a heading in degrees.
func direction(heading float64) gg.Point {
	rad := heading * math.Pi / 180
	return gg.Pt(math.Cos(rad), math.Sin(rad))
}
