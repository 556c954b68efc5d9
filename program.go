package turtle

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// ErrInvalidCommand is wrapped by every error returned from Program.Validate.
var ErrInvalidCommand = errors.New("turtle: invalid command")

// Program scripts a turtle before any rendering is live.
// Each method appends exactly one command (Reset appends two) and does
// nothing else: values are not checked here, and the interpreter never
// fails on them.
//
// Example:
//
//	p := turtle.NewProgram()
//	p.PenDown()
//	for i := 0; i < 4; i++ {
//	    p.Forward(100)
//	    p.Right(90)
//	}
//	t := turtle.New(p)
//
// The zero value is an empty program ready to use.
// A Program is not safe for concurrent use.
type Program struct {
	queue *Queue
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{queue: NewQueue()}
}

func (p *Program) push(c Command) {
	if p.queue == nil {
		p.queue = NewQueue()
	}
	p.queue.PushBack(c)
}

// Right turns clockwise by angle degrees.
func (p *Program) Right(angle float64) {
	p.push(TurnRight{Angle: angle})
}

// Left turns counter-clockwise by angle degrees.
func (p *Program) Left(angle float64) {
	p.push(TurnLeft{Angle: angle})
}

// Forward moves along the heading.
func (p *Program) Forward(distance float64) {
	p.push(MoveForward{Distance: distance})
}

// Backward moves along the heading. See MoveBackward.
func (p *Program) Backward(distance float64) {
	p.push(MoveBackward{Distance: distance})
}

// PenUp stops drawing.
func (p *Program) PenUp() {
	p.push(PenUp{})
}

// PenDown starts drawing.
func (p *Program) PenDown() {
	p.push(PenDown{})
}

// SetPenColor sets the stroke color.
func (p *Program) SetPenColor(c gg.RGBA) {
	p.push(SetPenColor{Color: c})
}

// SetPenSize sets the stroke width.
func (p *Program) SetPenSize(width float64) {
	p.push(SetPenSize{Width: width})
}

// SetSize sets the glyph size.
func (p *Program) SetSize(size float64) {
	p.push(SetSize{Size: size})
}

// GoTo jumps to (x, y).
func (p *Program) GoTo(x, y float64) {
	p.push(GoTo{X: x, Y: y})
}

// SetHeading sets the absolute heading in degrees.
func (p *Program) SetHeading(angle float64) {
	p.push(SetHeading{Angle: angle})
}

// Wait holds the queue for the given number of frames.
func (p *Program) Wait(frames int) {
	p.push(Wait{Frames: frames})
}

// Clear erases everything drawn so far.
func (p *Program) Clear() {
	p.push(Clear{})
}

// Reset returns to the origin and erases the drawing.
// The pen state is left alone, so a lowered pen draws the way home
// before the erase removes it.
func (p *Program) Reset() {
	p.push(GoTo{})
	p.push(Clear{})
}

// SetWaypoint saves the current position and heading.
func (p *Program) SetWaypoint() {
	p.push(AddWaypoint{})
}

// GotoWaypoint returns to the most recently saved waypoint.
func (p *Program) GotoWaypoint() {
	p.push(RestoreWaypoint{})
}

// Append appends raw commands in order. Nil commands are skipped.
func (p *Program) Append(cmds ...Command) {
	for _, c := range cmds {
		if c != nil {
			p.push(c)
		}
	}
}

// Len returns the number of queued commands.
func (p *Program) Len() int {
	if p.queue == nil {
		return 0
	}
	return p.queue.Len()
}

// Commands returns a copy of the queued commands.
func (p *Program) Commands() []Command {
	if p.queue == nil {
		return nil
	}
	return p.queue.Commands()
}

// Queue returns an independent copy of the program's queue.
// Changes to p after the call do not affect the copy.
func (p *Program) Queue() *Queue {
	if p.queue == nil {
		return NewQueue()
	}
	return p.queue.Clone()
}

// Validate reports commands whose values produce degenerate geometry:
// non-finite numbers and negative widths, sizes or wait counts.
// It returns nil when every command is well formed.
//
// Validate is advisory. The interpreter runs invalid commands the same
// way whether or not Validate was called.
func (p *Program) Validate() error {
	var errs []error
	for i, c := range p.Commands() {
		if err := validateCommand(c); err != nil {
			errs = append(errs, fmt.Errorf("%w: #%d %s: %s", ErrInvalidCommand, i, Describe(c), err))
		}
	}
	return errors.Join(errs...)
}

func validateCommand(c Command) error {
	switch c := c.(type) {
	case TurnLeft:
		return checkFinite("angle", c.Angle)
	case TurnRight:
		return checkFinite("angle", c.Angle)
	case SetHeading:
		return checkFinite("angle", c.Angle)
	case MoveForward:
		return checkFinite("distance", c.Distance)
	case MoveBackward:
		return checkFinite("distance", c.Distance)
	case GoTo:
		if err := checkFinite("x", c.X); err != nil {
			return err
		}
		return checkFinite("y", c.Y)
	case SetPenSize:
		return checkNonNegative("width", c.Width)
	case SetSize:
		return checkNonNegative("size", c.Size)
	case SetPenColor:
		for _, v := range [...]float64{c.Color.R, c.Color.G, c.Color.B, c.Color.A} {
			if math.IsNaN(v) || v < 0 || v > 1 {
				return errors.New("color component outside [0, 1]")
			}
		}
	case Wait:
		if c.Frames < 0 {
			return errors.New("negative frame count")
		}
	}
	return nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s is not finite", name)
	}
	return nil
}

func checkNonNegative(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%s is negative", name)
	}
	return nil
}
