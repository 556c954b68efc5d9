package turtle

import (
	"fmt"

	"github.com/gogpu/gg"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one turtle operation.
type CommandType uint8

const (
	// Pen commands
	CmdPenUp       CommandType = iota // Stop drawing
	CmdPenDown                        // Start drawing
	CmdSetPenColor                    // Set stroke color
	CmdSetPenSize                     // Set stroke width

	// Motion commands
	CmdTurnLeft     // Relative heading change, counter-clockwise
	CmdTurnRight    // Relative heading change, clockwise
	CmdMoveForward  // Move along heading
	CmdMoveBackward // Move along heading
	CmdGoTo         // Absolute position jump
	CmdSetHeading   // Absolute heading

	// Control commands
	CmdSetSize         // Glyph scale
	CmdWait            // Frame delay
	CmdClear           // Remove drawn segments
	CmdAddWaypoint     // Push position and heading
	CmdRestoreWaypoint // Pop position and heading
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdPenUp:           "PenUp",
	CmdPenDown:         "PenDown",
	CmdSetPenColor:     "SetPenColor",
	CmdSetPenSize:      "SetPenSize",
	CmdTurnLeft:        "TurnLeft",
	CmdTurnRight:       "TurnRight",
	CmdMoveForward:     "MoveForward",
	CmdMoveBackward:    "MoveBackward",
	CmdGoTo:            "GoTo",
	CmdSetHeading:      "SetHeading",
	CmdSetSize:         "SetSize",
	CmdWait:            "Wait",
	CmdClear:           "Clear",
	CmdAddWaypoint:     "AddWaypoint",
	CmdRestoreWaypoint: "RestoreWaypoint",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands are plain values: they hold no reference to a canvas and
// can be copied freely between programs and turtles.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Pen Commands
// --------------------------------------------------------------------------

// PenUp lifts the pen. Motion no longer leaves a trace.
type PenUp struct{}

// Type implements Command.
func (PenUp) Type() CommandType { return CmdPenUp }

// PenDown lowers the pen. Every following motion emits a segment.
type PenDown struct{}

// Type implements Command.
func (PenDown) Type() CommandType { return CmdPenDown }

// SetPenColor sets the stroke color of subsequently drawn segments.
type SetPenColor struct {
	Color gg.RGBA
}

// Type implements Command.
func (SetPenColor) Type() CommandType { return CmdSetPenColor }

// SetPenSize sets the stroke width of subsequently drawn segments.
type SetPenSize struct {
	Width float64
}

// Type implements Command.
func (SetPenSize) Type() CommandType { return CmdSetPenSize }

// --------------------------------------------------------------------------
// Motion Commands
// --------------------------------------------------------------------------

// TurnLeft adds Angle degrees to the heading.
type TurnLeft struct {
	Angle float64
}

// Type implements Command.
func (TurnLeft) Type() CommandType { return CmdTurnLeft }

// TurnRight subtracts Angle degrees from the heading.
type TurnRight struct {
	Angle float64
}

// Type implements Command.
func (TurnRight) Type() CommandType { return CmdTurnRight }

// MoveForward moves the turtle Distance units along its heading.
type MoveForward struct {
	Distance float64
}

// Type implements Command.
func (MoveForward) Type() CommandType { return CmdMoveForward }

// MoveBackward moves the turtle Distance units along its heading.
// It applies the same displacement as MoveForward; the caller picks
// the sign of Distance.
type MoveBackward struct {
	Distance float64
}

// Type implements Command.
func (MoveBackward) Type() CommandType { return CmdMoveBackward }

// GoTo jumps to an absolute canvas position.
type GoTo struct {
	X, Y float64
}

// Type implements Command.
func (GoTo) Type() CommandType { return CmdGoTo }

// SetHeading sets the heading in degrees. 0 faces the positive X axis.
type SetHeading struct {
	Angle float64
}

// Type implements Command.
func (SetHeading) Type() CommandType { return CmdSetHeading }

// --------------------------------------------------------------------------
// Control Commands
// --------------------------------------------------------------------------

// SetSize sets the scale of the turtle glyph. It has no effect on motion.
type SetSize struct {
	Size float64
}

// Type implements Command.
func (SetSize) Type() CommandType { return CmdSetSize }

// Wait holds the queue for Frames further steps.
type Wait struct {
	Frames int
}

// Type implements Command.
func (Wait) Type() CommandType { return CmdWait }

// Clear removes every segment drawn so far.
type Clear struct{}

// Type implements Command.
func (Clear) Type() CommandType { return CmdClear }

// AddWaypoint pushes the current position and heading onto the waypoint stack.
type AddWaypoint struct{}

// Type implements Command.
func (AddWaypoint) Type() CommandType { return CmdAddWaypoint }

// RestoreWaypoint pops the waypoint stack and returns the turtle there.
// An empty stack restores the origin with heading 0.
type RestoreWaypoint struct{}

// Type implements Command.
func (RestoreWaypoint) Type() CommandType { return CmdRestoreWaypoint }

// Describe formats a command with its payload, e.g. "GoTo(5, 5)".
func Describe(c Command) string {
	switch c := c.(type) {
	case SetPenColor:
		return fmt.Sprintf("SetPenColor(%.3g, %.3g, %.3g, %.3g)", c.Color.R, c.Color.G, c.Color.B, c.Color.A)
	case SetPenSize:
		return fmt.Sprintf("SetPenSize(%g)", c.Width)
	case TurnLeft:
		return fmt.Sprintf("TurnLeft(%g)", c.Angle)
	case TurnRight:
		return fmt.Sprintf("TurnRight(%g)", c.Angle)
	case MoveForward:
		return fmt.Sprintf("MoveForward(%g)", c.Distance)
	case MoveBackward:
		return fmt.Sprintf("MoveBackward(%g)", c.Distance)
	case GoTo:
		return fmt.Sprintf("GoTo(%g, %g)", c.X, c.Y)
	case SetHeading:
		return fmt.Sprintf("SetHeading(%g)", c.Angle)
	case SetSize:
		return fmt.Sprintf("SetSize(%g)", c.Size)
	case Wait:
		return fmt.Sprintf("Wait(%d)", c.Frames)
	case nil:
		return "<nil>"
	default:
		return c.Type().String()
	}
}
