package turtle

import (
	"math"

	"github.com/gogpu/gg"
)

// Segment is a line drawn by a turtle with its pen down.
// Once emitted it belongs to the canvas, which keeps it until a Clear.
type Segment struct {
	From, To gg.Point
	Color    gg.RGBA
	Width    float64
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.From.Distance(s.To)
}

// Finite reports whether both endpoints have finite coordinates.
// Commands with NaN or infinite values produce segments that are not finite.
func (s Segment) Finite() bool {
	for _, v := range [...]float64{s.From.X, s.From.Y, s.To.X, s.To.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Canvas receives the draw output of a turtle.
//
// The turtle calls DrawSegment for every segment it draws and
// ClearSegments for every Clear command. The canvas owns the segments
// it has been given and keeps them until ClearSegments.
type Canvas interface {
	DrawSegment(s Segment)
	ClearSegments()
}

// discard is the canvas used when Step is given nil.
type discard struct{}

func (discard) DrawSegment(Segment) {}
func (discard) ClearSegments()      {}

// Pose is a read-only snapshot of a turtle for rendering its glyph.
type Pose struct {
	Position  gg.Point
	Heading   float64
	PenDown   bool
	GlyphSize float64
}
