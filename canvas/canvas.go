package canvas

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/turtle"
)

// Option configures a canvas during creation.
type Option func(*options)

type options struct {
	background gg.RGBA
	glyphColor gg.RGBA
	glyph      bool
}

// DefaultGlyphColor is the dark green of the turtle glyph.
var DefaultGlyphColor = gg.RGB(0, 0.392, 0)

func defaultOptions() options {
	return options{
		background: gg.White,
		glyphColor: DefaultGlyphColor,
		glyph:      true,
	}
}

// WithBackground sets the color the canvas is cleared to before drawing.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithGlyphColor sets the fill color of turtle glyphs.
func WithGlyphColor(c gg.RGBA) Option {
	return func(o *options) {
		o.glyphColor = c
	}
}

// WithGlyph enables or disables drawing turtle glyphs. Enabled by default.
func WithGlyph(enabled bool) Option {
	return func(o *options) {
		o.glyph = enabled
	}
}

// store keeps the segments handed over by turtles.
type store struct {
	segments []turtle.Segment
}

// DrawSegment implements turtle.Canvas.
func (s *store) DrawSegment(seg turtle.Segment) {
	s.segments = append(s.segments, seg)
}

// ClearSegments implements turtle.Canvas.
func (s *store) ClearSegments() {
	s.segments = s.segments[:0]
}

// Segments returns a copy of the segments currently on the canvas.
func (s *store) Segments() []turtle.Segment {
	out := make([]turtle.Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len returns the number of segments currently on the canvas.
func (s *store) Len() int {
	return len(s.segments)
}

// drawable reports whether a segment can be stroked. Non-finite endpoints
// and non-positive widths stay on the canvas but are skipped at render.
func drawable(seg turtle.Segment) bool {
	return seg.Finite() && seg.Width > 0
}

// projection maps turtle coordinates to pixels.
type projection struct {
	cx, cy float64
}

func newProjection(width, height int) projection {
	return projection{cx: float64(width) / 2, cy: float64(height) / 2}
}

func (p projection) point(pt gg.Point) gg.Point {
	return gg.Pt(p.cx+pt.X, p.cy-pt.Y)
}

// glyph returns the triangle for a pose in pixel space, tip first.
// The tip points the way MoveForward travels. ok is false when the
// pose cannot be drawn.
func (p projection) glyph(pose turtle.Pose) (pts [3]gg.Point, ok bool) {
	size := pose.GlyphSize
	if !(size > 0) || math.IsInf(size, 0) {
		return pts, false
	}
	rad := pose.Heading * math.Pi / 180
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		return pts, false
	}

	fwd := gg.Pt(-math.Cos(rad), -math.Sin(rad))
	side := gg.Pt(-fwd.Y, fwd.X)
	c := pose.Position

	pts[0] = p.point(c.Add(fwd.Mul(size * 0.6)))
	pts[1] = p.point(c.Sub(fwd.Mul(size * 0.4)).Add(side.Mul(size * 0.4)))
	pts[2] = p.point(c.Sub(fwd.Mul(size * 0.4)).Sub(side.Mul(size * 0.4)))
	for _, pt := range pts {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			return pts, false
		}
	}
	return pts, true
}
