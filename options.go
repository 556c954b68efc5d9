package turtle

import "github.com/gogpu/gg"

// Option configures a Turtle during creation.
//
// Example:
//
//	t := turtle.New(p,
//	    turtle.WithOrigin(-200, 0),
//	    turtle.WithPenColor(gg.Blue),
//	)
type Option func(*options)

type options struct {
	name      string
	origin    gg.Point
	heading   float64
	penColor  gg.RGBA
	penWidth  float64
	glyphSize float64
}

// Default turtle state.
const (
	DefaultPenWidth  = 2.0
	DefaultGlyphSize = 10.0
)

func defaultOptions() options {
	return options{
		penColor:  gg.Black,
		penWidth:  DefaultPenWidth,
		glyphSize: DefaultGlyphSize,
	}
}

// WithName labels the turtle in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithOrigin sets the starting position.
// RestoreWaypoint on an empty stack still returns to (0, 0).
func WithOrigin(x, y float64) Option {
	return func(o *options) {
		o.origin = gg.Pt(x, y)
	}
}

// WithHeading sets the starting heading in degrees.
func WithHeading(angle float64) Option {
	return func(o *options) {
		o.heading = angle
	}
}

// WithPenColor sets the initial stroke color. The default is black.
func WithPenColor(c gg.RGBA) Option {
	return func(o *options) {
		o.penColor = c
	}
}

// WithPenWidth sets the initial stroke width. The default is 2.
func WithPenWidth(w float64) Option {
	return func(o *options) {
		o.penWidth = w
	}
}

// WithGlyphSize sets the initial glyph size. The default is 10.
func WithGlyphSize(size float64) Option {
	return func(o *options) {
		o.glyphSize = size
	}
}
