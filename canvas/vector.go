package canvas

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gg/recording"
	"github.com/gogpu/turtle"

	// Register the "raster" recording backend.
	_ "github.com/gogpu/gg/recording/backends/raster"
)

// ErrNotRendered is returned when exporting a Vector before Render.
var ErrNotRendered = errors.New("canvas: nothing rendered yet")

// Vector is a canvas that renders into a gg recording.
//
// Each Render produces a fresh immutable recording of the current
// picture. Export plays it back into a registered recording backend,
// so the same turtle drawing can go to PNG or to any vector format a
// backend package provides.
type Vector struct {
	store
	width, height int
	proj          projection
	opts          options
	last          *recording.Recording
}

var _ turtle.Canvas = (*Vector)(nil)

// NewVector creates a vector canvas of the given size.
func NewVector(width, height int, opts ...Option) *Vector {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Vector{
		width:  width,
		height: height,
		proj:   newProjection(width, height),
		opts:   o,
	}
}

// Render records the background, every drawable segment and a glyph
// per pose.
func (v *Vector) Render(poses ...turtle.Pose) error {
	rec := recording.NewRecorder(v.width, v.height)
	rec.SetLineCap(recording.LineCapRound)
	rec.SetLineJoin(recording.LineJoinRound)

	rec.SetColor(v.opts.background)
	rec.DrawRectangle(0, 0, float64(v.width), float64(v.height))
	rec.Fill()

	for _, seg := range v.segments {
		if !drawable(seg) {
			continue
		}
		from, to := v.proj.point(seg.From), v.proj.point(seg.To)
		rec.SetColor(seg.Color)
		rec.SetLineWidth(seg.Width)
		rec.DrawLine(from.X, from.Y, to.X, to.Y)
		rec.Stroke()
	}

	if v.opts.glyph {
		rec.SetColor(v.opts.glyphColor)
		for _, pose := range poses {
			pts, ok := v.proj.glyph(pose)
			if !ok {
				continue
			}
			rec.MoveTo(pts[0].X, pts[0].Y)
			rec.LineTo(pts[1].X, pts[1].Y)
			rec.LineTo(pts[2].X, pts[2].Y)
			rec.ClosePath()
			rec.Fill()
		}
	}

	v.last = rec.FinishRecording()
	return nil
}

// Recording returns the result of the last Render, or nil.
func (v *Vector) Recording() *recording.Recording {
	return v.last
}

// Export plays the last recording into the named backend and saves it
// to path. The backend must implement recording.FileBackend.
func (v *Vector) Export(backend, path string) error {
	b, err := v.playback(backend)
	if err != nil {
		return err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("canvas: backend %q cannot save files", backend)
	}
	if err := fb.SaveToFile(path); err != nil {
		return fmt.Errorf("canvas: export %s: %w", path, err)
	}
	return nil
}

// WriteTo plays the last recording into the named backend and writes
// its output to w. The backend must implement recording.WriterBackend.
func (v *Vector) WriteTo(backend string, w io.Writer) (int64, error) {
	b, err := v.playback(backend)
	if err != nil {
		return 0, err
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return 0, fmt.Errorf("canvas: backend %q cannot write streams", backend)
	}
	return wb.WriteTo(w)
}

func (v *Vector) playback(name string) (recording.Backend, error) {
	if v.last == nil {
		return nil, ErrNotRendered
	}
	b, err := recording.NewBackend(name)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	if err := v.last.Playback(b); err != nil {
		return nil, fmt.Errorf("canvas: playback to %q: %w", name, err)
	}
	return b, nil
}
