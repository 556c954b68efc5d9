package canvas

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/turtle"
)

// Raster is a canvas that renders to pixels with a gg.Context.
type Raster struct {
	store
	dc   *gg.Context
	proj projection
	opts options
}

var _ turtle.Canvas = (*Raster)(nil)

// NewRaster creates a raster canvas of the given pixel size.
func NewRaster(width, height int, opts ...Option) *Raster {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Raster{
		dc:   gg.NewContext(width, height),
		proj: newProjection(width, height),
		opts: o,
	}
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.SetLineJoin(gg.LineJoinRound)
	r.dc.ClearWithColor(o.background)
	return r
}

// Width returns the canvas width in pixels.
func (r *Raster) Width() int { return r.dc.Width() }

// Height returns the canvas height in pixels.
func (r *Raster) Height() int { return r.dc.Height() }

// Render clears the pixels to the background, strokes every segment in
// the order it was drawn and puts a glyph on top for each pose.
func (r *Raster) Render(poses ...turtle.Pose) error {
	r.dc.ClearWithColor(r.opts.background)

	skipped := 0
	for i, seg := range r.segments {
		if !drawable(seg) {
			skipped++
			continue
		}
		from, to := r.proj.point(seg.From), r.proj.point(seg.To)
		r.dc.SetColor(seg.Color.Color())
		r.dc.SetLineWidth(seg.Width)
		r.dc.DrawLine(from.X, from.Y, to.X, to.Y)
		if err := r.dc.Stroke(); err != nil {
			return fmt.Errorf("canvas: stroke segment %d: %w", i, err)
		}
	}
	if skipped > 0 {
		turtle.Logger().Debug("canvas: skipped degenerate segments", slog.Int("count", skipped))
	}

	if !r.opts.glyph {
		return nil
	}
	r.dc.SetColor(r.opts.glyphColor.Color())
	for _, pose := range poses {
		pts, ok := r.proj.glyph(pose)
		if !ok {
			continue
		}
		r.dc.MoveTo(pts[0].X, pts[0].Y)
		r.dc.LineTo(pts[1].X, pts[1].Y)
		r.dc.LineTo(pts[2].X, pts[2].Y)
		r.dc.ClosePath()
		if err := r.dc.Fill(); err != nil {
			return fmt.Errorf("canvas: fill glyph: %w", err)
		}
	}
	return nil
}

// Image returns the rendered pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the rendered pixels to a PNG file.
func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the rendered pixels as PNG to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (r *Raster) Close() error {
	return r.dc.Close()
}
