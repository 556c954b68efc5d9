package canvas

import (
	"bytes"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/turtle"
)

func drawProgram(t *testing.T, c turtle.Canvas, p *turtle.Program) *turtle.Turtle {
	t.Helper()
	tu := turtle.New(p)
	for i := 0; i < 100 && !tu.Idle(); i++ {
		tu.Step(c)
	}
	if !tu.Idle() {
		t.Fatal("turtle still busy after 100 steps")
	}
	return tu
}

func TestRaster_KeepsSegmentsUntilClear(t *testing.T) {
	r := NewRaster(64, 64)
	defer r.Close()

	p := turtle.NewProgram()
	p.PenDown()
	p.Forward(10)
	p.Forward(10)
	drawProgram(t, r, p)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	segs := r.Segments()
	segs[0].Width = 99
	if r.Segments()[0].Width == 99 {
		t.Error("Segments() returned the internal slice")
	}

	r.ClearSegments()
	if r.Len() != 0 {
		t.Errorf("Len() = %d after ClearSegments, want 0", r.Len())
	}
}

func TestRaster_RenderStrokesSegment(t *testing.T) {
	r := NewRaster(100, 100, WithGlyph(false))
	defer r.Close()

	r.DrawSegment(turtle.Segment{
		From:  gg.Pt(-30, 0),
		To:    gg.Pt(30, 0),
		Color: gg.Red,
		Width: 8,
	})
	if err := r.Render(); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	cr, cg, cb, _ := r.Image().At(50, 50).RGBA()
	if cr < 0xc000 || cg > 0x4000 || cb > 0x4000 {
		t.Errorf("center pixel = (%#x, %#x, %#x), want red", cr, cg, cb)
	}

	wr, wg, wb, _ := r.Image().At(50, 10).RGBA()
	if wr < 0xf000 || wg < 0xf000 || wb < 0xf000 {
		t.Errorf("background pixel = (%#x, %#x, %#x), want white", wr, wg, wb)
	}
}

func TestRaster_RenderAfterClearShowsBackground(t *testing.T) {
	r := NewRaster(40, 40, WithBackground(gg.Black), WithGlyph(false))
	defer r.Close()

	r.DrawSegment(turtle.Segment{From: gg.Pt(-10, 0), To: gg.Pt(10, 0), Color: gg.White, Width: 6})
	r.ClearSegments()
	if err := r.Render(); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	cr, cg, cb, _ := r.Image().At(20, 20).RGBA()
	if cr > 0x1000 || cg > 0x1000 || cb > 0x1000 {
		t.Errorf("center pixel = (%#x, %#x, %#x), want black", cr, cg, cb)
	}
}

func TestRaster_RenderSkipsDegenerateInput(t *testing.T) {
	r := NewRaster(32, 32)
	defer r.Close()

	r.DrawSegment(turtle.Segment{From: gg.Pt(math.NaN(), 0), To: gg.Pt(1, 1), Color: gg.Red, Width: 2})
	r.DrawSegment(turtle.Segment{From: gg.Pt(0, 0), To: gg.Pt(1, 1), Color: gg.Red, Width: -2})
	r.DrawSegment(turtle.Segment{From: gg.Pt(0, 0), To: gg.Pt(math.Inf(1), 1), Color: gg.Red, Width: 2})

	poses := []turtle.Pose{
		{GlyphSize: math.NaN()},
		{GlyphSize: -5},
		{Heading: math.Inf(1), GlyphSize: 10},
		{GlyphSize: 10},
	}
	if err := r.Render(poses...); err != nil {
		t.Errorf("Render() = %v, want nil", err)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, degenerate segments must stay on the canvas", r.Len())
	}
}

func TestRaster_GlyphDrawn(t *testing.T) {
	r := NewRaster(60, 60, WithGlyphColor(gg.Blue))
	defer r.Close()

	if err := r.Render(turtle.Pose{GlyphSize: 30}); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	cr, cg, cb, _ := r.Image().At(30, 30).RGBA()
	if cb < 0xc000 || cr > 0x4000 || cg > 0x4000 {
		t.Errorf("glyph center pixel = (%#x, %#x, %#x), want blue", cr, cg, cb)
	}
}

func TestRaster_EncodeAndSavePNG(t *testing.T) {
	r := NewRaster(48, 24)
	defer r.Close()
	if err := r.Render(); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 24 {
		t.Errorf("decoded bounds = %v, want 48x24", b)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := r.SavePNG(path); err != nil {
		t.Errorf("SavePNG() = %v", err)
	}
	if err := r.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded")
	}
}

func TestProjection(t *testing.T) {
	p := newProjection(200, 100)
	tests := []struct {
		in, want gg.Point
	}{
		{gg.Pt(0, 0), gg.Pt(100, 50)},
		{gg.Pt(10, 20), gg.Pt(110, 30)},
		{gg.Pt(-100, -50), gg.Pt(0, 100)},
	}
	for _, tt := range tests {
		if got := p.point(tt.in); got != tt.want {
			t.Errorf("point(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProjection_GlyphPointsAlongMotion(t *testing.T) {
	p := newProjection(100, 100)
	pts, ok := p.glyph(turtle.Pose{GlyphSize: 10})
	if !ok {
		t.Fatal("glyph() not ok for a valid pose")
	}
	// Heading 0 moves towards -X, so the tip is left of center.
	if pts[0].X >= 50 {
		t.Errorf("tip = %v, want left of center", pts[0])
	}
	if pts[1].X <= 50 || pts[2].X <= 50 {
		t.Errorf("base = %v %v, want right of center", pts[1], pts[2])
	}
}
