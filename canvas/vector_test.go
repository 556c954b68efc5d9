package canvas

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/turtle"
)

func countStrokes(r *recording.Recording) int {
	n := 0
	for _, c := range r.Commands() {
		if c.Type() == recording.CmdStrokePath {
			n++
		}
	}
	return n
}

func TestVector_RecordsDrawableSegments(t *testing.T) {
	v := NewVector(100, 100)

	p := turtle.NewProgram()
	p.PenDown()
	p.Forward(10)
	p.Left(90)
	p.Forward(10)
	p.SetPenSize(0)
	p.Forward(10)
	tu := drawProgram(t, v, p)

	if v.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", v.Len())
	}
	if err := v.Render(tu.Pose()); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	rec := v.Recording()
	if rec == nil {
		t.Fatal("Recording() = nil after Render")
	}
	if rec.Width() != 100 || rec.Height() != 100 {
		t.Errorf("recording size = %dx%d, want 100x100", rec.Width(), rec.Height())
	}
	if n := countStrokes(rec); n != 2 {
		t.Errorf("stroke commands = %d, want 2 (zero width skipped)", n)
	}
}

func TestVector_ClearEmptiesNextRecording(t *testing.T) {
	v := NewVector(50, 50, WithGlyph(false))
	v.DrawSegment(turtle.Segment{From: gg.Pt(0, 0), To: gg.Pt(5, 5), Color: gg.Red, Width: 1})
	v.ClearSegments()

	if err := v.Render(); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if n := countStrokes(v.Recording()); n != 0 {
		t.Errorf("stroke commands = %d after clear, want 0", n)
	}
}

func TestVector_ExportRaster(t *testing.T) {
	v := NewVector(80, 60)
	v.DrawSegment(turtle.Segment{From: gg.Pt(-20, 0), To: gg.Pt(20, 0), Color: gg.Blue, Width: 4})

	path := filepath.Join(t.TempDir(), "vector.png")
	if err := v.Export("raster", path); !errors.Is(err, ErrNotRendered) {
		t.Errorf("Export() before Render = %v, want ErrNotRendered", err)
	}

	if err := v.Render(); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if err := v.Export("raster", path); err != nil {
		t.Fatalf("Export() = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("exported bounds = %v, want 80x60", b)
	}

	var buf bytes.Buffer
	if _, err := v.WriteTo("raster", &buf); err != nil {
		t.Errorf("WriteTo() = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("WriteTo() wrote nothing")
	}
}

func TestVector_UnknownBackend(t *testing.T) {
	v := NewVector(10, 10)
	if err := v.Render(); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if err := v.Export("no-such-backend", filepath.Join(t.TempDir(), "x")); err == nil {
		t.Error("Export() to unknown backend succeeded")
	}
}
