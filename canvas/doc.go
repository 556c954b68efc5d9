// Package canvas provides rendering collaborators for turtles.
//
// Both canvases implement turtle.Canvas: they keep every segment a turtle
// draws until a Clear, and redraw the whole picture on Render.
//
//   - Raster draws with a gg.Context and writes PNG.
//   - Vector records with gg's recording.Recorder. The recording can be
//     played back into any registered recording backend.
//
// Turtle coordinates are projected with the origin at the canvas center
// and +Y pointing up.
//
// # Example
//
//	c := canvas.NewRaster(800, 600, canvas.WithBackground(gg.White))
//	for !t.Idle() {
//	    t.Step(c)
//	}
//	if err := c.Render(t.Pose()); err != nil {
//	    log.Fatal(err)
//	}
//	_ = c.SavePNG("out.png")
//
// Canvases are not safe for concurrent use.
package canvas
