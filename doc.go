// Package turtle provides frame-driven turtle graphics on top of gg.
//
// # Overview
//
// A caller scripts a turtle with a [Program]: movement, pen and heading
// commands are queued ahead of time, without a canvas. A [Turtle] created
// from the program replays the queue one frame at a time against a
// [Canvas], which receives the line segments the turtle draws.
//
// # Quick Start
//
//	import "github.com/gogpu/turtle"
//
//	p := turtle.NewProgram()
//	p.SetPenColor(gg.Red)
//	p.PenDown()
//	for i := 0; i < 36; i++ {
//	    p.Forward(100)
//	    p.Left(170)
//	}
//
//	t := turtle.New(p)
//	c := canvas.NewRaster(512, 512)
//	for !t.Idle() {
//	    t.Step(c)
//	}
//	_ = c.Render(t.Pose())
//	_ = c.SavePNG("star.png")
//
// # Frames
//
// [Turtle.Step] handles at most the commands that were queued when it
// started. [Wait] spends whole frames; [AddWaypoint] and a zero Wait cost
// nothing. [RestoreWaypoint] is replaced at the front of the queue by a
// [SetHeading] followed by a [GoTo].
//
// # Coordinate System
//
//   - Origin (0,0) is wherever the canvas puts it (canvas.Raster: the center)
//   - Angles in degrees, 0 faces +X, TurnLeft adds, TurnRight subtracts
//   - MoveForward and MoveBackward both move by -(cos h, sin h) * distance
//
// # Invalid Input
//
// Nothing in a program is rejected. NaN or infinite numbers and negative
// widths flow through to the segments. [Program.Validate] reports them
// without changing how they run.
//
// # Related Packages
//
//   - canvas: raster (PNG) and vector (gg recording) canvases
//   - stage: fixed-tick loop stepping several turtles
//   - script: a small LOGO-like language compiled to programs
//   - lsystem: Lindenmayer systems drawn with the waypoint stack
//   - config: YAML scene files for cmd/turtledemo
package turtle
