// Package stage runs turtles against a canvas on a fixed tick.
//
// A Stage is the host loop of a turtle drawing: each tick steps every
// turtle once, in the order they were added, and renders the surface.
// It runs headless, as fast as possible or paced by an interval.
package stage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/turtle"
)

// ErrFrameLimit is returned by Run when MaxFrames ticks pass while some
// turtle still has commands queued.
var ErrFrameLimit = errors.New("stage: frame limit reached")

// Surface is a canvas that can draw the current picture.
// canvas.Raster and canvas.Vector implement it.
type Surface interface {
	turtle.Canvas
	Render(poses ...turtle.Pose) error
}

// RunOptions controls Run.
type RunOptions struct {
	// MaxFrames stops the run after this many ticks. Zero means no limit.
	MaxFrames int

	// Interval paces ticks with a ticker. Zero ticks as fast as possible.
	Interval time.Duration

	// RenderEvery renders only every n-th frame plus the final one.
	// Zero or one renders every frame.
	RenderEvery int

	// OnFrame is called after each rendered frame. An error stops the run.
	OnFrame func(frame int) error
}

// Stage owns a surface and the turtles drawing on it.
// A Stage is not safe for concurrent use.
type Stage struct {
	surface Surface
	turtles []*turtle.Turtle
	frame   int
}

// New creates a stage drawing on s.
func New(s Surface, turtles ...*turtle.Turtle) *Stage {
	return &Stage{surface: s, turtles: turtles}
}

// Add puts more turtles on the stage. They are stepped after the
// existing ones.
func (s *Stage) Add(turtles ...*turtle.Turtle) {
	s.turtles = append(s.turtles, turtles...)
}

// Turtles returns the turtles on the stage.
func (s *Stage) Turtles() []*turtle.Turtle {
	return s.turtles
}

// Frame returns the number of ticks run so far.
func (s *Stage) Frame() int {
	return s.frame
}

// Idle reports whether every turtle has an empty queue.
func (s *Stage) Idle() bool {
	for _, t := range s.turtles {
		if !t.Idle() {
			return false
		}
	}
	return true
}

// Poses returns the pose of every turtle.
func (s *Stage) Poses() []turtle.Pose {
	poses := make([]turtle.Pose, len(s.turtles))
	for i, t := range s.turtles {
		poses[i] = t.Pose()
	}
	return poses
}

// Step advances every turtle by one frame without rendering and returns
// the total number of commands dequeued.
func (s *Stage) Step() int {
	s.frame++
	n := 0
	for _, t := range s.turtles {
		n += t.Step(s.surface)
	}
	return n
}

// Render draws the surface with the current poses.
func (s *Stage) Render() error {
	if err := s.surface.Render(s.Poses()...); err != nil {
		return fmt.Errorf("stage: render frame %d: %w", s.frame, err)
	}
	return nil
}

// Tick steps every turtle once and renders.
func (s *Stage) Tick() error {
	s.Step()
	return s.Render()
}

// Run ticks until every turtle is idle, the frame limit is reached or
// ctx is done. It returns the number of frames run. The final picture is
// always rendered before Run returns without a render error.
func (s *Stage) Run(ctx context.Context, opts RunOptions) (int, error) {
	log := turtle.Logger()
	log.Info("stage: run started",
		slog.Int("turtles", len(s.turtles)),
		slog.Duration("interval", opts.Interval),
		slog.Int("max_frames", opts.MaxFrames))

	var tick <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	every := opts.RenderEvery
	if every < 1 {
		every = 1
	}

	start := s.frame
	for !s.Idle() {
		if opts.MaxFrames > 0 && s.frame-start >= opts.MaxFrames {
			if err := s.Render(); err != nil {
				return s.frame - start, err
			}
			return s.frame - start, ErrFrameLimit
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return s.frame - start, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return s.frame - start, err
		}

		s.Step()
		if (s.frame-start)%every != 0 && !s.Idle() {
			continue
		}
		if err := s.Render(); err != nil {
			return s.frame - start, err
		}
		if opts.OnFrame != nil {
			if err := opts.OnFrame(s.frame); err != nil {
				log.Warn("stage: frame callback failed", slog.Int("frame", s.frame), slog.Any("err", err))
				return s.frame - start, fmt.Errorf("stage: frame %d: %w", s.frame, err)
			}
		}
	}

	frames := s.frame - start
	if frames == 0 {
		if err := s.Render(); err != nil {
			return 0, err
		}
	}
	log.Info("stage: run finished", slog.Int("frames", frames))
	return frames, nil
}
