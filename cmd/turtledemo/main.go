// Command turtledemo runs a turtle scene headless and saves the picture.
//
// Usage:
//
//	turtledemo -config scene.yaml
//	turtledemo -script square.logo -output square.png
//	turtledemo -lsystem plant -iterations 5 -vector
//
// Without a scene, script or L-system it draws a colored spiral.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/canvas"
	"github.com/gogpu/turtle/config"
	"github.com/gogpu/turtle/lsystem"
	"github.com/gogpu/turtle/stage"
)

// settings holds the parsed command line.
type settings struct {
	configPath string
	scriptPath string
	preset     string
	iterations int
	width      int
	height     int
	output     string
	vector     bool
	backend    string
	interval   time.Duration
	set        map[string]bool
}

func main() {
	var s settings
	flag.StringVar(&s.configPath, "config", "", "scene file (YAML)")
	flag.StringVar(&s.scriptPath, "script", "", "turtle script file")
	flag.StringVar(&s.preset, "lsystem", "", "L-system preset: "+strings.Join(lsystem.Presets(), ", "))
	flag.IntVar(&s.iterations, "iterations", 4, "L-system generations")
	flag.IntVar(&s.width, "width", config.DefaultWidth, "image width")
	flag.IntVar(&s.height, "height", config.DefaultHeight, "image height")
	flag.StringVar(&s.output, "output", "turtle.png", "output file")
	flag.BoolVar(&s.vector, "vector", false, "record commands and export through a recording backend")
	flag.StringVar(&s.backend, "backend", "raster", "recording backend used with -vector")
	flag.DurationVar(&s.interval, "interval", 0, "delay between frames")
	verbose := flag.Bool("v", false, "log every frame")
	flag.Parse()

	s.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { s.set[f.Name] = true })

	if *verbose {
		turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := demo(s); err != nil {
		log.Fatalf("Failed: %v", err)
	}
}

// demo runs the scene and saves the picture. Deferred cleanup runs
// before main reports an error.
func demo(s settings) error {
	scene, err := loadScene(s)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return err
	}

	turtles, err := scene.Build()
	if err != nil {
		return fmt.Errorf("build turtles: %w", err)
	}
	if len(turtles) == 0 {
		turtles = []*turtle.Turtle{spiral()}
	}

	bg, err := scene.BackgroundColor()
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	opts := []canvas.Option{
		canvas.WithBackground(bg),
		canvas.WithGlyph(scene.GlyphEnabled()),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	var frames int
	if scene.Vector {
		v := canvas.NewVector(scene.Width, scene.Height, opts...)
		if frames, err = run(ctx, v, turtles, scene.RunOptions()); err != nil {
			return err
		}
		if err := v.Export(s.backend, scene.Output); err != nil {
			return err
		}
	} else {
		r := canvas.NewRaster(scene.Width, scene.Height, opts...)
		defer r.Close()
		if frames, err = run(ctx, r, turtles, scene.RunOptions()); err != nil {
			return err
		}
		if err := r.SavePNG(scene.Output); err != nil {
			return err
		}
	}

	log.Printf("Saved %s (%dx%d, %d turtles, %d frames in %s)\n",
		scene.Output, scene.Width, scene.Height, len(turtles), frames, time.Since(start).Round(time.Millisecond))
	return nil
}

// loadScene reads the scene file or builds one from -script or -lsystem.
// Flags given explicitly win over the scene file.
func loadScene(s settings) (*config.Scene, error) {
	var scene *config.Scene
	if s.configPath != "" {
		var err error
		if scene, err = config.Load(s.configPath); err != nil {
			return nil, err
		}
	} else {
		scene = config.Default()
	}

	if s.set["width"] {
		scene.Width = s.width
	}
	if s.set["height"] {
		scene.Height = s.height
	}
	if s.set["output"] || scene.Output == "" {
		scene.Output = s.output
	}
	if s.set["vector"] {
		scene.Vector = s.vector
	}
	if s.set["interval"] {
		scene.Interval = s.interval
	}
	if s.configPath != "" {
		return scene, nil
	}

	switch {
	case s.scriptPath != "":
		scene.Turtles = append(scene.Turtles, config.Turtle{Name: "script", ScriptFile: s.scriptPath})
	case s.preset != "":
		if _, ok := lsystem.Preset(s.preset); !ok {
			return nil, fmt.Errorf("unknown L-system preset %q", s.preset)
		}
		// Start a third of the way up from the bottom edge, facing up.
		scene.Turtles = append(scene.Turtles, config.Turtle{
			Name:    s.preset,
			Heading: -90,
			Origin:  []float64{0, -float64(scene.Height) / 3},
			LSystem: &config.LSystem{Preset: s.preset, Iterations: s.iterations},
		})
	}
	return scene, nil
}

// run drives the stage to completion. Hitting the frame limit still
// leaves a rendered picture, so it is reported but not fatal.
func run(ctx context.Context, s stage.Surface, turtles []*turtle.Turtle, opts stage.RunOptions) (int, error) {
	st := stage.New(s, turtles...)
	frames, err := st.Run(ctx, opts)
	if errors.Is(err, stage.ErrFrameLimit) {
		log.Printf("Stopped after %d frames with commands left", frames)
		return frames, nil
	}
	return frames, err
}

// spiral draws a square spiral that shifts hue as it grows.
func spiral() *turtle.Turtle {
	p := turtle.NewProgram()
	p.SetPenSize(2)
	p.PenDown()
	for i := 0; i < 120; i++ {
		p.SetPenColor(gg.HSL(float64(i*3), 0.8, 0.5))
		p.Forward(float64(i * 2))
		p.Right(89)
		if i%10 == 9 {
			p.Wait(1)
		}
	}
	return turtle.New(p, turtle.WithName("spiral"))
}
