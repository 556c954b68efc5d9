package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/lsystem"
	"github.com/gogpu/turtle/script"
	"github.com/gogpu/turtle/stage"
)

// BackgroundColor resolves the background color name.
func (s *Scene) BackgroundColor() (gg.RGBA, error) {
	return script.ParseColor(s.Background)
}

// RunOptions returns the stage options the scene asks for.
func (s *Scene) RunOptions() stage.RunOptions {
	return stage.RunOptions{
		MaxFrames:   s.MaxFrames,
		Interval:    s.Interval,
		RenderEvery: s.RenderEvery,
	}
}

// Build compiles every turtle of the scene in order.
func (s *Scene) Build() ([]*turtle.Turtle, error) {
	turtles := make([]*turtle.Turtle, 0, len(s.Turtles))
	for i, t := range s.Turtles {
		p, err := t.Program(s.Dir)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", t.label(i), err)
		}
		opts, err := t.Options(i)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", t.label(i), err)
		}
		turtles = append(turtles, turtle.New(p, opts...))
	}
	return turtles, nil
}

// Program compiles the turtle's commands. dir resolves a relative
// script_file.
func (t Turtle) Program(dir string) (*turtle.Program, error) {
	switch {
	case t.Script != "":
		return script.CompileNamed(t.Name, t.Script)
	case t.ScriptFile != "":
		path := t.ScriptFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		return script.CompileNamed(path, string(src))
	case t.LSystem != nil:
		sys, err := t.LSystem.System()
		if err != nil {
			return nil, err
		}
		return sys.Program(t.LSystem.Iterations)
	}
	return turtle.NewProgram(), nil
}

// Options converts the turtle's initial state to turtle options.
// i numbers unnamed turtles.
func (t Turtle) Options(i int) ([]turtle.Option, error) {
	name := t.Name
	if name == "" {
		name = fmt.Sprintf("turtle-%d", i)
	}
	opts := []turtle.Option{
		turtle.WithName(name),
		turtle.WithHeading(t.Heading),
	}
	if len(t.Origin) == 2 {
		opts = append(opts, turtle.WithOrigin(t.Origin[0], t.Origin[1]))
	}
	if t.PenColor != "" {
		c, err := script.ParseColor(t.PenColor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, turtle.WithPenColor(c))
	}
	if t.PenWidth != nil {
		opts = append(opts, turtle.WithPenWidth(*t.PenWidth))
	}
	if t.GlyphSize != nil {
		opts = append(opts, turtle.WithGlyphSize(*t.GlyphSize))
	}
	return opts, nil
}

// System resolves the preset and applies overrides.
func (l *LSystem) System() (lsystem.System, error) {
	var sys lsystem.System
	if l.Preset != "" {
		p, ok := lsystem.Preset(l.Preset)
		if !ok {
			return sys, fmt.Errorf("unknown lsystem preset %q", l.Preset)
		}
		sys = p
	}
	if sys.Rules == nil {
		sys.Rules = make(map[rune]string, len(l.Rules))
	}
	if l.Axiom != "" {
		sys.Axiom = l.Axiom
	}
	for k, v := range l.Rules {
		r, size := utf8.DecodeRuneInString(k)
		if k == "" || size != len(k) {
			return sys, fmt.Errorf("rule key %q is not a single symbol", k)
		}
		sys.Rules[r] = v
	}
	if l.Angle != nil {
		sys.Angle = *l.Angle
	}
	if l.Step != nil {
		sys.Step = *l.Step
	}
	return sys, nil
}
