package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gogpu/turtle/lsystem"
	"github.com/gogpu/turtle/script"
)

// Validate reports every problem in the scene at once.
func (s *Scene) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	if s.Width <= 0 || s.Height <= 0 {
		add("canvas size %dx%d", s.Width, s.Height)
	}
	if s.MaxFrames < 0 {
		add("negative max_frames %d", s.MaxFrames)
	}
	if s.RenderEvery < 0 {
		add("negative render_every %d", s.RenderEvery)
	}
	if s.Interval < 0 {
		add("negative interval %s", s.Interval)
	}
	if _, err := script.ParseColor(s.Background); err != nil {
		add("background: %v", err)
	}

	for i, t := range s.Turtles {
		label := t.label(i)
		if n := t.sources(); n != 1 {
			add("%s: want exactly one of script, script_file or lsystem, got %d", label, n)
		}
		if len(t.Origin) != 0 && len(t.Origin) != 2 {
			add("%s: origin needs two values, got %d", label, len(t.Origin))
		}
		if t.PenColor != "" {
			if _, err := script.ParseColor(t.PenColor); err != nil {
				add("%s: pen_color: %v", label, err)
			}
		}
		if t.PenWidth != nil && *t.PenWidth < 0 {
			add("%s: negative pen_width", label)
		}
		if t.GlyphSize != nil && *t.GlyphSize < 0 {
			add("%s: negative glyph_size", label)
		}
		if l := t.LSystem; l != nil {
			if err := l.validate(); err != nil {
				add("%s: lsystem: %v", label, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (t Turtle) label(i int) string {
	if t.Name != "" {
		return fmt.Sprintf("turtle %q", t.Name)
	}
	return fmt.Sprintf("turtle #%d", i)
}

func (t Turtle) sources() int {
	n := 0
	if t.Script != "" {
		n++
	}
	if t.ScriptFile != "" {
		n++
	}
	if t.LSystem != nil {
		n++
	}
	return n
}

func (l *LSystem) validate() error {
	if l.Preset != "" {
		if _, ok := lsystem.Preset(l.Preset); !ok {
			return fmt.Errorf("unknown preset %q", l.Preset)
		}
	} else if l.Axiom == "" {
		return errors.New("needs a preset or an axiom")
	}
	for k := range l.Rules {
		if utf8.RuneCountInString(k) != 1 {
			return fmt.Errorf("rule key %q is not a single symbol", k)
		}
	}
	if l.Iterations < 0 {
		return fmt.Errorf("negative iterations %d", l.Iterations)
	}
	if l.Iterations > lsystem.MaxIterations {
		return fmt.Errorf("iterations %d above %d", l.Iterations, lsystem.MaxIterations)
	}
	return nil
}
