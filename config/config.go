// Package config loads turtle scenes from YAML.
//
// A scene names the canvas and the turtles that draw on it:
//
//	width: 400
//	height: 400
//	background: white
//	interval: 16ms
//	turtles:
//	  - name: square
//	    pen_color: red
//	    script: |
//	      pendown
//	      repeat 4 [ forward 100 right 90 ]
//	  - name: fern
//	    origin: [0, -150]
//	    heading: -90
//	    lsystem:
//	      preset: plant
//	      iterations: 4
//
// Each turtle takes its commands from exactly one of script,
// script_file or lsystem. Relative script files resolve against the
// directory of the scene file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Scene defaults.
const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultBackground = "white"
	DefaultMaxFrames  = 100000
)

// ErrInvalid is wrapped by every error returned from Scene.Validate.
var ErrInvalid = errors.New("config: invalid scene")

// Scene is a decoded scene file.
type Scene struct {
	// Dir is the directory relative script files resolve against.
	// Load sets it to the directory of the scene file.
	Dir string `yaml:"-"`

	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Background  string        `yaml:"background"`
	MaxFrames   int           `yaml:"max_frames"`
	Interval    time.Duration `yaml:"interval"`
	RenderEvery int           `yaml:"render_every"`
	Output      string        `yaml:"output"`
	Vector      bool          `yaml:"vector"`
	Glyph       *bool         `yaml:"glyph"`
	Turtles     []Turtle      `yaml:"turtles"`
}

// Turtle describes one turtle of a scene.
type Turtle struct {
	Name       string    `yaml:"name"`
	Script     string    `yaml:"script"`
	ScriptFile string    `yaml:"script_file"`
	LSystem    *LSystem  `yaml:"lsystem"`
	Origin     []float64 `yaml:"origin"`
	Heading    float64   `yaml:"heading"`
	PenColor   string    `yaml:"pen_color"`
	PenWidth   *float64  `yaml:"pen_width"`
	GlyphSize  *float64  `yaml:"glyph_size"`
}

// LSystem selects a preset or spells out a system. Fields set next to
// a preset override it.
type LSystem struct {
	Preset     string            `yaml:"preset"`
	Axiom      string            `yaml:"axiom"`
	Rules      map[string]string `yaml:"rules"`
	Angle      *float64          `yaml:"angle"`
	Step       *float64          `yaml:"step"`
	Iterations int               `yaml:"iterations"`
}

// Default returns a scene with every default applied and no turtles.
func Default() *Scene {
	return &Scene{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: DefaultBackground,
		MaxFrames:  DefaultMaxFrames,
	}
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	s.Dir = filepath.Dir(abs)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Parse decodes a scene from memory. See Decode.
func Parse(data []byte) (*Scene, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML document over the defaults. Unknown keys are
// errors. An empty document yields the defaults. Decode does not
// validate; call Validate before use.
func Decode(r io.Reader) (*Scene, error) {
	s := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return s, nil
}

// GlyphEnabled reports whether turtle glyphs are drawn. It defaults to true.
func (s *Scene) GlyphEnabled() bool {
	return s.Glyph == nil || *s.Glyph
}
