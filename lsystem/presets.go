package lsystem

import (
	"maps"
	"slices"
)

var presets = map[string]System{
	"koch": {
		Axiom: "F",
		Rules: map[rune]string{'F': "F+F-F-F+F"},
		Angle: 90,
		Step:  4,
	},
	"dragon": {
		Axiom: "FX",
		Rules: map[rune]string{'X': "X+YF+", 'Y': "-FX-Y"},
		Angle: 90,
		Step:  6,
	},
	"sierpinski": {
		Axiom: "F-G-G",
		Rules: map[rune]string{'F': "F-G+F+G-F", 'G': "GG"},
		Angle: 120,
		Step:  8,
	},
	"plant": {
		Axiom: "X",
		Rules: map[rune]string{'X': "F+[[X]-X]-F[-FX]+X", 'F': "FF"},
		Angle: 25,
		Step:  3,
	},
}

// Preset returns a copy of a built-in system by name.
func Preset(name string) (System, bool) {
	s, ok := presets[name]
	if !ok {
		return System{}, false
	}
	s.Rules = maps.Clone(s.Rules)
	return s, true
}

// Presets returns the built-in system names in sorted order.
func Presets() []string {
	return slices.Sorted(maps.Keys(presets))
}
