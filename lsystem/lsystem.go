// Package lsystem expands Lindenmayer systems and compiles the result
// into turtle programs.
//
// Symbols understood by Program:
//
//	F, G  move forward drawing
//	f     move forward without drawing
//	+     turn left by Angle
//	-     turn right by Angle
//	|     turn around
//	[     save position and heading
//	]     return to the last saved position without drawing
//
// Any other symbol only takes part in rewriting.
package lsystem

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/turtle"
)

// Expansion limits.
const (
	// MaxLength caps the number of symbols an expansion may produce.
	MaxLength = 1 << 20

	// MaxIterations caps the number of generations Expand will run.
	MaxIterations = 64
)

var (
	// ErrTooLarge is returned when an expansion grows past MaxLength.
	ErrTooLarge = errors.New("lsystem: expansion too large")

	// ErrTooManyIterations is returned for more than MaxIterations generations.
	ErrTooManyIterations = errors.New("lsystem: too many iterations")
)

// System is a deterministic context-free L-system.
type System struct {
	// Axiom is the generation 0 string.
	Axiom string

	// Rules rewrite one symbol into a string. Symbols without a rule
	// are copied unchanged.
	Rules map[rune]string

	// Angle is the turn for '+' and '-' in degrees.
	Angle float64

	// Step is the distance for 'F', 'G' and 'f'.
	Step float64
}

// Expand rewrites the axiom n times. A negative n is treated as 0.
// Expansion ends early once a generation rewrites nothing, since every
// later generation would be identical.
func (s System) Expand(n int) (string, error) {
	if n > MaxIterations {
		return "", fmt.Errorf("%w: %d > %d", ErrTooManyIterations, n, MaxIterations)
	}
	cur := s.Axiom
	if len(cur) > MaxLength {
		return "", fmt.Errorf("%w: axiom has %d symbols", ErrTooLarge, len(cur))
	}
	for gen := 1; gen <= n; gen++ {
		var b strings.Builder
		rewrote := false
		for _, r := range cur {
			if rep, ok := s.Rules[r]; ok {
				b.WriteString(rep)
				rewrote = true
			} else {
				b.WriteRune(r)
			}
			if b.Len() > MaxLength {
				return "", fmt.Errorf("%w: generation %d exceeds %d symbols", ErrTooLarge, gen, MaxLength)
			}
		}
		if !rewrote {
			break
		}
		cur = b.String()
	}
	return cur, nil
}

// Program expands n generations and compiles the result.
// The program lowers the pen before the first symbol.
func (s System) Program(n int) (*turtle.Program, error) {
	str, err := s.Expand(n)
	if err != nil {
		return nil, err
	}
	p := Compile(str, s.Angle, s.Step)
	turtle.Logger().Debug("lsystem: compiled",
		slog.Int("generations", n),
		slog.Int("symbols", len(str)),
		slog.Int("commands", p.Len()))
	return p, nil
}

// Compile turns an already expanded string into a program.
func Compile(symbols string, angle, step float64) *turtle.Program {
	p := turtle.NewProgram()
	p.PenDown()
	for _, r := range symbols {
		switch r {
		case 'F', 'G':
			p.Forward(step)
		case 'f':
			p.PenUp()
			p.Forward(step)
			p.PenDown()
		case '+':
			p.Left(angle)
		case '-':
			p.Right(angle)
		case '|':
			p.Left(180)
		case '[':
			p.SetWaypoint()
		case ']':
			// The restore runs as SetHeading and GoTo ahead of PenDown.
			p.PenUp()
			p.GotoWaypoint()
			p.PenDown()
		}
	}
	return p
}
