// Package script compiles a small LOGO-like language into turtle programs.
//
// A script is a sequence of commands separated by whitespace, with
// comments starting at ';' and case-insensitive keywords:
//
//	; a red square
//	color red
//	pendown
//	repeat 4 [ forward 100 right 90 ]
//
// Commands: forward|fd N, backward|back|bk N, left|lt N, right|rt N,
// penup|pu, pendown|pd, pencolor|color NAME|"#RRGGBB", pensize|width N,
// size N, goto|setxy X Y, setheading|seth N, wait N, clear, reset,
// push|waypoint, pop|return, repeat N [ ... ].
package script

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/gogpu/gg"
	"github.com/gogpu/turtle"
	"golang.org/x/image/colornames"
)

// MaxCommands caps the size of a compiled program.
const MaxCommands = 1 << 20

var (
	// ErrTooLarge is returned when repeats expand past MaxCommands.
	ErrTooLarge = errors.New("script: program too large")

	// ErrUnknownColor is returned for colors that are neither a known
	// name nor a hex string.
	ErrUnknownColor = errors.New("script: unknown color")
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ParseColor resolves an SVG color name ("red", "cornflowerblue") or a
// hex string ("#f00", "#ff000080").
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if !hexColor.MatchString(s) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		return gg.Hex(s), nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return gg.FromColor(c), nil
}

// Compile parses src and returns the program it describes.
func Compile(src string) (*turtle.Program, error) {
	return CompileNamed("script", src)
}

// CompileNamed is Compile with a file name for error positions.
func CompileNamed(name, src string) (*turtle.Program, error) {
	f, err := Parse(name, src)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	p := turtle.NewProgram()
	if err := emit(p, f.Statements); err != nil {
		return nil, err
	}
	return p, nil
}

func emit(p *turtle.Program, stmts []*Statement) error {
	for _, s := range stmts {
		if err := emitOne(p, s); err != nil {
			return err
		}
		if p.Len() > MaxCommands {
			return fmt.Errorf("%w: more than %d commands", ErrTooLarge, MaxCommands)
		}
	}
	return nil
}

func emitOne(p *turtle.Program, s *Statement) error {
	switch {
	case s.Repeat != nil:
		if s.Repeat.Count < 0 {
			return posError(s.Repeat.Pos, "negative repeat count %d", s.Repeat.Count)
		}
		if s.Repeat.Count > MaxCommands {
			return fmt.Errorf("%w: repeat %d", ErrTooLarge, s.Repeat.Count)
		}
		for i := 0; i < s.Repeat.Count; i++ {
			before := p.Len()
			if err := emit(p, s.Repeat.Body); err != nil {
				return err
			}
			if p.Len() == before {
				break
			}
		}
	case s.Forward != nil:
		p.Forward(*s.Forward)
	case s.Backward != nil:
		p.Backward(*s.Backward)
	case s.Left != nil:
		p.Left(*s.Left)
	case s.Right != nil:
		p.Right(*s.Right)
	case s.PenUp:
		p.PenUp()
	case s.PenDown:
		p.PenDown()
	case s.Color != nil:
		c, err := ParseColor(*s.Color)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Pos, err)
		}
		p.SetPenColor(c)
	case s.Width != nil:
		p.SetPenSize(*s.Width)
	case s.Size != nil:
		p.SetSize(*s.Size)
	case s.GoTo != nil:
		p.GoTo(s.GoTo.X, s.GoTo.Y)
	case s.Heading != nil:
		p.SetHeading(*s.Heading)
	case s.Wait != nil:
		if *s.Wait < 0 {
			return posError(s.Pos, "negative wait %d", *s.Wait)
		}
		p.Wait(*s.Wait)
	case s.Clear:
		p.Clear()
	case s.Reset:
		p.Reset()
	case s.Push:
		p.SetWaypoint()
	case s.Pop:
		p.GotoWaypoint()
	}
	return nil
}

func posError(pos lexer.Position, format string, args ...any) error {
	return fmt.Errorf("script: %s: %s", pos, fmt.Sprintf(format, args...))
}
