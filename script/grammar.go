package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed turtle script.
type File struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is one command or a repeat block.
type Statement struct {
	Pos lexer.Position

	Repeat   *Repeat  `parser:"  @@"`
	Forward  *float64 `parser:"| ('forward' | 'fd') @Number"`
	Backward *float64 `parser:"| ('backward' | 'back' | 'bk') @Number"`
	Left     *float64 `parser:"| ('left' | 'lt') @Number"`
	Right    *float64 `parser:"| ('right' | 'rt') @Number"`
	PenUp    bool     `parser:"| @('penup' | 'pu')"`
	PenDown  bool     `parser:"| @('pendown' | 'pd')"`
	Color    *string  `parser:"| ('pencolor' | 'color') @(String | Ident)"`
	Width    *float64 `parser:"| ('pensize' | 'width') @Number"`
	Size     *float64 `parser:"| 'size' @Number"`
	GoTo     *Point   `parser:"| ('goto' | 'setxy') @@"`
	Heading  *float64 `parser:"| ('setheading' | 'seth') @Number"`
	Wait     *int     `parser:"| 'wait' @Number"`
	Clear    bool     `parser:"| @'clear'"`
	Reset    bool     `parser:"| @'reset'"`
	Push     bool     `parser:"| @('push' | 'waypoint')"`
	Pop      bool     `parser:"| @('pop' | 'return')"`
}

// Point is an x y pair.
type Point struct {
	X float64 `parser:"@Number"`
	Y float64 `parser:"@Number"`
}

// Repeat runs its body Count times.
type Repeat struct {
	Pos lexer.Position

	Count int          `parser:"'repeat' @Number"`
	Body  []*Statement `parser:"'[' @@* ']'"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(scriptLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.CaseInsensitive("Ident"),
)

// Parse parses a script without compiling it. name is used in error
// positions.
func Parse(name, src string) (*File, error) {
	return parser.ParseString(name, src)
}
