package gcode

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"

	"toolpath/internal/lexer"
)

type Line struct {
	Words []*Word `parser:"@@*"`
}

type Word struct {
	Pos    plexer.Position
	Letter string `parser:"@Letter"`
	Value  string `parser:"@Value"`
}

var parser = participle.MustBuild[Line](participle.Lexer(lexer.Definition{}))

// Parse runs the word grammar over one line of G-code.
func Parse(data string) (*Line, error) {
	return parser.ParseString("line", data)
}

// Fields maps an upper-case field letter to its raw value text.
type Fields map[byte]string

// Tokenize splits a line into its fields. Blank and comment-only lines give
// empty Fields. A letter may appear only once per line.
func Tokenize(line string) (Fields, error) {
	ast, err := Parse(line)
	if err != nil {
		return nil, syntaxf("%v", err)
	}
	fields := make(Fields, len(ast.Words))
	for _, w := range ast.Words {
		letter := strings.ToUpper(w.Letter)[0]
		if _, dup := fields[letter]; dup {
			return nil, syntaxf("column %d: repeated field %c", w.Pos.Column, letter)
		}
		fields[letter] = w.Value
	}
	return fields, nil
}
