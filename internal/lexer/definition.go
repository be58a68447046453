package lexer

import (
	"io"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

// Definition plugs the lexmachine scanner into participle.
type Definition struct{}

var symbols = map[string]plexer.TokenType{
	"EOF":    plexer.EOF,
	"Letter": plexer.TokenType(Letter),
	"Value":  plexer.TokenType(Value),
}

func (Definition) Symbols() map[string]plexer.TokenType {
	return symbols
}

func (d Definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexBytes(filename, data)
}

func (d Definition) LexString(filename string, input string) (plexer.Lexer, error) {
	return d.LexBytes(filename, []byte(input))
}

func (Definition) LexBytes(filename string, input []byte) (plexer.Lexer, error) {
	l, err := New(input)
	if err != nil {
		return nil, err
	}
	return &participleLexer{filename: filename, l: l}, nil
}

type participleLexer struct {
	filename string
	l        *Lexer
}

func (p *participleLexer) Next() (plexer.Token, error) {
	tok, err := p.l.Next()
	if err != nil {
		return plexer.Token{}, err
	}
	pos := plexer.Position{
		Filename: p.filename,
		Offset:   tok.Offset,
		Line:     tok.Line,
		Column:   tok.Column,
	}
	if tok.Type == EOF {
		return plexer.EOFToken(pos), nil
	}
	return plexer.Token{Type: plexer.TokenType(tok.Type), Value: tok.Literal, Pos: pos}, nil
}
