package lexer

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type Type int

const (
	EOF Type = iota
	Letter
	Value
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Letter:
		return "Letter"
	case Value:
		return "Value"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

type Token struct {
	Type    Type
	Literal string
	Offset  int
	Line    int
	Column  int
}

type Lexer struct {
	scanner *lexmachine.Scanner
	input   []byte
}

var (
	compileOnce sync.Once
	machine     *lexmachine.Lexer
	compileErr  error
)

// compiled returns the shared G-code DFA. Compiling is the expensive part,
// scanners are cheap.
func compiled() (*lexmachine.Lexer, error) {
	compileOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`[ \t\r\n]+`), skip)
		l.Add([]byte(`;[^\n]*`), skip)
		l.Add([]byte(`\([^)\n]*\)`), skip)
		l.Add([]byte(`%`), skip)
		l.Add([]byte(`\*[0-9]+`), skip)
		l.Add([]byte(`[A-Za-z]`), tokAction(Letter))
		l.Add([]byte(`(\+|-)?([0-9]|\.)+`), tokAction(Value))
		if err := l.Compile(); err != nil {
			compileErr = err
			return
		}
		machine = l
	})
	return machine, compileErr
}

func New(input []byte) (*Lexer, error) {
	m, err := compiled()
	if err != nil {
		return nil, err
	}
	scanner, err := m.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &Lexer{scanner: scanner, input: input}, nil
}

// Next returns the next token. Input that no rule matches is an error; the
// lexer must not be used after that.
func (l *Lexer) Next() (Token, error) {
	tok, err, eof := l.scanner.Next()
	if eof {
		return Token{Type: EOF, Offset: len(l.input)}, nil
	}
	if err != nil {
		return Token{}, err
	}
	return tok.(Token), nil
}

// All lexes input to completion, EOF excluded.
func All(input []byte) ([]Token, error) {
	l, err := New(input)
	if err != nil {
		return nil, err
	}
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(tokenType Type) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Type:    tokenType,
			Literal: string(m.Bytes),
			Offset:  m.TC,
			Line:    m.StartLine,
			Column:  m.StartColumn,
		}, nil
	}
}
