package lexer

import (
	"strings"
	"testing"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

func TestNextToken(t *testing.T) {
	input := `%
N10 G1 X10.5 Y-2 z+.25 ; move
G0X1Y2 (rapid) F1500*57
`
	tests := []struct {
		expectedType    Type
		expectedLiteral string
	}{
		{Letter, "N"},
		{Value, "10"},
		{Letter, "G"},
		{Value, "1"},
		{Letter, "X"},
		{Value, "10.5"},
		{Letter, "Y"},
		{Value, "-2"},
		{Letter, "z"},
		{Value, "+.25"},
		{Letter, "G"},
		{Value, "0"},
		{Letter, "X"},
		{Value, "1"},
		{Letter, "Y"},
		{Value, "2"},
		{Letter, "F"},
		{Value, "1500"},
		{EOF, ""},
	}

	l, err := New([]byte(input))
	if err != nil {
		t.Fatalf("Failed to create lexer: %v", err)
	}

	for i, tt := range tests {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_Position(t *testing.T) {
	toks, err := All([]byte("G1  X5"))
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(toks))
	}
	if toks[2].Offset != 4 || toks[2].Literal != "X" {
		t.Fatalf("X token at offset %d (%q), want 4", toks[2].Offset, toks[2].Literal)
	}
}

func TestNextToken_Illegal(t *testing.T) {
	for _, input := range []string{"@", "G1 X--5", "G1 (open comment", "G1 X5 #1"} {
		if _, err := All([]byte(input)); err == nil {
			t.Fatalf("expected lex error for %q", input)
		}
	}
}

func TestNextToken_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "; only a comment", "(header)", "%"} {
		toks, err := All([]byte(input))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", input, err)
		}
		if len(toks) != 0 {
			t.Fatalf("%q: expected no tokens, got %v", input, toks)
		}
	}
}

func TestDefinition(t *testing.T) {
	var def Definition
	syms := def.Symbols()
	if syms["EOF"] != plexer.EOF {
		t.Fatalf("EOF symbol must map to participle's EOF")
	}
	pl, err := def.Lex("line", strings.NewReader("G1 X2"))
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	want := []struct {
		typ plexer.TokenType
		val string
	}{
		{syms["Letter"], "G"},
		{syms["Value"], "1"},
		{syms["Letter"], "X"},
		{syms["Value"], "2"},
	}
	for i, w := range want {
		tok, err := pl.Next()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Type != w.typ || tok.Value != w.val {
			t.Fatalf("token %d: got %v %q want %v %q", i, tok.Type, tok.Value, w.typ, w.val)
		}
		if tok.Pos.Filename != "line" {
			t.Fatalf("token %d: filename %q", i, tok.Pos.Filename)
		}
	}
	tok, err := pl.Next()
	if err != nil || !tok.EOF() {
		t.Fatalf("expected EOF, got %v %v", tok, err)
	}
}
