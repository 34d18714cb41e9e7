/*
File    : vanction/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func lit(typ TokenType, lit string) Token {
	return Token{Type: typ, Literal: lit}
}

func stripPos(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = Token{Type: t.Type, Literal: t.Literal}
	}
	return out
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `123 + 2 - 12`,
			Expected: []Token{
				lit(INT, "123"), lit(PLUS, "+"), lit(INT, "2"), lit(MINUS, "-"), lit(INT, "12"),
			},
		},
		{
			Input: `{ } [ ] abc_1 + 3.5`,
			Expected: []Token{
				lit(LBRACE, "{"), lit(RBRACE, "}"), lit(LBRACKET, "["), lit(RBRACKET, "]"),
				lit(IDENT, "abc_1"), lit(PLUS, "+"), lit(FLOAT, "3.5"),
			},
		},
		{
			Input: `func main() { System.print("hi"); }`,
			Expected: []Token{
				lit(FUNC, "func"), lit(IDENT, "main"), lit(LPAREN, "("), lit(RPAREN, ")"),
				lit(LBRACE, "{"), lit(SYSTEM, "System"), lit(DOT, "."), lit(PRINT, "print"),
				lit(LPAREN, "("), lit(STRING, "hi"), lit(RPAREN, ")"), lit(SEMICOLON, ";"),
				lit(RBRACE, "}"),
			},
		},
		{
			Input: `else-if while for in`,
			Expected: []Token{
				lit(ELSE_IF, "else-if"), lit(WHILE, "while"), lit(FOR, "for"), lit(IN, "in"),
			},
		},
		{
			Input: `^ ^3 ^7 ^^`,
			Expected: []Token{
				lit(CARET, "^"), lit(POWER_N, "^3"), lit(POWER_N, "^7"), lit(CARET_CARET, "^^"),
			},
		},
		{
			Input: `== != <= >= << >> && ||`,
			Expected: []Token{
				lit(EQ, "=="), lit(NOT_EQ, "!="), lit(LTE, "<="), lit(GTE, ">="),
				lit(LSHIFT, "<<"), lit(RSHIFT, ">>"), lit(AND_AND, "&&"), lit(OR_OR, "||"),
			},
		},
	}

	for _, tc := range tests {
		lex := NewLexer(tc.Input)
		got := stripPos(lex.ConsumeTokens())
		assert.Equal(t, tc.Expected, got, "input: %q", tc.Input)
	}
}

func TestLexer_Comments(t *testing.T) {
	src := "1 | a line comment\n+ 2 |\\ a block\ncomment /| - 3 |* doc *| * 4"
	lex := NewLexer(src)
	got := stripPos(lex.ConsumeTokens())
	want := []Token{
		lit(INT, "1"), lit(NEWLINE, "\n"), lit(PLUS, "+"), lit(INT, "2"), lit(MINUS, "-"), lit(INT, "3"),
		lit(STAR, "*"), lit(INT, "4"),
	}
	assert.Equal(t, want, got)
}

func TestLexer_StringEscapes(t *testing.T) {
	lex := NewLexer(`"a\nb\tc\\d\"e"`)
	tok := lex.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, "a\nb\tc\\d\"e", tok.Literal)
}

func TestLexer_FStringPlaceholder(t *testing.T) {
	lex := NewLexer(`f"hello {name}!"`)
	tok := lex.NextToken()
	assert.Equal(t, FSTRING, tok.Type)
	assert.Equal(t, "hello {{name}}!", tok.Literal)
}

func TestLexer_RawStringNoEscapes(t *testing.T) {
	lex := NewLexer(`$"a\nb"`)
	tok := lex.NextToken()
	assert.Equal(t, RAWSTRING, tok.Type)
	assert.Equal(t, `a\nb`, tok.Literal)
}

func TestLexer_LineContinuation(t *testing.T) {
	lex := NewLexer("1 + \\\n2")
	got := stripPos(lex.ConsumeTokens())
	want := []Token{lit(INT, "1"), lit(PLUS, "+"), lit(INT, "2")}
	assert.Equal(t, want, got)
}

func TestLexer_PositionsStartAtOne(t *testing.T) {
	lex := NewLexer("abc")
	tok := lex.NextToken()
	assert.Equal(t, 1, tok.Line)
	assert.Equal(t, 1, tok.Column)
}

func TestLexer_EOFTerminates(t *testing.T) {
	lex := NewLexer("x")
	lex.NextToken()
	tok := lex.NextToken()
	assert.Equal(t, EOF, tok.Type)
}
