package lexer

import (
	"testing"

	"github.com/gomixlang/gomix/token"
	"github.com/stretchr/testify/assert"
)

func TestNextToken_Operators(t *testing.T) {
	input := `=+(){},;!-*/<>:[]`

	expected := []token.Token{
		{Type: token.ASSIGN, Literal: "="},
		{Type: token.PLUS, Literal: "+"},
		{Type: token.LPAREN, Literal: "("},
		{Type: token.RPAREN, Literal: ")"},
		{Type: token.LBRACE, Literal: "{"},
		{Type: token.RBRACE, Literal: "}"},
		{Type: token.COMMA, Literal: ","},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.BANG, Literal: "!"},
		{Type: token.MINUS, Literal: "-"},
		{Type: token.ASTERISK, Literal: "*"},
		{Type: token.SLASH, Literal: "/"},
		{Type: token.LT, Literal: "<"},
		{Type: token.GT, Literal: ">"},
		{Type: token.COLON, Literal: ":"},
		{Type: token.LBRACKET, Literal: "["},
		{Type: token.RBRACKET, Literal: "]"},
		{Type: token.EOF, Literal: ""},
	}

	l := New(input)
	for i, tt := range expected {
		tok := l.NextToken()
		assert.Equalf(t, tt.Type, tok.Type, "token %d type", i)
		assert.Equalf(t, tt.Literal, tok.Literal, "token %d literal", i)
	}
}

func TestNextToken_Program(t *testing.T) {
	input := `
mut five = 5
mut add = fn(x, y) {
  x + y
}
mut result = add(five, 10)
!-/*5
5 < 10 > 5

if (5 < 10) {
	return true
} else {
	return false
}

10 == 10
10 != 9
"foobar"
"foo bar"
[1, 2]
{"foo": "bar"}
while (x) { x }
`

	expected := []token.Token{
		{token.MUT, "mut"}, {token.IDENT, "five"}, {token.ASSIGN, "="}, {token.INT, "5"},
		{token.MUT, "mut"}, {token.IDENT, "add"}, {token.ASSIGN, "="}, {token.FUNCTION, "fn"},
		{token.LPAREN, "("}, {token.IDENT, "x"}, {token.COMMA, ","}, {token.IDENT, "y"}, {token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"}, {token.PLUS, "+"}, {token.IDENT, "y"},
		{token.RBRACE, "}"},
		{token.MUT, "mut"}, {token.IDENT, "result"}, {token.ASSIGN, "="}, {token.IDENT, "add"},
		{token.LPAREN, "("}, {token.IDENT, "five"}, {token.COMMA, ","}, {token.INT, "10"}, {token.RPAREN, ")"},
		{token.BANG, "!"}, {token.MINUS, "-"}, {token.SLASH, "/"}, {token.ASTERISK, "*"}, {token.INT, "5"},
		{token.INT, "5"}, {token.LT, "<"}, {token.INT, "10"}, {token.GT, ">"}, {token.INT, "5"},
		{token.IF, "if"}, {token.LPAREN, "("}, {token.INT, "5"}, {token.LT, "<"}, {token.INT, "10"}, {token.RPAREN, ")"},
		{token.LBRACE, "{"}, {token.RETURN, "return"}, {token.TRUE, "true"}, {token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"}, {token.RETURN, "return"}, {token.FALSE, "false"}, {token.RBRACE, "}"},
		{token.INT, "10"}, {token.EQ, "=="}, {token.INT, "10"},
		{token.INT, "10"}, {token.NOT_EQ, "!="}, {token.INT, "9"},
		{token.STRING, "foobar"},
		{token.STRING, "foo bar"},
		{token.LBRACKET, "["}, {token.INT, "1"}, {token.COMMA, ","}, {token.INT, "2"}, {token.RBRACKET, "]"},
		{token.LBRACE, "{"}, {token.STRING, "foo"}, {token.COLON, ":"}, {token.STRING, "bar"}, {token.RBRACE, "}"},
		{token.WHILE, "while"}, {token.LPAREN, "("}, {token.IDENT, "x"}, {token.RPAREN, ")"},
		{token.LBRACE, "{"}, {token.IDENT, "x"}, {token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range expected {
		tok := l.NextToken()
		assert.Equalf(t, tt.Type, tok.Type, "token %d type, literal=%q", i, tok.Literal)
		assert.Equalf(t, tt.Literal, tok.Literal, "token %d literal", i)
	}
}

func TestNextToken_Comments(t *testing.T) {
	input := "1 // a comment\n+ 2 // trailing"
	l := New(input)

	expected := []token.Type{token.INT, token.PLUS, token.INT, token.EOF}
	for i, tt := range expected {
		tok := l.NextToken()
		assert.Equalf(t, tt, tok.Type, "token %d", i)
	}
}

func TestNextToken_Illegal(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)
	assert.Equal(t, "@", tok.Literal)
}

func TestNextToken_IdentifiersNoDigits(t *testing.T) {
	// digits do not extend identifiers: "a12" lexes as IDENT "a" then INT "12"
	l := New("a12")
	tok1 := l.NextToken()
	tok2 := l.NextToken()
	assert.Equal(t, token.Token{Type: token.IDENT, Literal: "a"}, tok1)
	assert.Equal(t, token.Token{Type: token.INT, Literal: "12"}, tok2)
}

func TestNextToken_EOFStable(t *testing.T) {
	l := New("")
	first := l.NextToken()
	second := l.NextToken()
	assert.Equal(t, token.EOF, first.Type)
	assert.Equal(t, token.EOF, second.Type)
}
