package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/plox/diag"
	"github.com/akashmaji946/plox/token"
)

func scan(src string) ([]token.Token, *diag.Diagnostics) {
	d := diag.New()
	toks := New(src, d).ScanTokens()
	return toks, d
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestScanTokens_SingleAndTwoCharOperators(t *testing.T) {
	toks, d := scan("(){},.-+;*!= = == < <= > >= !")
	require.False(t, d.HasErrors())
	assert.Equal(t, []token.Type{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.NotEqual, token.Equal, token.EqualEqual, token.Less, token.LessEqual,
		token.Greater, token.GreaterEq, token.Not, token.EOF,
	}, types(toks))
}

func TestScanTokens_CommentsAndSlash(t *testing.T) {
	toks, d := scan("1 / 2 // this is a comment\n3")
	require.False(t, d.HasErrors())
	assert.Equal(t, []token.Type{
		token.Number, token.Slash, token.Number, token.Number, token.EOF,
	}, types(toks))
}

func TestScanTokens_StringLiteral(t *testing.T) {
	toks, d := scan(`"hello world"`)
	require.False(t, d.HasErrors())
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, d := scan(`"oops`)
	require.True(t, d.HasErrors())
	assert.Contains(t, d.Messages()[0], "Unterminated string.")
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	toks, d := scan("123 45.67")
	require.False(t, d.HasErrors())
	require.Len(t, toks, 3)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.67, toks[1].Literal)
}

func TestScanTokens_IdentifiersAndKeywords(t *testing.T) {
	toks, d := scan("var x = foo and bar")
	require.False(t, d.HasErrors())
	assert.Equal(t, []token.Type{
		token.Var, token.Identifier, token.Equal, token.Identifier,
		token.And, token.Identifier, token.EOF,
	}, types(toks))
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	_, d := scan("@")
	require.True(t, d.HasErrors())
	assert.Contains(t, d.Messages()[0], "Unexpected character.")
}

func TestScanTokens_LineTracking(t *testing.T) {
	toks, _ := scan("var a = 1;\nvar b = 2;\n")
	last := toks[len(toks)-1]
	assert.Equal(t, token.EOF, last.Type)
	assert.Equal(t, 3, last.Line)
}

func TestScanTokens_EmptySourceYieldsOnlyEOF(t *testing.T) {
	toks, d := scan("")
	require.False(t, d.HasErrors())
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Type)
}
