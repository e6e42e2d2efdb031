package parser

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

func parseString(t *testing.T, input string, opts ...Option) (ast.Expr, error) {
	t.Helper()

	tokens, err := lexer.Tokenize(input)
	require.NoError(t, err, "tokenize %q", input)
	return Parse(tokens, opts...)
}

func TestParser(t *testing.T) {
	expr, err := parseString(t, "7 + 8 * 3")
	require.NoError(t, err)

	expected := ast.Binary(ast.OpAdd,
		ast.Number(7),
		ast.Binary(ast.OpMultiply, ast.Number(8), ast.Number(3)),
	)
	if !assert.Equal(t, expected, expr) {
		t.Logf("diff: %s", pretty.Diff(expected, expr))
	}
}

func TestParserStructure(t *testing.T) {
	tests := []struct {
		input string
		dump  string
	}{
		{input: "42", dump: "42"},
		{input: "(42)", dump: "42"},
		{input: "7+8*3", dump: "(7 + (8 * 3))"},
		{input: "2+3*4-5", dump: "((2 + (3 * 4)) - 5)"},
		{input: "10-2-3", dump: "((10 - 2) - 3)"},
		{input: "8-3-2", dump: "((8 - 3) - 2)"},
		{input: "1-2+3", dump: "((1 - 2) + 3)"},
		{input: "24/3/2", dump: "((24 / 3) / 2)"},
		{input: "4/2*3", dump: "((4 / 2) * 3)"},
		{input: "2+3*4-6/2+1", dump: "(((2 + (3 * 4)) - (6 / 2)) + 1)"},
		{input: "2*(3+4)", dump: "(2 * (3 + 4))"},
		{input: "((2+3)*2)", dump: "((2 + 3) * 2)"},
		{input: "(2+(3*4))", dump: "(2 + (3 * 4))"},
		{input: "0.5 / .25", dump: "(0.5 / 0.25)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := parseString(t, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.dump, expr.Dump(), "%# v", pretty.Formatter(expr))
		})
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
		value string
		pos   int
	}{
		{name: "empty", input: "", err: ErrUnexpectedEnd, pos: 0},
		{name: "whitespace only", input: "   ", err: ErrUnexpectedEnd, pos: 0},
		{name: "trailing operator", input: "7+", err: ErrUnexpectedEnd, pos: 2},
		{name: "two operators", input: "7+*3", err: ErrUnexpectedToken, value: "*", pos: 2},
		{name: "leading minus", input: "-5", err: ErrUnexpectedToken, value: "-", pos: 0},
		{name: "minus after operator", input: "7*-3", err: ErrUnexpectedToken, value: "-", pos: 2},
		{name: "leading operator", input: "*3", err: ErrUnexpectedToken, value: "*", pos: 0},
		{name: "two numbers", input: "7 8", err: ErrTrailingInput, value: "8", pos: 2},
		{name: "number after group", input: "(7)8", err: ErrTrailingInput, value: "8", pos: 3},
		{name: "unclosed paren", input: "(7+8", err: ErrUnmatchedParen, value: "(", pos: 0},
		{name: "nested unclosed paren", input: "2*((7+8)", err: ErrUnmatchedParen, value: "(", pos: 2},
		{name: "extra close paren", input: "7+8)", err: ErrUnmatchedParen, value: ")", pos: 3},
		{name: "lone close paren", input: ")", err: ErrUnmatchedParen, value: ")", pos: 0},
		{name: "close paren as operand", input: "7+)", err: ErrUnmatchedParen, value: ")", pos: 2},
		{name: "empty parens", input: "()", err: ErrUnexpectedToken, value: ")", pos: 1},
		{name: "two numbers in parens", input: "(1 2)", err: ErrUnexpectedToken, value: "2", pos: 3},
		{name: "unclosed trailing operator", input: "(7+", err: ErrUnexpectedEnd, pos: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parseString(t, tt.input)
			require.Error(t, err)
			assert.Nil(t, expr)
			assert.ErrorIs(t, err, tt.err)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.value, perr.Token.Value)
			assert.Equal(t, tt.pos, perr.Token.Pos)
		})
	}
}

func TestParserUnaryMinus(t *testing.T) {
	tests := []struct {
		input string
		dump  string
	}{
		{input: "-5", dump: "(0 - 5)"},
		{input: "-5+3", dump: "((0 - 5) + 3)"},
		{input: "2*-3", dump: "(2 * (0 - 3))"},
		{input: "-2*3", dump: "((0 - 2) * 3)"},
		{input: "--5", dump: "(0 - (0 - 5))"},
		{input: "-(2+3)", dump: "(0 - (2 + 3))"},
		{input: "4/(-2)", dump: "(4 / (0 - 2))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := parseString(t, tt.input, WithUnaryMinus())
			require.NoError(t, err)
			assert.Equal(t, tt.dump, expr.Dump())
		})
	}

	_, err := parseString(t, "5-", WithUnaryMinus())
	assert.ErrorIs(t, err, ErrUnexpectedEnd)
	_, err = parseString(t, "5*+2", WithUnaryMinus())
	assert.ErrorIs(t, err, ErrUnexpectedToken)
}

func TestParseStopsAtEOFToken(t *testing.T) {
	l := lexer.New("1 + 2")
	var tokens []lexer.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == lexer.TokEOF {
			break
		}
	}

	expr, err := Parse(tokens)
	require.NoError(t, err)
	assert.Equal(t, "(1 + 2)", expr.Dump())
}

func TestErrorString(t *testing.T) {
	_, err := parseString(t, "7+")
	assert.EqualError(t, err, "unexpected end of expression at position 2")

	_, err = parseString(t, "7+*3")
	assert.EqualError(t, err, `unexpected token "*" at position 2`)
}
