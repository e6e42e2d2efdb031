// Package parser builds an expression tree from a token sequence.
package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type parser struct {
	tokens []lexer.Token
	idx    int
	end    int // Position reported for the implicit EOF token.

	curToken lexer.Token

	// Number of parentheses opened and not yet closed.
	depth int

	unaryMinus bool

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

// Option configures optional grammar.
type Option func(*parser)

// WithUnaryMinus enables a prefix minus, e.g. "-5" or "2*-3". It is parsed
// as a subtraction from zero, so the tree keeps its two node kinds.
func WithUnaryMinus() Option {
	return func(p *parser) { p.unaryMinus = true }
}

func newParser(tokens []lexer.Token, opts ...Option) *parser {
	p := &parser{
		tokens:                  tokens,
		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	if len(tokens) > 0 {
		p.end = tokens[len(tokens)-1].End()
	}
	for _, opt := range opts {
		opt(p)
	}
	p.createTokenLookups()
	return p
}

// Parse parses the whole token sequence as one expression. The sequence must
// not hold the lexer's EOF token; if it does, parsing stops there.
func Parse(tokens []lexer.Token, opts ...Option) (ast.Expr, error) {
	p := newParser(tokens, opts...)
	p.nextToken()

	expr, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}

	switch p.curToken.Type {
	case lexer.TokEOF:
		return expr, nil
	case lexer.TokParenRight:
		return nil, p.errorf(ErrUnmatchedParen, p.curToken)
	default:
		return nil, p.errorf(ErrTrailingInput, p.curToken)
	}
}

func (p *parser) nextToken() lexer.Token {
	if p.idx < len(p.tokens) && p.tokens[p.idx].Type != lexer.TokEOF {
		p.curToken = p.tokens[p.idx]
		p.idx++
		return p.curToken
	}
	p.curToken = lexer.Token{Type: lexer.TokEOF, Pos: p.end}
	return p.curToken
}

func (p *parser) errorf(err error, tok lexer.Token) error {
	return &Error{Err: err, Token: tok}
}
