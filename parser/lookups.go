package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpAdditive
	bpMultiplicative
	bpUnary
)

type nudHandler func(*parser) (ast.Expr, error)
type ledHandler func(*parser, ast.Expr, bindingPower) (ast.Expr, error)

type lookupTable[T any] map[lexer.TokenType]T

// operators maps operator tokens to the tree operator they build.
var operators = map[lexer.TokenType]ast.Operator{
	lexer.TokPlus:  ast.OpAdd,
	lexer.TokMinus: ast.OpSubtract,
	lexer.TokStar:  ast.OpMultiply,
	lexer.TokSlash: ast.OpDivide,
}

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) createTokenLookups() {
	// Additive & multiplicative.
	p.led(lexer.TokPlus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokMinus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokStar, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokSlash, bpMultiplicative, parseBinaryExpr)

	// Literals & grouping.
	p.nud(lexer.TokNumber, parsePrimaryExpr)
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	if p.unaryMinus {
		p.nud(lexer.TokMinus, parsePrefixExpr)
	}
}
