package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

func parseExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		return nil, p.operandError()
	}
	left, err := nudFn(p)
	if err != nil {
		return nil, err
	}

	// While we have tokens with a higher binding power, parse them using led.
	// Equal binding power stops the loop, which makes operators left-associative.
	for p.bindingPowerLookupTable[p.curToken.Type] > bp {
		ledFn := p.ledLookupTable[p.curToken.Type]
		left, err = ledFn(p, left, p.bindingPowerLookupTable[p.curToken.Type])
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// operandError classifies a token found where an operand was expected.
func (p *parser) operandError() error {
	switch {
	case p.curToken.Type == lexer.TokEOF:
		return p.errorf(ErrUnexpectedEnd, p.curToken)
	case p.curToken.Type == lexer.TokParenRight && p.depth == 0:
		return p.errorf(ErrUnmatchedParen, p.curToken)
	default:
		return p.errorf(ErrUnexpectedToken, p.curToken)
	}
}

func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	number := p.curToken.Number
	p.nextToken()
	return ast.Number(number), nil
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	open := p.curToken
	p.depth++
	p.nextToken()

	inner, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}

	switch p.curToken.Type {
	case lexer.TokParenRight:
	case lexer.TokEOF:
		return nil, p.errorf(ErrUnmatchedParen, open)
	default:
		return nil, p.errorf(ErrUnexpectedToken, p.curToken)
	}
	p.depth--
	p.nextToken()
	return inner, nil
}

func parsePrefixExpr(p *parser) (ast.Expr, error) {
	p.nextToken()
	right, err := parseExpr(p, bpUnary)
	if err != nil {
		return nil, err
	}
	return ast.Binary(ast.OpSubtract, ast.Number(0), right), nil
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	operator := operators[p.curToken.Type]
	p.nextToken()
	right, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}

	return ast.Binary(operator, left, right), nil
}
