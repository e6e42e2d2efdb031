// Package calculator is the entry point of the expression pipeline: it runs
// text through the lexer, the parser and the evaluator and reports the first
// failure as a single tagged *Error.
//
// A Calculator holds only its configuration and is safe for concurrent use.
package calculator

import (
	"fmt"
	"unicode/utf8"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/evaluator"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
)

// Operation is an operator selected directly by a caller, e.g. a calculator
// button, rather than parsed from text.
type Operation = ast.Operator

const (
	Add      = ast.OpAdd
	Subtract = ast.OpSubtract
	Multiply = ast.OpMultiply
	Divide   = ast.OpDivide
)

type Calculator struct {
	cfg Config

	lexOpts   []lexer.Option
	parseOpts []parser.Option
}

// New creates a Calculator. Zero or negative limits fall back to the default.
func New(cfg Config) *Calculator {
	if cfg.MaxInputLength <= 0 {
		cfg.MaxInputLength = DefaultMaxInputLength
	}
	c := &Calculator{cfg: cfg}
	if cfg.OperatorAliases {
		c.lexOpts = append(c.lexOpts, lexer.WithOperatorAliases())
	}
	if cfg.Exponent {
		c.lexOpts = append(c.lexOpts, lexer.WithExponent())
	}
	if cfg.UnaryMinus {
		c.parseOpts = append(c.parseOpts, parser.WithUnaryMinus())
	}
	return c
}

var defaultCalculator = New(DefaultConfig())

// Default returns the Calculator used by the package-level functions.
func Default() *Calculator {
	return defaultCalculator
}

// Config returns a copy of the calculator configuration.
func (c *Calculator) Config() Config {
	return c.cfg
}

// Evaluate evaluates the expression with the default configuration.
func Evaluate(expression string) (float64, error) {
	return defaultCalculator.Evaluate(expression)
}

// Calculate applies op with the default configuration.
func Calculate(op Operation, left, right float64) (float64, error) {
	return defaultCalculator.Calculate(op, left, right)
}

// Evaluate runs the whole pipeline on one expression. Input longer than the
// configured limit is rejected before tokenizing.
func (c *Calculator) Evaluate(expression string) (float64, error) {
	if n := utf8.RuneCountInString(expression); n > c.cfg.MaxInputLength {
		return 0, &Error{
			Kind: KindLimit,
			Err:  fmt.Errorf("%d characters, limit is %d: %w", n, c.cfg.MaxInputLength, ErrInputTooLong),
		}
	}

	tree, err := c.Parse(expression)
	if err != nil {
		return 0, err
	}

	result, err := evaluator.Evaluate(tree)
	if err != nil {
		return 0, &Error{Kind: KindMath, Err: err}
	}
	return result, nil
}

// Parse tokenizes and parses the expression without evaluating it. It does
// not apply the input length limit.
func (c *Calculator) Parse(expression string) (ast.Expr, error) {
	tokens, err := c.Tokenize(expression)
	if err != nil {
		return nil, err
	}
	tree, err := parser.Parse(tokens, c.parseOpts...)
	if err != nil {
		return nil, &Error{Kind: KindParse, Err: err}
	}
	return tree, nil
}

// Tokenize runs the lexer alone with the calculator's syntax options.
func (c *Calculator) Tokenize(expression string) ([]lexer.Token, error) {
	tokens, err := lexer.Tokenize(expression, c.lexOpts...)
	if err != nil {
		return nil, &Error{Kind: KindLex, Err: err}
	}
	return tokens, nil
}

// Calculate applies op to two operands, with the same semantics as the
// evaluator: division by zero and non-finite values fail.
func (c *Calculator) Calculate(op Operation, left, right float64) (float64, error) {
	result, err := evaluator.Apply(op, left, right)
	if err != nil {
		return 0, &Error{Kind: KindMath, Err: err}
	}
	return result, nil
}
