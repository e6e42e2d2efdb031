// Package evaluator computes the value of an expression tree.
package evaluator

import (
	"fmt"
	"math"

	"go.creack.net/calc/ast"
)

// Evaluate walks the tree bottom-up and returns its value. Both children of a
// binary node are always evaluated, left first. The tree is not modified.
//
// Every value, literals included, must be finite: an infinity or NaN anywhere
// in the tree fails with ErrOverflow rather than being carried to the result.
func Evaluate(expr ast.Expr) (float64, error) {
	switch e := expr.(type) {
	case *ast.NumberExpr:
		return evaluateNumber(e)
	case *ast.BinaryExpr:
		return evaluateBinary(e)
	case nil:
		return 0, fmt.Errorf("nil expression: %w", ErrInvalidTree)
	default:
		return 0, fmt.Errorf("unsupported expression type %T: %w", e, ErrInvalidTree)
	}
}

func evaluateNumber(n *ast.NumberExpr) (float64, error) {
	if n == nil {
		return 0, fmt.Errorf("nil number: %w", ErrInvalidTree)
	}
	if !isFinite(n.Value) {
		return 0, &Error{Err: ErrOverflow, Left: n.Value}
	}
	return n.Value, nil
}

func evaluateBinary(b *ast.BinaryExpr) (float64, error) {
	if b == nil {
		return 0, fmt.Errorf("nil binary expression: %w", ErrInvalidTree)
	}
	left, err := Evaluate(b.Left)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(b.Right)
	if err != nil {
		return 0, err
	}
	return Apply(b.Op, left, right)
}

// Apply applies one operator to two operands.
//
// Add, Subtract and Multiply follow IEEE 754. Divide fails with
// ErrDivisionByZero when right is zero, of either sign. Non-finite operands or
// results fail with ErrOverflow.
func Apply(op ast.Operator, left, right float64) (float64, error) {
	if !op.Valid() {
		return 0, fmt.Errorf("%s: %w", op, ErrUnknownOperator)
	}
	if !isFinite(left) || !isFinite(right) {
		return 0, &Error{Err: ErrOverflow, Op: op, Left: left, Right: right}
	}

	var result float64
	switch op {
	case ast.OpAdd:
		result = left + right
	case ast.OpSubtract:
		result = left - right
	case ast.OpMultiply:
		result = left * right
	case ast.OpDivide:
		if right == 0 {
			return 0, &Error{Err: ErrDivisionByZero, Op: op, Left: left, Right: right}
		}
		result = left / right
	}

	if !isFinite(result) {
		return 0, &Error{Err: ErrOverflow, Op: op, Left: left, Right: right}
	}
	return result, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
