// Package ast defines the expression tree built by the parser.
//
// The tree is strict: every node exclusively owns its children, there is no
// sharing and no back reference. A NumberExpr is always a leaf and a
// BinaryExpr always has exactly two children.
package ast

import "fmt"

// Expr is an expression tree node. The set of implementations is closed to
// this package.
type Expr interface {
	Dump() string
	expr()
}

// Operator is a binary arithmetic operator.
type Operator int

const (
	OpAdd Operator = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

// Operators lists every operator, in declaration order.
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Precedence returns the binding level of the operator. Multiply and Divide
// bind tighter than Add and Subtract. All operators are left-associative.
func (op Operator) Precedence() int {
	switch op {
	case OpAdd, OpSubtract:
		return 1
	case OpMultiply, OpDivide:
		return 2
	}
	return 0
}

// Symbol returns the ASCII glyph of the operator.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return "?"
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpMultiply:
		return "Multiply"
	case OpDivide:
		return "Divide"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Valid reports whether op is one of the four declared operators.
func (op Operator) Valid() bool {
	return op >= OpAdd && op <= OpDivide
}
