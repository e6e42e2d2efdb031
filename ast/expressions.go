package ast

import (
	"fmt"
	"strconv"
)

type NumberExpr struct {
	Value float64
}

func (*NumberExpr) expr() {}

func (n *NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

type BinaryExpr struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (*BinaryExpr) expr() {}

// Dump renders the expression fully parenthesized, e.g. "(7 + (8 * 3))".
func (b *BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Op.Symbol(), b.Right.Dump())
}

// Number is a shorthand for building a leaf.
func Number(v float64) *NumberExpr {
	return &NumberExpr{Value: v}
}

// Binary is a shorthand for building an operator node.
func Binary(op Operator, left, right Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right}
}
