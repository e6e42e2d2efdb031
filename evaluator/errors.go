package evaluator

import (
	"errors"
	"fmt"

	"go.creack.net/calc/ast"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("numeric overflow")

	// Misuse of the package, never caused by parsed input.
	ErrUnknownOperator = errors.New("unknown operator")
	ErrInvalidTree     = errors.New("invalid expression tree")
)

// Error is an arithmetic failure.
type Error struct {
	Err error
	// Op is zero when a literal itself is out of range; Left then holds it.
	Op          ast.Operator
	Left, Right float64
}

func (e *Error) Error() string {
	if !e.Op.Valid() {
		return fmt.Sprintf("literal %g: %s", e.Left, e.Err)
	}
	return fmt.Sprintf("%g %s %g: %s", e.Left, e.Op.Symbol(), e.Right, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
