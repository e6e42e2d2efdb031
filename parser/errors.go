package parser

import (
	"errors"
	"fmt"

	"go.creack.net/calc/lexer"
)

// Parse errors. Every *Error wraps exactly one of them.
var (
	ErrUnexpectedEnd   = errors.New("unexpected end of expression")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingInput   = errors.New("trailing input")
	ErrUnmatchedParen  = errors.New("unmatched parenthesis")
)

// Error is a structural error in the token sequence.
type Error struct {
	Err   error
	Token lexer.Token // Offending token, TokEOF for ErrUnexpectedEnd.
}

func (e *Error) Error() string {
	if e.Token.Type == lexer.TokEOF {
		return fmt.Sprintf("%s at position %d", e.Err, e.Token.Pos)
	}
	return fmt.Sprintf("%s %q at position %d", e.Err, e.Token.Value, e.Token.Pos)
}

func (e *Error) Unwrap() error { return e.Err }
