package calculator

import (
	"errors"
	"fmt"
)

// UserMessage is the only text meant for end users, whatever the failure.
const UserMessage = "Invalid expression"

// ErrInputTooLong is wrapped by KindLimit errors.
var ErrInputTooLong = errors.New("input too long")

// Kind tells which stage of the pipeline failed.
type Kind int

const (
	KindLex Kind = iota + 1
	KindParse
	KindMath
	KindLimit
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lex"
	case KindParse:
		return "parse"
	case KindMath:
		return "math"
	case KindLimit:
		return "limit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by every failing Calculator call. Err is the stage error
// (*lexer.Error, *parser.Error, *evaluator.Error), reachable with errors.As,
// and its sentinel with errors.Is.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage returns the generic message to display. The detail in Error()
// is for logs only.
func (e *Error) UserMessage() string { return UserMessage }

// KindOf returns the Kind of a calculator error, or 0 if err is not one.
func KindOf(err error) Kind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return 0
}
