package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals.
	TokNumber

	// Operators.
	TokPlus  // '+'.
	TokMinus // '-'.
	TokStar  // '*', or 'x', 'X', '×' with aliases enabled.
	TokSlash // '/', or '÷' with aliases enabled.

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber: "NUMBER",

	TokPlus:  "PLUS",
	TokMinus: "MINUS",
	TokStar:  "STAR",
	TokSlash: "SLASH",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsOperator reports whether the token type is one of the binary operators.
func (tt TokenType) IsOperator() bool {
	return tt.IsOneOf(TokPlus, TokMinus, TokStar, TokSlash)
}

// Token is a lexical token of an arithmetic expression.
type Token struct {
	Type  TokenType
	Value string // Source text of the token.

	// Number holds the parsed value of a TokNumber.
	Number float64

	// Pos is the byte offset of the token in the input.
	Pos int
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Pos + len(t.Value)
}

func (t Token) String() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokError:
		return fmt.Sprintf("ERROR [%d]: %s", t.Pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Pos, t.Value)
}
