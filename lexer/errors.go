package lexer

import "fmt"

// ErrorKind classifies lexical errors.
type ErrorKind int

const (
	// InvalidCharacter is a character that starts no token.
	InvalidCharacter ErrorKind = iota + 1
	// MalformedNumber is a number literal that can't be read, e.g. "1.2.3".
	MalformedNumber
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "invalid character"
	case MalformedNumber:
		return "malformed number"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a lexical error.
type Error struct {
	Kind ErrorKind
	// Char is the offending character.
	Char rune
	// Text is the offending text: the character itself, or the number literal
	// scanned so far.
	Text string
	// Pos is the byte offset of Text in the input.
	Pos int
}

func (e *Error) Error() string {
	if e.Kind == MalformedNumber {
		return fmt.Sprintf("%s %q at position %d", e.Kind, e.Text, e.Pos)
	}
	return fmt.Sprintf("%s %q at position %d", e.Kind, e.Char, e.Pos)
}
