// Package lexer provides the lexical analyzer for arithmetic expressions.
package lexer

import (
	"strings"
	"unicode/utf8"
)

const digits = "0123456789"

// eof is returned by next when the input is exhausted. It can't collide with
// a NUL byte in the input, which must be reported as an invalid character.
const eof rune = -1

// Option configures optional syntax accepted by the lexer.
type Option func(*Lexer)

// WithOperatorAliases makes the lexer accept the calculator glyphs 'x', 'X'
// and '×' for multiplication and '÷' for division.
func WithOperatorAliases() Option {
	return func(l *Lexer) { l.aliases = true }
}

// WithExponent makes the lexer accept a decimal exponent suffix in number
// literals, e.g. 1e3 or 2.5E-2.
func WithExponent() Option {
	return func(l *Lexer) { l.exponent = true }
}

type Lexer struct {
	input string

	curToken Token
	err      *Error

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.

	aliases  bool
	exponent bool
}

// New creates a new Lexer for the given input.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize scans the whole input and returns its tokens, without the final
// EOF token. Empty input yields an empty slice.
func Tokenize(input string, opts ...Option) ([]Token, error) {
	l := New(input, opts...)
	var tokens []Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case TokEOF:
			return tokens, nil
		case TokError:
			return nil, l.err
		}
		tokens = append(tokens, tok)
	}
}

// NextToken scans and returns the next token. Once the input is exhausted,
// it keeps returning TokEOF. On failure it returns a TokError token, and Err
// reports the detail.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, next didn't advance.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// fail records the error, emits a TokError token and drops the rest of the
// input so that following calls return TokEOF.
func (l *Lexer) fail(err *Error) stateFn {
	l.err = err
	l.curToken = Token{
		Type:  TokError,
		Value: err.Error(),
		Pos:   err.Pos,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
