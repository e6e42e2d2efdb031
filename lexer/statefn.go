package lexer

import (
	"errors"
	"strconv"
	"unicode"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'(': TokParenLeft,
	')': TokParenRight,
}

// Calculator glyphs, only with WithOperatorAliases.
var aliases = map[rune]TokenType{
	'x': TokStar,
	'X': TokStar,
	'×': TokStar,
	'÷': TokSlash,
}

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case unicode.IsSpace(r):
		for unicode.IsSpace(l.peek()) {
			l.next()
		}
		l.ignore()
		return lexText
	case r >= '0' && r <= '9', r == '.':
		return lexNumber
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		if tok, ok := aliases[r]; ok && l.aliases {
			l.next()
			return l.emit(tok)
		}
		return l.fail(&Error{Kind: InvalidCharacter, Char: r, Text: string(r), Pos: l.pos})
	}
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	if l.accept(".") {
		l.acceptRun(digits)
		if l.peek() == '.' {
			l.next()
			return l.malformedNumber()
		}
	}
	if l.exponent && l.accept("eE") {
		l.accept("+-")
		if !l.acceptRun(digits) {
			return l.malformedNumber()
		}
	}

	tok := l.thisToken(TokNumber)
	n, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		// Out of range literals come back as ±Inf (or 0 when too small) and
		// are left for the evaluator to reject.
		if !errors.Is(err, strconv.ErrRange) {
			return l.fail(&Error{Kind: MalformedNumber, Char: lastRune(tok.Value), Text: tok.Value, Pos: tok.Pos})
		}
	}
	tok.Number = n
	return l.emitToken(tok)
}

func (l *Lexer) malformedNumber() stateFn {
	text := l.input[l.start:l.pos]
	return l.fail(&Error{Kind: MalformedNumber, Char: lastRune(text), Text: text, Pos: l.start})
}

// lastRune returns the last character of a number literal, which is ASCII.
func lastRune(s string) rune {
	if s == "" {
		return 0
	}
	return rune(s[len(s)-1])
}
