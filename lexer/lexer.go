package lexer

import (
	"strings"
	"unicode/utf8"
)

// SkipWhitespace returns in without its leading whitespace
func SkipWhitespace(in string) string {
	return strings.TrimLeftFunc(in, isWhitespace)
}

// Word splits off the leading run of characters that are not delimiters.
func Word(in string) (word string, rest string) {
	i := strings.IndexFunc(in, IsDelimiter)
	if i < 0 {
		return in, ""
	}
	return in[:i], in[i:]
}

// NumberShape tells whether word is, in its entirety, a number of the form
// -?[0-9]+(\.[0-9]+)? and whether that number has a fractional part.
func NumberShape(word string) (ok bool, float bool) {
	nl := &numberLexer{in: word}
	for state := lexNumberSign; state != nil; {
		state = state(nl)
	}
	return nl.ok, nl.ok && nl.float
}

type numberLexer struct {
	in  string
	pos int

	ok    bool
	float bool
}

type numberState func(*numberLexer) numberState

func (nl *numberLexer) peek() rune {
	if nl.pos >= len(nl.in) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(nl.in[nl.pos:])
	return r
}

func (nl *numberLexer) next() rune {
	r := nl.peek()
	if r != utf8.RuneError {
		nl.pos += utf8.RuneLen(r)
	}
	return r
}

func (nl *numberLexer) eof() bool {
	return nl.pos >= len(nl.in)
}

func lexNumberSign(nl *numberLexer) numberState {
	if isMinus(nl.peek()) {
		nl.next()
	}
	return lexNumberDigits(lexNumberFraction)
}

func lexNumberFraction(nl *numberLexer) numberState {
	if nl.eof() {
		nl.ok = true
		return nil
	}
	if !isDot(nl.next()) {
		return nil
	}
	nl.float = true
	return lexNumberDigits(lexNumberEnd)
}

func lexNumberEnd(nl *numberLexer) numberState {
	nl.ok = nl.eof()
	return nil
}

// lexNumberDigits consumes one or more digits and then moves on to then.
func lexNumberDigits(then numberState) numberState {
	return func(nl *numberLexer) numberState {
		if !isDigit(nl.peek()) {
			nl.float = false
			return nil
		}
		for isDigit(nl.peek()) {
			nl.next()
		}
		return then
	}
}
