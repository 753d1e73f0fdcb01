package lexer

import (
	"unicode/utf8"
)

// Position translates a byte offset within in into a 1-based line and column.
// Columns count characters, not bytes. Offsets past the end of in are clamped.
func Position(in string, offset int) (line int, col int) {
	if offset > len(in) {
		offset = len(in)
	}
	if offset < 0 {
		offset = 0
	}

	line, col = 1, 1
	for _, r := range in[:offset] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// Offset returns how far rest is into in, assuming rest is a suffix of in.
func Offset(in string, rest string) int {
	return len(in) - len(rest)
}

// RuneAt returns the character at the start of in and its width.
func RuneAt(in string) (rune, int) {
	return utf8.DecodeRuneInString(in)
}
