package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/rexp/lexer"
)

// Errors returned by the parser, wrapped in an *Error that locates them.
var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnbalanced      = errors.New("unbalanced delimiter")
	ErrQuoteContext    = errors.New("unquote outside of quasiquote")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrTrailingInput   = errors.New("trailing input")
)

// Error is a parse failure together with where it happened.
type Error struct {
	Err  error
	Desc string

	// Offset is in bytes from the start of the input, Line and Col are
	// 1-based and count characters.
	Offset int
	Line   int
	Col    int
}

func newError(src string, at string, err error, format string, args ...interface{}) *Error {
	offset := lexer.Offset(src, at)
	line, col := lexer.Position(src, offset)
	return &Error{
		Err:    err,
		Desc:   fmt.Sprintf(format, args...),
		Offset: offset,
		Line:   line,
		Col:    col,
	}
}

func (e *Error) Error() string {
	if e.Desc == "" {
		return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("%d:%d: %v: %s", e.Line, e.Col, e.Err, e.Desc)
}

// Unwrap returns one of the Err* values of this package
func (e *Error) Unwrap() error {
	return e.Err
}
