// Package rexp reads S-expressions into an immutable syntax tree.
//
// The grammar covers integers, floats, strings with backslash escapes, bare
// symbols, |delimited symbols|, lists (a b), vectors #(a b) and the quote
// prefixes ' ` , @. Unquote (,) and splice (@) are only accepted inside a
// quasiquote (`).
//
// The tree types live in package ast and the grammar in package parser; this
// package offers one-call shortcuts.
package rexp

import (
	"github.com/xiam/rexp/ast"
	"github.com/xiam/rexp/parser"
)

// Parse parses in as exactly one expression.
func Parse(in string) (ast.Sexp, error) {
	return parser.Parse(in)
}

// ParseAll parses every expression in in.
func ParseAll(in string) ([]ast.Sexp, error) {
	return parser.ParseAll(in)
}
