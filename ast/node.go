package ast

import (
	"strings"
)

// Sexp represents one parsed S-expression: a Constant, a List, a Vector or a
// Quoted form. Values are immutable once built.
type Sexp interface {
	Type() NodeType
	String() string

	sexp()
}

// Constant wraps an atom.
type Constant struct {
	atom Atom
}

// NewConstant creates a node that holds the given atom
func NewConstant(a Atom) Constant {
	return Constant{atom: a}
}

// Atom returns the wrapped atom
func (c Constant) Atom() Atom {
	return c.atom
}

// Type returns the type of the wrapped atom
func (c Constant) Type() NodeType {
	if c.atom == nil {
		return 0
	}
	return c.atom.Type()
}

func (c Constant) String() string {
	return "Constant(" + atomString(c.atom) + ")"
}

// List is a parenthesized sequence: (a b c)
type List struct {
	elements []Sexp
}

// NewList creates a list with the given elements in order
func NewList(elements ...Sexp) List {
	return List{elements: cloneElements(elements)}
}

// Elements returns a copy of the list's children
func (l List) Elements() []Sexp {
	return cloneElements(l.elements)
}

// Len returns the number of elements in the list
func (l List) Len() int {
	return len(l.elements)
}

// Get returns the ith element
func (l List) Get(i int) Sexp {
	return l.elements[i]
}

// Type returns NodeTypeList
func (List) Type() NodeType {
	return NodeTypeList
}

func (l List) String() string {
	return "List" + elementsString(l.elements)
}

// Vector is a hash-prefixed sequence: #(a b c)
type Vector struct {
	elements []Sexp
}

// NewVector creates a vector with the given elements in order
func NewVector(elements ...Sexp) Vector {
	return Vector{elements: cloneElements(elements)}
}

// Elements returns a copy of the vector's children
func (v Vector) Elements() []Sexp {
	return cloneElements(v.elements)
}

// Len returns the number of elements in the vector
func (v Vector) Len() int {
	return len(v.elements)
}

// Get returns the ith element
func (v Vector) Get(i int) Sexp {
	return v.elements[i]
}

// Type returns NodeTypeVector
func (Vector) Type() NodeType {
	return NodeTypeVector
}

func (v Vector) String() string {
	return "Vector" + elementsString(v.elements)
}

// QuoteKind tells apart the four quoting prefixes
type QuoteKind uint8

// Quote kinds
const (
	Quote   QuoteKind = iota + 1 // '
	Quasi                        // `
	UnQuote                      // ,
	Splice                       // @
)

var quoteKinds = map[QuoteKind]struct {
	nt     NodeType
	prefix rune
	name   string
}{
	Quote:   {NodeTypeQuote, '\'', "Quote"},
	Quasi:   {NodeTypeQuasi, '`', "Quasi"},
	UnQuote: {NodeTypeUnQuote, ',', "UnQuote"},
	Splice:  {NodeTypeSplice, '@', "Splice"},
}

// Prefix returns the source character that introduces the quote form
func (k QuoteKind) Prefix() rune {
	return quoteKinds[k].prefix
}

func (k QuoteKind) String() string {
	if q, ok := quoteKinds[k]; ok {
		return q.name
	}
	return "invalid"
}

// Quoted wraps exactly one expression under a quoting prefix.
type Quoted struct {
	kind  QuoteKind
	inner Sexp
}

// NewQuoted creates a quote form of the given kind around inner
func NewQuoted(kind QuoteKind, inner Sexp) Quoted {
	return Quoted{kind: kind, inner: inner}
}

// Kind returns the quoting prefix of the form
func (q Quoted) Kind() QuoteKind {
	return q.kind
}

// Inner returns the quoted expression
func (q Quoted) Inner() Sexp {
	return q.inner
}

// Type returns one of NodeTypeQuote, NodeTypeQuasi, NodeTypeUnQuote or
// NodeTypeSplice
func (q Quoted) Type() NodeType {
	return quoteKinds[q.kind].nt
}

func (q Quoted) String() string {
	return q.kind.String() + "(" + sexpString(q.inner) + ")"
}

func (Constant) sexp() {}
func (List) sexp()     {}
func (Vector) sexp()   {}
func (Quoted) sexp()   {}

func cloneElements(elements []Sexp) []Sexp {
	out := make([]Sexp, len(elements))
	copy(out, elements)
	return out
}

func elementsString(elements []Sexp) string {
	parts := make([]string, 0, len(elements))
	for i := range elements {
		parts = append(parts, sexpString(elements[i]))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func sexpString(s Sexp) string {
	if s == nil {
		return ":nil"
	}
	return s.String()
}

func atomString(a Atom) string {
	if a == nil {
		return ":nil"
	}
	return a.String()
}

var (
	_ = Sexp(Constant{})
	_ = Sexp(List{})
	_ = Sexp(Vector{})
	_ = Sexp(Quoted{})
)
