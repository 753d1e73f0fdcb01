package ast

import (
	"strconv"
)

// Atom is a leaf value: a number, a string or a symbol.
type Atom interface {
	Type() NodeType
	String() string

	atom()
}

// Num is an atom holding a number, either Int or Float.
type Num interface {
	Atom

	num()
}

// Int is a signed 64-bit integer atom.
type Int int64

// Float is a 64-bit floating point atom.
type Float float64

// String is a string atom with escapes already resolved.
type String string

// Symbol is a symbol atom.
type Symbol string

func (Int) atom()    {}
func (Float) atom()  {}
func (String) atom() {}
func (Symbol) atom() {}

func (Int) num()   {}
func (Float) num() {}

// Type returns NodeTypeInt
func (Int) Type() NodeType { return NodeTypeInt }

// Type returns NodeTypeFloat
func (Float) Type() NodeType { return NodeTypeFloat }

// Type returns NodeTypeString
func (String) Type() NodeType { return NodeTypeString }

// Type returns NodeTypeSymbol
func (Symbol) Type() NodeType { return NodeTypeSymbol }

func (i Int) String() string {
	return "Int(" + strconv.FormatInt(int64(i), 10) + ")"
}

func (f Float) String() string {
	return "Float(" + strconv.FormatFloat(float64(f), 'g', -1, 64) + ")"
}

func (s String) String() string {
	return "String(" + strconv.Quote(string(s)) + ")"
}

func (s Symbol) String() string {
	return "Symbol(" + strconv.Quote(string(s)) + ")"
}

var (
	_ = Num(Int(0))
	_ = Num(Float(0))
	_ = Atom(String(""))
	_ = Atom(Symbol(""))
)
