package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeTypes(t *testing.T) {
	testCases := []struct {
		Node Sexp
		Type NodeType
	}{
		{NewConstant(Int(1)), NodeTypeInt},
		{NewConstant(Float(1.5)), NodeTypeFloat},
		{NewConstant(String("a")), NodeTypeString},
		{NewConstant(Symbol("a")), NodeTypeSymbol},
		{NewList(), NodeTypeList},
		{NewVector(), NodeTypeVector},
		{NewQuoted(Quote, NewList()), NodeTypeQuote},
		{NewQuoted(Quasi, NewList()), NodeTypeQuasi},
		{NewQuoted(UnQuote, NewList()), NodeTypeUnQuote},
		{NewQuoted(Splice, NewList()), NodeTypeSplice},
	}

	for i := range testCases {
		nt := testCases[i].Node.Type()
		assert.Equal(t, testCases[i].Type, nt)

		assert.Equal(t, nt.IsValue(), !nt.IsVector() && !nt.IsQuote(), "type %v", nt)
		assert.NotEmpty(t, nt.String())
	}
}

func TestNodeList(t *testing.T) {
	list := NewList(NewConstant(Int(1)), NewConstant(Symbol("b")))
	require.Equal(t, 2, list.Len())
	assert.Equal(t, NewConstant(Symbol("b")), list.Get(1))

	// callers can't mutate the list through the returned slice
	elements := list.Elements()
	elements[0] = NewConstant(Int(99))
	assert.Equal(t, NewConstant(Int(1)), list.Get(0))

	// nor through the slice used to build it
	in := []Sexp{NewConstant(Int(1))}
	vec := NewVector(in...)
	in[0] = NewConstant(Int(2))
	assert.Equal(t, NewConstant(Int(1)), vec.Get(0))
}

func TestNodeEmptyCollections(t *testing.T) {
	assert.NotNil(t, NewList().Elements())
	assert.Equal(t, 0, NewList().Len())
	assert.Equal(t, NewVector(), NewVector([]Sexp{}...))
}

func TestQuoteKind(t *testing.T) {
	assert.Equal(t, '\'', Quote.Prefix())
	assert.Equal(t, '`', Quasi.Prefix())
	assert.Equal(t, ',', UnQuote.Prefix())
	assert.Equal(t, '@', Splice.Prefix())
	assert.Equal(t, "invalid", QuoteKind(0).String())

	q := NewQuoted(Quasi, NewConstant(Int(345)))
	assert.Equal(t, Quasi, q.Kind())
	assert.Equal(t, NewConstant(Int(345)), q.Inner())
}

func TestNodeString(t *testing.T) {
	testCases := []struct {
		In  Sexp
		Out string
	}{
		{
			NewConstant(Int(-345)),
			`Constant(Int(-345))`,
		},
		{
			NewConstant(Float(756.314)),
			`Constant(Float(756.314))`,
		},
		{
			NewConstant(String(`a "b"`)),
			`Constant(String("a \"b\""))`,
		},
		{
			NewList(),
			`List[]`,
		},
		{
			NewVector(NewConstant(Int(1)), NewList(NewConstant(Symbol("x")))),
			`Vector[Constant(Int(1)) List[Constant(Symbol("x"))]]`,
		},
		{
			NewQuoted(Quote, NewConstant(Symbol("this symbol has spaces"))),
			`Quote(Constant(Symbol("this symbol has spaces")))`,
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].In.String())
	}
}

func TestPrint(t *testing.T) {
	tree := NewList(
		NewConstant(Symbol("lambda")),
		NewList(NewConstant(Symbol("msg"))),
		NewQuoted(Quasi, NewVector(NewConstant(Int(1)))),
	)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, tree))

	expected := "(list)[3]\n" +
		"    (symbol): Symbol(\"lambda\")\n" +
		"    (list)[1]\n" +
		"        (symbol): Symbol(\"msg\")\n" +
		"    (quasi)\n" +
		"        (vector)[1]\n" +
		"            (int): Int(1)\n"

	assert.Equal(t, expected, buf.String())
}
