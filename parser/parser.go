package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/xiam/rexp/ast"
	"github.com/xiam/rexp/lexer"
)

const openVector = "#("

// Parser reads S-expressions from text. A Parser only holds configuration,
// so a single one can be shared by many goroutines.
//
// Nesting is handled by recursion: input nested deeper than the goroutine
// stack allows is not supported.
type Parser struct {
	log logrus.FieldLogger
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets where the parser reports failures (Debug level) and parsed
// expressions (Trace level). The logrus standard logger is used by default.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// New creates a Parser
func New(opts ...Option) *Parser {
	p := &Parser{
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// ParseSexp parses one expression off the start of in using the default
// parser. See (*Parser).ParseSexp.
func ParseSexp(in string) (string, ast.Sexp, error) {
	return defaultParser.ParseSexp(in)
}

// Parse parses exactly one expression using the default parser. See
// (*Parser).Parse.
func Parse(in string) (ast.Sexp, error) {
	return defaultParser.Parse(in)
}

// ParseAll parses every expression in in using the default parser. See
// (*Parser).ParseAll.
func ParseAll(in string) ([]ast.Sexp, error) {
	return defaultParser.ParseAll(in)
}

// ParseSexp parses one expression off the start of in and returns whatever
// text follows it. Callers that expect in to hold exactly one expression should
// check that the returned remainder is empty.
//
// On failure the returned error is an *Error and no tree is returned.
func (p *Parser) ParseSexp(in string) (string, ast.Sexp, error) {
	g := grammar{src: in}

	rest, node, err := g.sexp(in, false)
	if err != nil {
		p.logError(err)
		return in, nil, err
	}

	p.log.WithField("consumed", lexer.Offset(in, rest)).Tracef("parsed %v", node)
	return rest, node, nil
}

// Parse parses in as exactly one expression. Whitespace may surround it,
// anything else after it fails with ErrTrailingInput.
func (p *Parser) Parse(in string) (ast.Sexp, error) {
	rest, node, err := p.ParseSexp(in)
	if err != nil {
		return nil, err
	}

	if rest = lexer.SkipWhitespace(rest); rest != "" {
		err = newError(in, rest, ErrTrailingInput, "unexpected remainder")
		p.logError(err)
		return nil, err
	}
	return node, nil
}

// ParseAll parses a whitespace-separated sequence of expressions until in is
// exhausted. Empty or blank input yields an empty slice.
func (p *Parser) ParseAll(in string) ([]ast.Sexp, error) {
	g := grammar{src: in}

	nodes := []ast.Sexp{}
	for rest := lexer.SkipWhitespace(in); rest != ""; rest = lexer.SkipWhitespace(rest) {
		var node ast.Sexp
		var err error

		rest, node, err = g.sexp(rest, false)
		if err != nil {
			p.logError(err)
			return nil, err
		}
		nodes = append(nodes, node)
	}

	p.log.WithField("expressions", len(nodes)).Trace("parsed input")
	return nodes, nil
}

func (p *Parser) logError(err error) {
	var perr *Error
	if errors.As(err, &perr) {
		p.log.WithFields(logrus.Fields{
			"offset": perr.Offset,
			"line":   perr.Line,
			"col":    perr.Col,
		}).WithError(err).Debug("parse failed")
		return
	}
	p.log.WithError(err).Debug("parse failed")
}

// grammar holds the complete input so failures can be located; every rule
// takes the suffix it has to start from and returns the suffix it did not
// consume.
type grammar struct {
	src string
}

func (g grammar) fail(at string, err error, format string, args ...interface{}) (string, ast.Sexp, error) {
	return "", nil, newError(g.src, at, err, format, args...)
}

// sexp parses a single expression. quasi is true while a quasiquote is open
// around the current position.
func (g grammar) sexp(in string, quasi bool) (string, ast.Sexp, error) {
	in = lexer.SkipWhitespace(in)
	if in == "" {
		return g.fail(in, ErrUnexpectedEOF, "expecting expression")
	}

	r, _ := lexer.RuneAt(in)
	switch {
	case lexer.IsQuotePrefix(r):
		return g.quoted(in, quasi)

	case r == lexer.OpenList:
		rest, elements, err := g.sequence(in, string(lexer.OpenList), quasi)
		if err != nil {
			return "", nil, err
		}
		return rest, ast.NewList(elements...), nil

	case strings.HasPrefix(in, openVector):
		rest, elements, err := g.sequence(in, openVector, quasi)
		if err != nil {
			return "", nil, err
		}
		return rest, ast.NewVector(elements...), nil

	case r == lexer.DoubleQuote:
		return g.str(in)

	case r == lexer.Pipe:
		return g.pipeSymbol(in)

	case r == lexer.CloseList:
		return g.fail(in, ErrUnexpectedToken, "%q (%v) without matching %q", r, lexer.ClassOf(r), lexer.OpenList)
	}

	return g.atom(in)
}

func (g grammar) quoted(in string, quasi bool) (string, ast.Sexp, error) {
	var kind ast.QuoteKind

	switch in[0] {
	case lexer.QuoteMark:
		kind = ast.Quote
	case lexer.Backtick:
		kind = ast.Quasi
		quasi = true
	case lexer.Comma:
		kind = ast.UnQuote
	case lexer.At:
		kind = ast.Splice
	default:
		return g.fail(in, ErrUnexpectedToken, "expecting quote prefix")
	}

	if (kind == ast.UnQuote || kind == ast.Splice) && !quasi {
		return g.fail(in, ErrQuoteContext, "%v (%q) must be inside a quasiquote", kind, kind.Prefix())
	}

	rest, inner, err := g.sexp(in[1:], quasi)
	if err != nil {
		return "", nil, err
	}
	return rest, ast.NewQuoted(kind, inner), nil
}

// sequence parses the elements of a list or a vector, from the opening
// delimiter up to and including the closing parenthesis.
func (g grammar) sequence(in string, open string, quasi bool) (string, []ast.Sexp, error) {
	elements := []ast.Sexp{}

	rest := in[len(open):]
	for {
		rest = lexer.SkipWhitespace(rest)

		if rest == "" {
			return "", nil, newError(g.src, in, ErrUnbalanced, "%q without matching %q", open, lexer.CloseList)
		}
		if rest[0] == lexer.CloseList {
			return rest[1:], elements, nil
		}

		var node ast.Sexp
		var err error

		rest, node, err = g.sexp(rest, quasi)
		if err != nil {
			return "", nil, err
		}
		elements = append(elements, node)
	}
}

// str parses a double-quoted string. A backslash makes the character after it
// literal.
func (g grammar) str(in string) (string, ast.Sexp, error) {
	var buf strings.Builder

	for i := 1; i < len(in); {
		_, size := utf8.DecodeRuneInString(in[i:])

		switch in[i] {
		case lexer.DoubleQuote:
			return in[i+1:], ast.NewConstant(ast.String(buf.String())), nil

		case lexer.Backslash:
			i += size
			if i >= len(in) {
				return g.fail(in, ErrUnbalanced, "unterminated string")
			}
			_, size = utf8.DecodeRuneInString(in[i:])
		}

		buf.WriteString(in[i : i+size])
		i += size
	}

	return g.fail(in, ErrUnbalanced, "unterminated string")
}

// pipeSymbol parses |a symbol|, taking everything between the pipes verbatim.
func (g grammar) pipeSymbol(in string) (string, ast.Sexp, error) {
	end := strings.IndexByte(in[1:], lexer.Pipe)
	if end < 0 {
		return g.fail(in, ErrUnbalanced, "unterminated symbol")
	}

	name := in[1 : end+1]
	return in[end+2:], ast.NewConstant(ast.Symbol(name)), nil
}

// atom parses a bare word, as a number if the whole word has the shape of one
// and as a symbol otherwise.
func (g grammar) atom(in string) (string, ast.Sexp, error) {
	word, rest := lexer.Word(in)
	if word == "" {
		r, _ := lexer.RuneAt(in)
		return g.fail(in, ErrUnexpectedToken, "%q (%v)", r, lexer.ClassOf(r))
	}

	ok, float := lexer.NumberShape(word)
	if !ok {
		return rest, ast.NewConstant(ast.Symbol(word)), nil
	}

	if float {
		f64, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return g.fail(in, ErrInvalidNumber, "%v", err)
		}
		return rest, ast.NewConstant(ast.Float(f64)), nil
	}

	i64, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return g.fail(in, ErrInvalidNumber, "%v", err)
	}
	return rest, ast.NewConstant(ast.Int(i64)), nil
}
