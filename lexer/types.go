package lexer

// Class represents the lexical class of a single character
type Class uint8

// List of character classes
const (
	ClassInvalid     Class = iota
	ClassWhitespace        // Space, tab, newline, carriage return, form feed, vertical tab
	ClassOpenList          // Open parenthesis: "("
	ClassCloseList         // Close parenthesis: ")"
	ClassHash              // Hash: "#", opens a vector when followed by "("
	ClassDoubleQuote       // Double quote: '"'
	ClassPipe              // Pipe: "|"
	ClassQuotePrefix       // One of: ' ` , @
	ClassBackslash         // Backslash: "\"
	ClassDigit             // Digits
	ClassMinus             // Minus: "-"
	ClassDot               // Dot: "."
)

// Characters with a fixed meaning in the grammar
const (
	OpenList    = '('
	CloseList   = ')'
	Hash        = '#'
	DoubleQuote = '"'
	Pipe        = '|'
	Backslash   = '\\'
	Minus       = '-'
	Dot         = '.'

	QuoteMark = '\''
	Backtick  = '`'
	Comma     = ','
	At        = '@'
)

var classValues = map[Class][]rune{
	ClassWhitespace:  []rune(" \t\n\r\f\v"),
	ClassOpenList:    {OpenList},
	ClassCloseList:   {CloseList},
	ClassHash:        {Hash},
	ClassDoubleQuote: {DoubleQuote},
	ClassPipe:        {Pipe},
	ClassQuotePrefix: {QuoteMark, Backtick, Comma, At},
	ClassBackslash:   {Backslash},
	ClassDigit:       []rune("0123456789"),
	ClassMinus:       {Minus},
	ClassDot:         {Dot},
}

var classNames = map[Class]string{
	ClassInvalid:     "invalid",
	ClassWhitespace:  "whitespace",
	ClassOpenList:    "open_list",
	ClassCloseList:   "close_list",
	ClassHash:        "hash",
	ClassDoubleQuote: "double_quote",
	ClassPipe:        "pipe",
	ClassQuotePrefix: "quote_prefix",
	ClassBackslash:   "backslash",
	ClassDigit:       "digit",
	ClassMinus:       "minus",
	ClassDot:         "dot",
}

func (c Class) String() string {
	if v, ok := classNames[c]; ok {
		return v
	}
	return classNames[ClassInvalid]
}

// ClassOf returns the class of r, or ClassInvalid when r has no special
// meaning.
func ClassOf(r rune) Class {
	for c := ClassWhitespace; c <= ClassDot; c++ {
		if isClass(c)(r) {
			return c
		}
	}
	return ClassInvalid
}

func isClass(c Class) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range classValues[c] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isWhitespace  = isClass(ClassWhitespace)
	isOpenList    = isClass(ClassOpenList)
	isCloseList   = isClass(ClassCloseList)
	isDoubleQuote = isClass(ClassDoubleQuote)
	isPipe        = isClass(ClassPipe)
	isQuotePrefix = isClass(ClassQuotePrefix)
	isDigit       = isClass(ClassDigit)
	isMinus       = isClass(ClassMinus)
	isDot         = isClass(ClassDot)
)

// IsWhitespace returns true if r separates elements
func IsWhitespace(r rune) bool {
	return isWhitespace(r)
}

// IsDelimiter returns true if r ends a bare word: whitespace, parentheses,
// quote prefixes, double quotes and pipes.
func IsDelimiter(r rune) bool {
	return isWhitespace(r) ||
		isOpenList(r) ||
		isCloseList(r) ||
		isQuotePrefix(r) ||
		isDoubleQuote(r) ||
		isPipe(r)
}

// IsQuotePrefix returns true for ' ` , and @
func IsQuotePrefix(r rune) bool {
	return isQuotePrefix(r)
}
