package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256
	nodeTypeQuote  NodeType = 512

	NodeTypeInt    = nodeTypeValue | 1
	NodeTypeFloat  = nodeTypeValue | 2
	NodeTypeSymbol = nodeTypeValue | 4
	NodeTypeString = nodeTypeValue | 8

	NodeTypeList   = nodeTypeVector | 1
	NodeTypeVector = nodeTypeVector | 2

	NodeTypeQuote   = nodeTypeQuote | 1
	NodeTypeQuasi   = nodeTypeQuote | 2
	NodeTypeUnQuote = nodeTypeQuote | 4
	NodeTypeSplice  = nodeTypeQuote | 8
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// IsValue returns true for atoms.
func (nt NodeType) IsValue() bool {
	return nt&nodeTypeValue > 0
}

// IsVector returns true for lists and vectors.
func (nt NodeType) IsVector() bool {
	return nt&nodeTypeVector > 0
}

// IsQuote returns true for any of the four quote forms.
func (nt NodeType) IsQuote() bool {
	return nt&nodeTypeQuote > 0
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:     "int",
	NodeTypeFloat:   "float",
	NodeTypeSymbol:  "symbol",
	NodeTypeString:  "string",
	NodeTypeList:    "list",
	NodeTypeVector:  "vector",
	NodeTypeQuote:   "quote",
	NodeTypeQuasi:   "quasi",
	NodeTypeUnQuote: "unquote",
	NodeTypeSplice:  "splice",
}
