package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable, indented representation of a tree to w
func Print(w io.Writer, n Sexp) error {
	return printLevel(w, n, 0)
}

func printLevel(w io.Writer, n Sexp, level int) error {
	indent := strings.Repeat("    ", level)
	if n == nil {
		_, err := fmt.Fprintf(w, "%s:nil\n", indent)
		return err
	}

	switch node := n.(type) {

	case List:
		return printChildren(w, indent, n.Type(), node.elements, level)

	case Vector:
		return printChildren(w, indent, n.Type(), node.elements, level)

	case Quoted:
		if _, err := fmt.Fprintf(w, "%s(%s)\n", indent, n.Type()); err != nil {
			return err
		}
		return printLevel(w, node.inner, level+1)

	case Constant:
		_, err := fmt.Fprintf(w, "%s(%s): %v\n", indent, n.Type(), node.atom)
		return err

	default:
		panic("unknown node type")
	}
}

func printChildren(w io.Writer, indent string, nt NodeType, children []Sexp, level int) error {
	if _, err := fmt.Fprintf(w, "%s(%s)[%d]\n", indent, nt, len(children)); err != nil {
		return err
	}
	for i := range children {
		if err := printLevel(w, children[i], level+1); err != nil {
			return err
		}
	}
	return nil
}
