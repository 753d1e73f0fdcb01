package main

import (
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/xiam/rexp/ast"
	"github.com/xiam/rexp/parser"
)

func main() {
	input := "(define (greet msg)\n  `(println ,msg #(1 2.5 \"three\") |four five|))"

	logger := logrus.New()
	logger.SetLevel(logrus.TraceLevel)

	p := parser.New(parser.WithLogger(logger))

	nodes, err := p.ParseAll(input)
	if err != nil {
		log.Fatal("parser.ParseAll: ", err)
	}

	for _, node := range nodes {
		if err := ast.Print(os.Stdout, node); err != nil {
			log.Fatal("ast.Print: ", err)
		}
	}
}
