// Command debug-ast prints the parse tree of a source file, one node per
// line, as the extractors see it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/languages"
	"github.com/mvp-joe/synopsis/internal/parsers"
)

func main() {
	lang := flag.String("lang", "", "language id (inferred from the file extension when omitted)")
	maxValue := flag.Int("width", 60, "truncate node values to this many characters")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: debug-ast [-lang id] [-width n] <file>")
	}
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	languageID := *lang
	if languageID == "" {
		languageID = languages.FromFileName(path, "")
	}

	program, err := parsers.New().Parse(context.Background(), string(source), languageID)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== %s (%s) ===\n", path, languageID)
	if program.HasError {
		fmt.Println("tree contains syntax errors")
	}
	printNode(program.Root, 0, *maxValue)
}

func printNode(n *ast.Node, depth, width int) {
	value := strings.ReplaceAll(n.Value, "\n", `\n`)
	if len(value) > width {
		value = value[:width] + "..."
	}
	marker := ""
	if n.IsError {
		marker = " ERROR"
	}
	fmt.Printf("%s%s [%d-%d]%s %q\n", strings.Repeat("  ", depth), n.Kind, n.Start, n.End, marker, value)
	for _, child := range n.Children {
		printNode(child, depth+1, width)
	}
}
