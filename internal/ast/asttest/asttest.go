// Package asttest builds ast.Node trees by hand for tests that should not
// depend on a real grammar.
package asttest

import (
	"fmt"
	"strings"

	"github.com/mvp-joe/synopsis/internal/ast"
)

// Spec describes a node to build. Text locates the node inside its parent:
// it is searched for after the previous sibling's end.
type Spec struct {
	Kind      string
	Text      string
	IsError   bool
	Anonymous bool
	Children  []Spec
}

// N describes a node of kind spanning text.
func N(kind, text string, children ...Spec) Spec {
	return Spec{Kind: kind, Text: text, Children: children}
}

// T describes an anonymous token whose text is its kind, like "=" or "return".
func T(kind string) Spec {
	return Spec{Kind: kind, Text: kind, Anonymous: true}
}

// Err describes an error node spanning text.
func Err(text string, children ...Spec) Spec {
	return Spec{Kind: "ERROR", Text: text, IsError: true, Children: children}
}

// Build resolves root against src. A root with empty Text spans all of src.
// It panics when a node's text cannot be found, since that is a broken fixture.
func Build(src string, root Spec) *ast.Node {
	start, end := 0, len(src)
	if root.Text != "" {
		idx := strings.Index(src, root.Text)
		if idx < 0 {
			panic(fmt.Sprintf("asttest: %q not found in source", root.Text))
		}
		start, end = idx, idx+len(root.Text)
	}
	return build(src, root, start, end)
}

// Program wraps Build in an ast.Program.
func Program(src string, root Spec) *ast.Program {
	node := Build(src, root)
	hasError := false
	ast.Walk(node, func(n *ast.Node) bool {
		if n.IsError {
			hasError = true
		}
		return !hasError
	})
	return &ast.Program{Root: node, HasError: hasError}
}

func build(src string, spec Spec, start, end int) *ast.Node {
	node := &ast.Node{
		Kind:      spec.Kind,
		Value:     src[start:end],
		Start:     start,
		End:       end,
		IsError:   spec.IsError,
		Anonymous: spec.Anonymous,
	}

	cursor := start
	for _, child := range spec.Children {
		idx := strings.Index(src[cursor:end], child.Text)
		if child.Text == "" || idx < 0 {
			panic(fmt.Sprintf("asttest: child %s %q not found in %s %q", child.Kind, child.Text, spec.Kind, node.Value))
		}
		childStart := cursor + idx
		childEnd := childStart + len(child.Text)
		node.Children = append(node.Children, build(src, child, childStart, childEnd))
		cursor = childEnd
	}
	return node
}
