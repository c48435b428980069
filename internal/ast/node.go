// Package ast holds the language-independent parse tree used by every
// extractor, plus the query and path-matching primitives that operate on it.
package ast

// Node is one node of a parsed source file.
// Value is always the exact slice of the parsed text between Start and End.
// Children include anonymous tokens such as punctuation and keywords; those
// are marked Anonymous. A keyword token can share its kind with a named node,
// as Ruby's "class" does.
type Node struct {
	Kind      string
	Value     string
	Start     int
	End       int
	IsError   bool
	Anonymous bool
	Children  []*Node
}

// Program is the result of parsing one source text.
type Program struct {
	Root     *Node
	HasError bool
}

// FirstChild returns the first child of n, or nil.
func (n *Node) FirstChild() *Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// HasKind reports whether n's kind is one of kinds.
func (n *Node) HasKind(kinds ...string) bool {
	if n == nil {
		return false
	}
	return containsKind(kinds, n.Kind)
}

// Walk visits n and its descendants in pre-order.
// Returning false from visit skips the node's children.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, visit)
	}
}

// HasErrorOnFirstChildChain reports whether n or any node reached by
// repeatedly taking the first child is an error node.
func HasErrorOnFirstChildChain(n *Node) bool {
	for cur := n; cur != nil; cur = cur.FirstChild() {
		if cur.IsError {
			return true
		}
	}
	return false
}

func containsKind(kinds []string, kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
