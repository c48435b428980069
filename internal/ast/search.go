package ast

import "strings"

// ScopeOptions bounds a KindExistsInTree search to one construct.
// A node whose start and end both differ from the scope range and whose kind
// is in Excludes is not descended into.
type ScopeOptions struct {
	Start    int
	End      int
	Excludes []string
}

// ScopeOf returns ScopeOptions covering n, cutting off at nested nodes of the
// given kinds.
func ScopeOf(n *Node, excludes ...string) *ScopeOptions {
	if n == nil {
		return nil
	}
	return &ScopeOptions{Start: n.Start, End: n.End, Excludes: excludes}
}

// KindExistsInTree reports whether a node of kind exists in n's subtree.
// With opts set, nested nodes of an excluded kind are skipped, so a return
// inside an inner function does not count for the outer one.
func KindExistsInTree(n *Node, kind string, opts *ScopeOptions) bool {
	if n == nil {
		return false
	}
	if n.Kind == kind {
		return true
	}
	if opts != nil &&
		n.Start != opts.Start &&
		n.End != opts.End &&
		containsKind(opts.Excludes, n.Kind) {
		return false
	}
	for _, child := range n.Children {
		if KindExistsInTree(child, kind, opts) {
			return true
		}
	}
	return false
}

// KindWithinRange returns the node of one of kinds whose first source line
// covers offset. The tree itself wins when it qualifies; otherwise the first
// qualifying node in pre-order is returned.
func KindWithinRange(tree *Node, offset int, kinds ...string) *Node {
	if tree == nil {
		return nil
	}
	if tree.HasKind(kinds...) && onFirstLine(tree, offset) {
		return tree
	}
	var found *Node
	Walk(tree, func(cur *Node) bool {
		if found != nil {
			return false
		}
		if cur.HasKind(kinds...) && onFirstLine(cur, offset) {
			found = cur
			return false
		}
		return true
	})
	return found
}

// onFirstLine reports whether offset falls on n's first source line,
// the trailing newline included.
func onFirstLine(n *Node, offset int) bool {
	if offset < n.Start || offset > n.End {
		return false
	}
	newline := strings.IndexByte(n.Value, '\n')
	if newline == -1 {
		return true
	}
	return offset <= n.Start+newline
}
