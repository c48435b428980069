package ast

import "strings"

// FindChildByKind returns the first direct child whose kind is in kinds.
func FindChildByKind(n *Node, kinds ...string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if containsKind(kinds, child.Kind) {
			return child
		}
	}
	return nil
}

// FindAllChildrenByKind returns every direct child whose kind is in kinds,
// in source order.
func FindAllChildrenByKind(n *Node, kinds ...string) []*Node {
	var results []*Node
	if n == nil {
		return results
	}
	for _, child := range n.Children {
		if containsKind(kinds, child.Kind) {
			results = append(results, child)
		}
	}
	return results
}

// ValueOfChildByKind returns the value of the first direct child whose kind
// is in kinds, or "" when there is none.
func ValueOfChildByKind(n *Node, kinds ...string) string {
	if child := FindChildByKind(n, kinds...); child != nil {
		return child.Value
	}
	return ""
}

// FindChildAfterByKind returns the sibling immediately following the first
// direct child whose kind is in kinds. It returns nil if no child matches or
// the match is the last child.
func FindChildAfterByKind(n *Node, kinds ...string) *Node {
	if n == nil {
		return nil
	}
	for i, child := range n.Children {
		if !containsKind(kinds, child.Kind) {
			continue
		}
		if i+1 < len(n.Children) {
			return n.Children[i+1]
		}
		return nil
	}
	return nil
}

// FirstNodeByKind returns the first node in pre-order, n included, whose kind
// is in kinds.
func FirstNodeByKind(n *Node, kinds ...string) *Node {
	var found *Node
	Walk(n, func(cur *Node) bool {
		if found != nil {
			return false
		}
		if containsKind(kinds, cur.Kind) {
			found = cur
			return false
		}
		return true
	})
	return found
}

// FirstNodeByValue returns the first node in pre-order whose value equals
// value with surrounding whitespace removed. Identical text appearing more than once
// resolves to the earliest occurrence; use NodesByValue to detect that case.
func FirstNodeByValue(n *Node, value string) *Node {
	want := strings.TrimSpace(value)
	var found *Node
	Walk(n, func(cur *Node) bool {
		if found != nil {
			return false
		}
		if cur.Value == want {
			found = cur
			return false
		}
		return true
	})
	return found
}

// NodesByValue returns every outermost node whose value equals value with
// surrounding whitespace removed. Nodes nested inside a match are not reported, since
// they share its text.
func NodesByValue(n *Node, value string) []*Node {
	want := strings.TrimSpace(value)
	var found []*Node
	Walk(n, func(cur *Node) bool {
		if cur.Value == want {
			found = append(found, cur)
			return false
		}
		return true
	})
	return found
}
