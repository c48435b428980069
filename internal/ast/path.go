package ast

// PathSpec describes where a construct sits in a grammar.
// Path lists the expected kinds from outermost to innermost. Excludes lists
// wrapper kinds that may be tunneled through without consuming a path step.
type PathSpec struct {
	Path     []string
	Excludes []string
}

// NodeByPath walks spec against tree and returns the node matching the last
// path element, or nil.
//
// At each step the current node itself may satisfy the expected kind, in
// which case the path advances without moving. Otherwise a direct child of
// that kind is entered, and failing that the first child whose kind is in
// Excludes is entered with the same expected kind.
func NodeByPath(tree *Node, spec PathSpec) *Node {
	if tree == nil || len(spec.Path) == 0 {
		return nil
	}
	return walkPath(tree, spec.Path, spec.Excludes)
}

func walkPath(node *Node, path []string, excludes []string) *Node {
	if len(path) == 0 {
		return node
	}
	want := path[0]

	if node.Kind == want {
		return walkPath(node, path[1:], excludes)
	}

	if child := FindChildByKind(node, want); child != nil {
		return walkPath(child, path[1:], excludes)
	}

	if wrapper := FindChildByKind(node, excludes...); wrapper != nil {
		return walkPath(wrapper, path, excludes)
	}

	return nil
}

// NodeByPathOptions tries each spec in order and returns the first match.
func NodeByPathOptions(tree *Node, specs ...PathSpec) *Node {
	for _, spec := range specs {
		if found := NodeByPath(tree, spec); found != nil {
			return found
		}
	}
	return nil
}
