// Package languages maps each supported grammar's node vocabulary onto the
// shared synopsis and coverage model.
package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/coverage"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

// Extractor implements synopsis, cursor lookup and coverage for one language.
// Implementations hold no mutable state.
type Extractor interface {
	// Synopsis classifies selection. file is the whole file's tree, used to
	// recover context such as the class enclosing a selected method.
	Synopsis(selection, file *ast.Node) extraction.Synopsis

	// Code returns the source of the documentable construct whose first line
	// covers offset.
	Code(file *ast.Node, offset int) (string, bool)

	// Progress returns documentation coverage for root, or nil when the
	// language does not support it.
	Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress
}

var noOptions = coverage.Options{}

// codeWithin is the shared Code implementation.
func codeWithin(file *ast.Node, offset int, kinds []string) (string, bool) {
	node := ast.KindWithinRange(file, offset, kinds...)
	if node == nil {
		return "", false
	}
	return node.Value, true
}

// progressOf is the shared Progress implementation.
func progressOf(c coverage.Classifier, root *ast.Node, indicators []extraction.Indicator, opts coverage.Options) *extraction.Progress {
	p := coverage.Accumulate(root, c, indicators, opts)
	return &p
}

// relocate finds the selection's text inside the file tree.
func relocate(selection, file *ast.Node) *ast.Node {
	if selection == nil {
		return nil
	}
	return ast.FirstNodeByValue(file, selection.Value)
}

// scopedReturns reports whether fn contains a node of kind outside any
// nested construct of the given kinds.
func scopedReturns(fn *ast.Node, kind string, nested ...string) bool {
	return ast.KindExistsInTree(fn, kind, ast.ScopeOf(fn, nested...))
}

// trueOrAbsent maps found to true, and a miss to an absent Returns.
func trueOrAbsent(found bool) *bool {
	if found {
		return extraction.Bool(true)
	}
	return nil
}

// valueOrEmpty returns n's value, or "" for a nil node.
func valueOrEmpty(n *ast.Node) string {
	if n == nil {
		return ""
	}
	return n.Value
}
