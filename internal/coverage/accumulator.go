// Package coverage computes how many documentable constructs in a file are
// preceded by their own documentation.
package coverage

import (
	"regexp"

	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

// Classifier recognizes documentable constructs. Language extractors
// implement it with their Synopsis method.
type Classifier interface {
	Synopsis(node, root *ast.Node) extraction.Synopsis
}

// Options carries the per-language details of adjacency detection.
type Options struct {
	// Docstrings marks a child as documented when its own text contains a
	// triple-quoted string.
	Docstrings bool

	// CommentKinds extends the default comment kinds.
	CommentKinds []string

	// BodyKinds extends the default kinds searched for a class body.
	BodyKinds []string
}

var (
	defaultCommentKinds = []string{"comment", "block_comment"}
	defaultBodyKinds    = []string{"block", "class_body", "declaration_list"}

	tripleQuote = regexp.MustCompile(`"""|'''`)
)

// Accumulate counts the documentable children of root. Classes are entered
// recursively and their members counted as methods. Current and Total only
// include the given indicators; the breakdown includes all of them.
// Anonymous tokens are never counted, even when they share a kind with a
// construct.
func Accumulate(root *ast.Node, classifier Classifier, indicators []extraction.Indicator, opts Options) extraction.Progress {
	a := accumulator{
		file:         root,
		classifier:   classifier,
		indicators:   indicators,
		docstrings:   opts.Docstrings,
		commentKinds: append(append([]string{}, defaultCommentKinds...), opts.CommentKinds...),
		bodyKinds:    append(append([]string{}, defaultBodyKinds...), opts.BodyKinds...),
	}
	if root == nil {
		return extraction.NewProgress()
	}
	return a.walk(root, nil, false)
}

type accumulator struct {
	file         *ast.Node // line numbers are taken relative to it
	classifier   Classifier
	indicators   []extraction.Indicator
	docstrings   bool
	commentKinds []string
	bodyKinds    []string
}

// walk counts the children of parent. leading stands in as the previous
// sibling of the first child.
func (a *accumulator) walk(parent, leading *ast.Node, nested bool) extraction.Progress {
	progress := extraction.NewProgress()

	prev := leading
	for _, child := range parent.Children {
		before := prev
		prev = child
		if child.Anonymous {
			continue
		}

		bucket, ok := bucketOf(a.classifier.Synopsis(child, parent), nested)
		if !ok {
			continue
		}

		documented := before != nil && before.HasKind(a.commentKinds...) &&
			ast.LastLine(a.file, before)+1 == ast.FirstLine(a.file, child)
		if a.docstrings && tripleQuote.MatchString(child.Value) {
			documented = true
		}

		progress = progress.Add(single(bucket, documented, extraction.Includes(a.indicators, bucket)))

		if bucket == extraction.Classes {
			body, lead := a.bodyOf(child)
			progress = progress.Add(a.walk(body, lead, true))
		}
	}

	return progress
}

// bodyOf returns the member container of cls and the sibling preceding it.
// Some grammars, tree-sitter-ruby among them, attach a comment above the first
// member to the class rather than to its body. Without a known body kind the
// class itself is walked.
func (a *accumulator) bodyOf(cls *ast.Node) (body, leading *ast.Node) {
	for i, child := range cls.Children {
		if child.HasKind(a.bodyKinds...) {
			if i > 0 {
				leading = cls.Children[i-1]
			}
			return child, leading
		}
	}
	return cls, nil
}

func bucketOf(synopsis extraction.Synopsis, nested bool) (extraction.Indicator, bool) {
	if synopsis == nil {
		return "", false
	}
	switch synopsis.Kind() {
	case extraction.KindFunction:
		if nested {
			return extraction.Methods, true
		}
		return extraction.Functions, true
	case extraction.KindClass:
		return extraction.Classes, true
	case extraction.KindTypedef:
		return extraction.Types, true
	default:
		return "", false
	}
}

// single is the contribution of one counted construct.
func single(bucket extraction.Indicator, documented, requested bool) extraction.Progress {
	p := extraction.NewProgress()
	c := extraction.Count{Total: 1}
	if documented {
		c.Current = 1
	}
	p.Breakdown[bucket] = c
	if requested {
		p.Current, p.Total = c.Current, c.Total
	}
	return p
}
