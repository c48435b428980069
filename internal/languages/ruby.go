package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/coverage"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var (
	rubyMethod = ast.PathSpec{
		Path:     []string{"method"},
		Excludes: []string{"program"},
	}
	rubyClass = ast.PathSpec{
		Path:     []string{"class"},
		Excludes: []string{"program"},
	}
)

var rubyCoverage = coverage.Options{BodyKinds: []string{"body_statement"}}

// Ruby extracts synopses from the tree-sitter-ruby grammar. Splat and
// optional parameters are reported as not required.
type Ruby struct{}

func (r Ruby) Synopsis(selection, _ *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(r.method(selection), r.class(selection))
}

func (Ruby) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, []string{"method", "class"})
}

func (r Ruby) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(r, root, indicators, rubyCoverage)
}

func (Ruby) method(tree *ast.Node) extraction.Synopsis {
	m := ast.NodeByPath(tree, rubyMethod)
	if m == nil {
		return nil
	}

	params := []extraction.Param{}
	if parameters := ast.FindChildByKind(m, "method_parameters"); parameters != nil {
		for _, p := range parameters.Children {
			switch p.Kind {
			case "identifier":
				params = append(params, extraction.Param{Name: p.Value, Required: true})
			case "splat_parameter":
				params = append(params, extraction.Param{Name: p.Value})
			case "optional_parameter":
				param := extraction.Param{Name: ast.ValueOfChildByKind(p, "identifier")}
				if next := ast.FindChildAfterByKind(p, "identifier"); next != nil && next.Kind == "=" {
					param.DefaultValue = ast.StripQuotes(valueOrEmpty(ast.FindChildAfterByKind(p, "=")))
				}
				params = append(params, param)
			}
		}
	}

	return extraction.FunctionSynopsis{
		Params:  params,
		Returns: extraction.Bool(scopedReturns(m, "return", "method")),
	}
}

func (Ruby) class(tree *ast.Node) extraction.Synopsis {
	cls := ast.NodeByPath(tree, rubyClass)
	if cls == nil || cls.Anonymous {
		return nil
	}
	super := ast.FindChildByKind(cls, "superclass")
	return extraction.ClassSynopsis{Extends: ast.ValueOfChildByKind(super, "constant")}
}
