package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/coverage"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var (
	pythonFunction = ast.PathSpec{
		Path:     []string{"function_definition"},
		Excludes: []string{"module", "decorated_definition"},
	}
	pythonClass = ast.PathSpec{
		Path:     []string{"class_definition"},
		Excludes: []string{"module"},
	}
)

var pythonCoverage = coverage.Options{Docstrings: true}

// Python extracts synopses from the tree-sitter-python grammar.
// Coverage treats a triple-quoted docstring anywhere in a construct as
// documentation.
type Python struct{}

func (py Python) Synopsis(selection, _ *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(py.function(selection), py.class(selection))
}

func (Python) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, []string{"function_definition"})
}

func (py Python) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(py, root, indicators, pythonCoverage)
}

func (Python) function(tree *ast.Node) extraction.Synopsis {
	fn := ast.NodeByPath(tree, pythonFunction)
	if fn == nil {
		return nil
	}

	var params []extraction.Param
	if parameters := ast.FindChildByKind(fn, "parameters"); parameters != nil {
		params = []extraction.Param{}
		for _, p := range parameters.Children {
			switch p.Kind {
			case "identifier":
				if p.Value == "self" {
					continue
				}
				params = append(params, extraction.Param{Name: p.Value, Required: true})
			case "default_parameter", "typed_parameter", "typed_default_parameter":
				// A default that is not a plain literal, like None, leaves the
				// parameter required.
				def := ast.StripQuotes(ast.ValueOfChildByKind(p, "string", "integer", "true", "false"))
				params = append(params, extraction.Param{
					Name:         ast.ValueOfChildByKind(p, "identifier"),
					Type:         ast.ValueOfChildByKind(p, "type"),
					DefaultValue: def,
					Required:     def == "",
				})
			}
		}
	}

	return extraction.FunctionSynopsis{
		Params:  params,
		Returns: extraction.Bool(scopedReturns(fn, "return_statement", "function_definition")),
	}
}

func (Python) class(tree *ast.Node) extraction.Synopsis {
	cls := ast.NodeByPath(tree, pythonClass)
	if cls == nil {
		return nil
	}
	args := ast.FindChildByKind(cls, "argument_list")
	return extraction.ClassSynopsis{Extends: ast.ValueOfChildByKind(args, "attribute", "identifier")}
}
