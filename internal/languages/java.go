package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var (
	javaClass = ast.PathSpec{
		Path:     []string{"class_declaration"},
		Excludes: []string{"program"},
	}
	javaMethod = ast.PathSpec{
		Path:     []string{"method_declaration"},
		Excludes: []string{"program"},
	}
)

var javaTypeKinds = []string{
	"type_identifier", "integral_type", "array_type", "boolean_type",
	"floating_point_type", "generic_type",
}

// javaMainParams is the entry-point signature, reported as taking no parameters.
const javaMainParams = "(String[] args)"

// Java extracts synopses from the tree-sitter-java grammar. Every function
// lives in a class, so functions are always resolved as methods of the file.
type Java struct{}

func (j Java) Synopsis(selection, file *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(j.method(selection, file), j.class(selection))
}

func (Java) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, []string{"method_declaration", "class_declaration"})
}

func (j Java) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(j, root, indicators, noOptions)
}

func (Java) method(selection, file *ast.Node) extraction.Synopsis {
	found := relocate(selection, file)
	if found == nil {
		return nil
	}
	method := ast.NodeByPath(found, javaMethod)
	if method == nil || method.Kind != "method_declaration" {
		return nil
	}

	var params []extraction.Param
	if formal := ast.FindChildByKind(method, "formal_parameters"); formal != nil {
		params = []extraction.Param{}
		if formal.Value != javaMainParams {
			for _, p := range ast.FindAllChildrenByKind(formal, "formal_parameter") {
				params = append(params, extraction.Param{
					Name:     ast.ValueOfChildByKind(p, "identifier"),
					Type:     ast.ValueOfChildByKind(p, javaTypeKinds...),
					Required: true,
				})
			}
		}
	}

	return extraction.FunctionSynopsis{
		Params:  params,
		Returns: extraction.Bool(ast.FindChildByKind(method, "void_type") == nil),
	}
}

func (Java) class(tree *ast.Node) extraction.Synopsis {
	if ast.NodeByPath(tree, javaClass) == nil {
		return nil
	}
	return extraction.ClassSynopsis{}
}
