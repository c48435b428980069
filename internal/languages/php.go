package languages

import (
	"strings"

	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var (
	phpFunction = ast.PathSpec{
		Path:     []string{"function_definition"},
		Excludes: []string{"program"},
	}
	phpClass = ast.PathSpec{
		Path:     []string{"class_declaration"},
		Excludes: []string{"program"},
	}
	phpMethod = ast.PathSpec{
		Path:     []string{"method_declaration"},
		Excludes: []string{"program"},
	}
)

// Older grammars wrap parameter and return types in a type_list; newer ones
// attach the type node directly.
var phpTypeKinds = []string{"named_type", "primitive_type", "optional_type", "union_type"}

const (
	phpOpenTag  = "<?php"
	phpCloseTag = "?>"
)

// PHP extracts synopses from the tree-sitter-php grammar.
type PHP struct{}

func (p PHP) Synopsis(selection, file *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(
		p.function(ast.NodeByPath(selection, phpFunction)),
		p.class(selection),
		p.function(p.method(selection, file)),
	)
}

func (PHP) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, []string{"function_definition", "method_declaration"})
}

func (p PHP) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(p, root, indicators, noOptions)
}

// method relocates the selection in the file. A selection wrapped in PHP tags
// for parsing is searched for without them.
func (PHP) method(selection, file *ast.Node) *ast.Node {
	if selection == nil {
		return nil
	}
	text := strings.TrimSpace(selection.Value)
	if strings.HasPrefix(text, phpOpenTag) {
		text = strings.TrimPrefix(text, phpOpenTag)
		text = strings.TrimSuffix(strings.TrimSpace(text), phpCloseTag)
	}
	found := ast.FirstNodeByValue(file, text)
	if found == nil {
		return nil
	}
	return ast.NodeByPath(found, phpMethod)
}

func (PHP) function(fn *ast.Node) extraction.Synopsis {
	if fn == nil {
		return nil
	}

	var params []extraction.Param
	if formal := ast.FindChildByKind(fn, "formal_parameters"); formal != nil {
		params = []extraction.Param{}
		for _, p := range ast.FindAllChildrenByKind(formal, "simple_parameter") {
			params = append(params, extraction.Param{
				Name:     ast.ValueOfChildByKind(ast.FindChildByKind(p, "variable_name"), "name"),
				Type:     phpParamType(p),
				Required: ast.FindChildByKind(p, "=") == nil,
			})
		}
	}

	return extraction.FunctionSynopsis{
		Params:      params,
		Returns:     trueOrAbsent(ast.KindExistsInTree(fn, "return_statement", nil)),
		ReturnsType: phpReturnType(fn),
	}
}

func (PHP) class(tree *ast.Node) extraction.Synopsis {
	if ast.NodeByPath(tree, phpClass) == nil {
		return nil
	}
	return extraction.ClassSynopsis{}
}

func phpParamType(param *ast.Node) string {
	container := ast.FindChildByKind(param, "type_list")
	if container == nil {
		container = param
	}
	for _, kind := range phpTypeKinds {
		if v := ast.ValueOfChildByKind(container, kind); v != "" {
			return v
		}
	}
	return ""
}

// phpReturnType reads the type following "formal_parameters :".
func phpReturnType(fn *ast.Node) string {
	after := ast.FindChildAfterByKind(fn, "formal_parameters")
	if after == nil || after.Kind != ":" {
		return ""
	}
	typ := ast.FindChildAfterByKind(fn, ":")
	if typ == nil || !typ.HasKind(append([]string{"type_list"}, phpTypeKinds...)...) {
		return ""
	}
	return typ.Value
}
