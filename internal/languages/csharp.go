package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var (
	csharpFunction = ast.PathSpec{
		Path:     []string{"local_function_statement"},
		Excludes: []string{"compilation_unit", "global_statement"},
	}
	csharpClass = ast.PathSpec{
		Path:     []string{"class_declaration"},
		Excludes: []string{"compilation_unit"},
	}
)

var (
	csharpTypeKinds    = []string{"predefined_type", "array_type"}
	csharpDefaultKinds = []string{"string_literal", "integer_literal", "element_binding_expression", "boolean_literal"}
)

// CSharp extracts synopses from the tree-sitter-c-sharp grammar. Only
// top-level local functions are reported as functions.
type CSharp struct{}

func (c CSharp) Synopsis(selection, _ *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(c.function(selection), c.class(selection))
}

func (CSharp) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, []string{"local_function_statement"})
}

func (c CSharp) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(c, root, indicators, noOptions)
}

func (CSharp) function(tree *ast.Node) extraction.Synopsis {
	fn := ast.NodeByPath(tree, csharpFunction)
	if fn == nil {
		return nil
	}

	var params []extraction.Param
	if list := ast.FindChildByKind(fn, "parameter_list"); list != nil {
		params = []extraction.Param{}
		for _, p := range ast.FindAllChildrenByKind(list, "parameter") {
			if p.Value == "void" {
				continue
			}
			def, hasDefault := csharpDefault(p)
			params = append(params, extraction.Param{
				Name:         ast.ValueOfChildByKind(p, "identifier"),
				Type:         ast.ValueOfChildByKind(p, csharpTypeKinds...),
				Required:     !hasDefault,
				DefaultValue: def,
			})
		}
	}

	return extraction.FunctionSynopsis{
		Params:  params,
		Returns: trueOrAbsent(ast.KindExistsInTree(fn, "return_statement", nil)),
	}
}

// csharpDefault reads a parameter's default value. Older grammars wrap it in
// an equals_value_clause, newer ones place "=" and the value on the parameter.
func csharpDefault(param *ast.Node) (string, bool) {
	if clause := ast.FindChildByKind(param, "equals_value_clause"); clause != nil {
		return ast.StripQuotes(ast.ValueOfChildByKind(clause, csharpDefaultKinds...)), true
	}
	if ast.FindChildByKind(param, "=") == nil {
		return "", false
	}
	value := ast.FindChildAfterByKind(param, "=")
	if value == nil || !value.HasKind(csharpDefaultKinds...) {
		return "", true
	}
	return ast.StripQuotes(value.Value), true
}

func (CSharp) class(tree *ast.Node) extraction.Synopsis {
	cls := ast.NodeByPath(tree, csharpClass)
	if cls == nil {
		return nil
	}
	bases := ast.FindChildByKind(cls, "base_list")
	return extraction.ClassSynopsis{Extends: ast.ValueOfChildByKind(bases, "identifier")}
}
