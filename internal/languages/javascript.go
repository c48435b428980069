package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var ecmaWrappers = []string{"program", "export_statement"}

var (
	ecmaArrowFunction = ast.PathSpec{
		Path:     []string{"lexical_declaration", "variable_declarator", "arrow_function"},
		Excludes: ecmaWrappers,
	}
	ecmaVarFunction = ast.PathSpec{
		Path:     []string{"lexical_declaration", "variable_declarator", "function"},
		Excludes: ecmaWrappers,
	}
	ecmaFunctionDeclaration = ast.PathSpec{
		Path:     []string{"function_declaration"},
		Excludes: ecmaWrappers,
	}
	ecmaMethod = ast.PathSpec{
		Path:     []string{"method_definition"},
		Excludes: []string{"program"},
	}
	ecmaClass = ast.PathSpec{
		Path:     []string{"class_declaration"},
		Excludes: ecmaWrappers,
	}
)

// ecmaCodeKinds are the constructs a cursor can land on in JS and TS.
var ecmaCodeKinds = []string{
	"lexical_declaration", "variable_declarator", "arrow_function",
	"function_declaration", "method_definition", "type_alias_declaration", "class_declaration",
}

// ecmaLiterals are the default-value kinds recognized in parameter lists.
var ecmaLiterals = []string{"true", "false", "null", "number", "string"}

// ecmaFunctionNode locates a free function in any of its declaration forms.
func ecmaFunctionNode(tree *ast.Node) *ast.Node {
	return ast.NodeByPathOptions(tree, ecmaArrowFunction, ecmaVarFunction, ecmaFunctionDeclaration)
}

// ecmaMethodNode relocates the selection in the file and matches a method there.
func ecmaMethodNode(selection, file *ast.Node) *ast.Node {
	found := relocate(selection, file)
	if found == nil {
		return nil
	}
	return ast.NodeByPath(found, ecmaMethod)
}

// ecmaReturns checks fn's own body for a return statement.
func ecmaReturns(fn *ast.Node) *bool {
	return extraction.Bool(scopedReturns(fn, "return_statement", "arrow_function", "function_declaration"))
}

// JavaScript extracts synopses from the tree-sitter-javascript grammar.
type JavaScript struct{}

func (j JavaScript) Synopsis(selection, file *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(
		j.function(ecmaFunctionNode(selection)),
		j.function(ecmaMethodNode(selection, file)),
		j.class(selection),
	)
}

func (JavaScript) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, ecmaCodeKinds)
}

func (j JavaScript) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(j, root, indicators, noOptions)
}

func (JavaScript) function(fn *ast.Node) extraction.Synopsis {
	if fn == nil {
		return nil
	}

	var params []extraction.Param
	if formal := ast.FindChildByKind(fn, "formal_parameters"); formal != nil {
		params = []extraction.Param{}
		for _, p := range ast.FindAllChildrenByKind(formal, "identifier", "assignment_pattern", "rest_pattern") {
			switch p.Kind {
			case "identifier":
				params = append(params, extraction.Param{Name: p.Value, Required: true})
			case "assignment_pattern":
				params = append(params, extraction.Param{
					Name:         ast.ValueOfChildByKind(p, "identifier"),
					DefaultValue: ast.StripQuotes(ast.ValueOfChildByKind(p, ecmaLiterals...)),
				})
			case "rest_pattern":
				params = append(params, extraction.Param{
					Name:     ast.ValueOfChildByKind(p, "identifier"),
					Required: true,
				})
			}
		}
	}

	return extraction.FunctionSynopsis{Params: params, Returns: ecmaReturns(fn)}
}

func (JavaScript) class(tree *ast.Node) extraction.Synopsis {
	cls := ast.NodeByPath(tree, ecmaClass)
	if cls == nil {
		return nil
	}
	heritage := ast.FindChildByKind(cls, "class_heritage")
	return extraction.ClassSynopsis{Extends: ast.ValueOfChildByKind(heritage, "identifier")}
}
