package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/coverage"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var (
	kotlinFunction = ast.PathSpec{
		Path:     []string{"function_declaration"},
		Excludes: []string{"source_file", "infix_expression", "prefix_expression"},
	}
	kotlinClass = ast.PathSpec{
		Path:     []string{"class_declaration"},
		Excludes: []string{"source_file"},
	}
	kotlinDataClass = ast.PathSpec{
		Path:     []string{"class_declaration", "modifiers", "class_modifier", "data"},
		Excludes: []string{"source_file"},
	}
)

var (
	kotlinIdentifierKinds = []string{"simple_identifier", "identifier"}
	kotlinTypeKinds       = []string{"user_type", "nullable_type"}
)

var kotlinCoverage = coverage.Options{CommentKinds: []string{"line_comment", "multiline_comment"}}

// Kotlin extracts synopses from the tree-sitter-kotlin grammar.
// A data class is reported as a typedef of its constructor properties.
type Kotlin struct{}

func (k Kotlin) Synopsis(selection, _ *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(
		k.function(selection),
		k.typedef(selection),
		k.class(selection),
	)
}

func (Kotlin) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, []string{"function_declaration", "class_declaration"})
}

func (k Kotlin) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(k, root, indicators, kotlinCoverage)
}

func (Kotlin) function(tree *ast.Node) extraction.Synopsis {
	fn := ast.NodeByPath(tree, kotlinFunction)
	if fn == nil {
		return nil
	}

	holder := ast.FindChildByKind(fn, "function_value_parameters")
	if holder == nil {
		holder = fn
	}
	params := []extraction.Param{}
	for _, p := range ast.FindAllChildrenByKind(holder, "parameter") {
		params = append(params, extraction.Param{
			Name:     ast.ValueOfChildByKind(p, kotlinIdentifierKinds...),
			Type:     ast.ValueOfChildByKind(p, kotlinTypeKinds...),
			Required: ast.FindChildByKind(p, "nullable_type") == nil,
		})
	}

	return extraction.FunctionSynopsis{
		Params:  params,
		Returns: extraction.Bool(scopedReturns(fn, "return", "function_declaration")),
	}
}

func (Kotlin) typedef(tree *ast.Node) extraction.Synopsis {
	if ast.NodeByPath(tree, kotlinDataClass) == nil {
		return nil
	}
	cls := ast.NodeByPath(tree, kotlinClass)
	ctor := ast.FindChildByKind(cls, "primary_constructor")
	if ctor == nil {
		return extraction.TypedefSynopsis{}
	}

	holder := ast.FindChildByKind(ctor, "class_parameters")
	if holder == nil {
		holder = ctor
	}
	properties := []extraction.Property{}
	for _, p := range ast.FindAllChildrenByKind(holder, "class_parameter") {
		properties = append(properties, extraction.Property{
			Name: ast.ValueOfChildByKind(p, kotlinIdentifierKinds...),
			Type: ast.ValueOfChildByKind(p, kotlinTypeKinds...),
		})
	}
	return extraction.TypedefSynopsis{Properties: properties}
}

func (Kotlin) class(tree *ast.Node) extraction.Synopsis {
	cls := ast.NodeByPath(tree, kotlinClass)
	if cls == nil {
		return nil
	}

	spec := ast.FindChildByKind(cls, "delegation_specifier")
	if spec == nil {
		spec = ast.FindChildByKind(ast.FindChildByKind(cls, "delegation_specifiers"), "delegation_specifier")
	}
	if ctor := ast.FindChildByKind(spec, "constructor_invocation"); ctor != nil {
		return extraction.ClassSynopsis{Extends: ast.ValueOfChildByKind(ctor, "user_type")}
	}
	return extraction.ClassSynopsis{Extends: valueOrEmpty(spec)}
}
