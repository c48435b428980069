package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/coverage"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var cppClass = ast.PathSpec{
	Path:     []string{"class_specifier"},
	Excludes: []string{"translation_unit"},
}

var (
	cppTypeKinds    = append(append([]string{}, cTypeKinds...), "template_type")
	cppDefaultKinds = []string{"string_literal", "number_literal", "true", "false"}
)

var cppCoverage = coverage.Options{BodyKinds: []string{"field_declaration_list"}}

// CPP extracts synopses from the tree-sitter-cpp grammar. Methods are
// reported as functions and typedefs follow the C rules.
type CPP struct{}

func (c CPP) Synopsis(selection, _ *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(c.function(selection), c.class(selection), cTypedef(selection))
}

func (CPP) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, cCodeKinds)
}

func (c CPP) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(c, root, indicators, cppCoverage)
}

func (CPP) function(tree *ast.Node) extraction.Synopsis {
	fn := ast.NodeByPath(tree, cFunction)
	if fn == nil {
		return nil
	}

	var params []extraction.Param
	if list := ast.FindChildByKind(ast.NodeByPath(fn, cDeclarator), "parameter_list"); list != nil {
		params = []extraction.Param{}
		for _, p := range ast.FindAllChildrenByKind(list, "parameter_declaration", "optional_parameter_declaration") {
			if p.Value == "void" {
				continue
			}
			typeHolder := p
			if q := ast.FindChildByKind(p, "qualified_identifier"); q != nil {
				typeHolder = q
			}
			param := extraction.Param{
				Name:     valueOrEmpty(ast.FirstNodeByKind(p, "identifier")),
				Type:     ast.ValueOfChildByKind(typeHolder, cppTypeKinds...),
				Required: true,
			}
			if p.Kind == "optional_parameter_declaration" {
				param.DefaultValue = ast.StripQuotes(ast.ValueOfChildByKind(p, cppDefaultKinds...))
				param.Required = false
			}
			params = append(params, param)
		}
	}

	return extraction.FunctionSynopsis{
		Params:  params,
		Returns: trueOrAbsent(ast.KindExistsInTree(fn, "return_statement", nil)),
	}
}

func (CPP) class(tree *ast.Node) extraction.Synopsis {
	cls := ast.NodeByPath(tree, cppClass)
	if cls == nil {
		return nil
	}
	base := ast.FindChildByKind(cls, "base_class_clause")
	return extraction.ClassSynopsis{Extends: ast.ValueOfChildByKind(base, "type_identifier")}
}
