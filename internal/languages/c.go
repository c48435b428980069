package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var (
	cFunction = ast.PathSpec{
		Path:     []string{"function_definition"},
		Excludes: []string{"translation_unit"},
	}
	cTypeDefinition = ast.PathSpec{
		Path:     []string{"type_definition"},
		Excludes: []string{"translation_unit"},
	}
	cStruct = ast.PathSpec{
		Path:     []string{"struct_specifier"},
		Excludes: []string{"translation_unit"},
	}
	// A function returning a pointer nests its declarator one level down.
	cDeclarator = ast.PathSpec{
		Path:     []string{"function_declarator"},
		Excludes: []string{"pointer_declarator"},
	}
)

var cTypeKinds = []string{"primitive_type", "type_identifier", "sized_type_specifier"}

var cCodeKinds = []string{"function_definition", "type_definition", "struct_specifier"}

// C extracts synopses from the tree-sitter-c grammar. C has no default
// arguments, so every parameter is required.
type C struct{}

func (c C) Synopsis(selection, _ *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(c.function(selection), cTypedef(selection))
}

func (C) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, cCodeKinds)
}

func (c C) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(c, root, indicators, noOptions)
}

func (C) function(tree *ast.Node) extraction.Synopsis {
	fn := ast.NodeByPath(tree, cFunction)
	if fn == nil {
		return nil
	}

	var params []extraction.Param
	if list := ast.FindChildByKind(ast.NodeByPath(fn, cDeclarator), "parameter_list"); list != nil {
		params = []extraction.Param{}
		for _, p := range ast.FindAllChildrenByKind(list, "parameter_declaration") {
			if p.Value == "void" {
				continue
			}
			params = append(params, extraction.Param{
				Name:     valueOrEmpty(ast.FirstNodeByKind(p, "identifier")),
				Type:     ast.ValueOfChildByKind(p, cTypeKinds...),
				Required: true,
			})
		}
	}

	return extraction.FunctionSynopsis{
		Params:  params,
		Returns: trueOrAbsent(ast.KindExistsInTree(fn, "return_statement", nil)),
	}
}

// cTypedef classifies a typedef or struct declaration. C++ shares it.
func cTypedef(tree *ast.Node) extraction.Synopsis {
	def := ast.NodeByPath(tree, cTypeDefinition)
	st := ast.NodeByPath(tree, cStruct)
	if def == nil && st == nil {
		return nil
	}
	if st == nil {
		st = ast.FindChildByKind(def, "struct_specifier")
	}

	properties := []extraction.Property{}
	for _, field := range ast.FindAllChildrenByKind(ast.FindChildByKind(st, "field_declaration_list"), "field_declaration") {
		properties = append(properties, extraction.Property{
			Name: valueOrEmpty(ast.FirstNodeByKind(field, "field_identifier")),
			Type: ast.ValueOfChildByKind(field, cTypeKinds...),
		})
	}
	return extraction.TypedefSynopsis{Properties: properties}
}
