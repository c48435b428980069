package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/coverage"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var (
	rustFunction = ast.PathSpec{
		Path:     []string{"function_item"},
		Excludes: []string{"source_file"},
	}
	rustStruct = ast.PathSpec{
		Path:     []string{"struct_item"},
		Excludes: []string{"source_file"},
	}
)

var rustTypeKinds = []string{
	"type_identifier", "primitive_type", "array_type", "reference_type", "generic_type",
}

var rustCoverage = coverage.Options{CommentKinds: []string{"line_comment"}}

// Rust extracts synopses from the tree-sitter-rust grammar. A function
// returns exactly when its signature names a result type.
type Rust struct{}

func (r Rust) Synopsis(selection, _ *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(r.function(selection), r.typedef(selection))
}

func (Rust) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, []string{"function_item", "struct_item"})
}

func (r Rust) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(r, root, indicators, rustCoverage)
}

func (Rust) function(tree *ast.Node) extraction.Synopsis {
	fn := ast.NodeByPath(tree, rustFunction)
	if fn == nil {
		return nil
	}

	var params []extraction.Param
	if parameters := ast.FindChildByKind(fn, "parameters"); parameters != nil {
		params = []extraction.Param{}
		for _, p := range ast.FindAllChildrenByKind(parameters, "parameter") {
			params = append(params, extraction.Param{
				Name:     ast.ValueOfChildByKind(p, "identifier"),
				Type:     ast.ValueOfChildByKind(p, rustTypeKinds...),
				Required: true,
			})
		}
	}

	returnsType := ast.ValueOfChildByKind(fn, rustTypeKinds...)
	return extraction.FunctionSynopsis{
		Params:      params,
		Returns:     extraction.Bool(returnsType != ""),
		ReturnsType: returnsType,
	}
}

func (Rust) typedef(tree *ast.Node) extraction.Synopsis {
	item := ast.NodeByPath(tree, rustStruct)
	if item == nil {
		return nil
	}
	fields := ast.FirstNodeByKind(item, "field_declaration_list")
	if fields == nil {
		return extraction.TypedefSynopsis{}
	}

	properties := []extraction.Property{}
	for _, field := range ast.FindAllChildrenByKind(fields, "field_declaration") {
		properties = append(properties, extraction.Property{
			Name: ast.ValueOfChildByKind(field, "field_identifier"),
			Type: ast.ValueOfChildByKind(field, rustTypeKinds...),
		})
	}
	return extraction.TypedefSynopsis{Properties: properties}
}
