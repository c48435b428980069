package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var (
	goFunction = ast.PathSpec{
		Path:     []string{"function_declaration"},
		Excludes: []string{"source_file"},
	}
	goMethod = ast.PathSpec{
		Path:     []string{"method_declaration"},
		Excludes: []string{"source_file"},
	}
	goTypedef = ast.PathSpec{
		Path:     []string{"type_declaration"},
		Excludes: []string{"source_file"},
	}
)

var goTypeKinds = []string{"type_identifier", "slice_type"}

// Go extracts synopses from the tree-sitter-go grammar. A function reports a
// return only when its result is a single named or slice type.
type Go struct{}

func (g Go) Synopsis(selection, _ *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(g.function(selection), g.typedef(selection))
}

func (Go) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, []string{"function_declaration", "method_declaration", "type_declaration"})
}

func (g Go) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(g, root, indicators, noOptions)
}

func (Go) function(tree *ast.Node) extraction.Synopsis {
	var list *ast.Node
	fn := ast.NodeByPath(tree, goFunction)
	if fn != nil {
		list = ast.FindChildByKind(fn, "parameter_list")
	} else if fn = ast.NodeByPath(tree, goMethod); fn != nil {
		// The first parameter_list of a method is its receiver.
		list = ast.FindChildAfterByKind(fn, "field_identifier")
		if list != nil && list.Kind != "parameter_list" {
			list = nil
		}
	}
	if fn == nil {
		return nil
	}

	params := []extraction.Param{}
	for _, decl := range ast.FindAllChildrenByKind(list, "parameter_declaration") {
		typ := ast.ValueOfChildByKind(decl, goTypeKinds...)
		for _, ident := range ast.FindAllChildrenByKind(decl, "identifier") {
			params = append(params, extraction.Param{Name: ident.Value, Type: typ, Required: true})
		}
	}

	returnsType := ast.ValueOfChildByKind(fn, goTypeKinds...)
	return extraction.FunctionSynopsis{
		Params:      params,
		Returns:     extraction.Bool(returnsType != ""),
		ReturnsType: returnsType,
	}
}

func (Go) typedef(tree *ast.Node) extraction.Synopsis {
	decl := ast.NodeByPath(tree, goTypedef)
	if decl == nil {
		return nil
	}

	if st := ast.FirstNodeByKind(decl, "struct_type"); st != nil {
		fields := ast.FirstNodeByKind(st, "field_declaration_list")
		if fields == nil {
			return extraction.TypedefSynopsis{}
		}
		return extraction.TypedefSynopsis{Properties: goMembers(fields, "field_declaration")}
	}

	if iface := ast.FirstNodeByKind(decl, "interface_type"); iface != nil {
		// Older grammars group methods in a method_spec_list, newer ones list
		// method_elem nodes directly.
		if methods := ast.FirstNodeByKind(iface, "method_spec_list"); methods != nil {
			return extraction.TypedefSynopsis{Properties: goMembers(methods, "method_spec")}
		}
		if len(ast.FindAllChildrenByKind(iface, "method_spec", "method_elem")) == 0 {
			return extraction.TypedefSynopsis{}
		}
		return extraction.TypedefSynopsis{Properties: goMembers(iface, "method_spec", "method_elem")}
	}

	return extraction.TypedefSynopsis{}
}

func goMembers(list *ast.Node, kinds ...string) []extraction.Property {
	properties := []extraction.Property{}
	for _, member := range ast.FindAllChildrenByKind(list, kinds...) {
		properties = append(properties, extraction.Property{
			Name: ast.ValueOfChildByKind(member, "field_identifier"),
			Type: ast.ValueOfChildByKind(member, goTypeKinds...),
		})
	}
	return properties
}
