package languages

import (
	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

// The Dart grammar places a top-level function's signature and body side by
// side under the program rather than in a common parent.
var (
	dartSignature = ast.PathSpec{
		Path:     []string{"function_signature"},
		Excludes: []string{"program"},
	}
	dartBody = ast.PathSpec{
		Path:     []string{"function_body"},
		Excludes: []string{"program"},
	}
	dartClass = ast.PathSpec{
		Path:     []string{"class_definition"},
		Excludes: []string{"program"},
	}
)

// Dart extracts synopses from the tree-sitter-dart grammar. It supports
// neither cursor lookup nor coverage.
type Dart struct{}

func (d Dart) Synopsis(selection, _ *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(d.function(selection), d.class(selection))
}

func (Dart) Code(*ast.Node, int) (string, bool) {
	return "", false
}

func (Dart) Progress(*ast.Node, []extraction.Indicator) *extraction.Progress {
	return nil
}

func (Dart) function(tree *ast.Node) extraction.Synopsis {
	signature := ast.NodeByPath(tree, dartSignature)
	body := ast.NodeByPath(tree, dartBody)
	if signature == nil || body == nil {
		return nil
	}

	params := []extraction.Param{}
	for _, p := range ast.FindAllChildrenByKind(ast.FindChildByKind(signature, "formal_parameter_list"),
		"formal_parameter", "optional_formal_parameters") {
		if p.Kind == "formal_parameter" {
			params = append(params, dartParam(p, "", true))
			continue
		}
		for i, inner := range p.Children {
			if inner.Kind != "formal_parameter" {
				continue
			}
			def := ""
			if i+2 < len(p.Children) && p.Children[i+1].Kind == "=" {
				def = ast.StripQuotes(p.Children[i+2].Value)
			}
			params = append(params, dartParam(inner, def, false))
		}
	}

	return extraction.FunctionSynopsis{
		Params:  params,
		Returns: extraction.Bool(scopedReturns(body, "return_statement", "function_body")),
	}
}

func dartParam(p *ast.Node, def string, required bool) extraction.Param {
	typ := ast.ValueOfChildByKind(p, "type_identifier", "function_type")
	typ += ast.ValueOfChildByKind(p, "type_arguments")
	return extraction.Param{
		Name:         ast.ValueOfChildByKind(p, "identifier"),
		Type:         typ,
		Required:     required,
		DefaultValue: def,
	}
}

func (Dart) class(tree *ast.Node) extraction.Synopsis {
	cls := ast.NodeByPath(tree, dartClass)
	if cls == nil {
		return nil
	}
	super := ast.FindChildByKind(cls, "superclass")
	return extraction.ClassSynopsis{Extends: ast.ValueOfChildByKind(super, "type_identifier")}
}
