package languages

import (
	"fmt"

	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var tsTypedef = ast.PathSpec{
	Path:     []string{"type_alias_declaration"},
	Excludes: ecmaWrappers,
}

var tsTypeKinds = []string{"predefined_type", "type_identifier", "union_type", "array_type"}

// tsAnnotatedType reads the type from n's type_annotation child.
func tsAnnotatedType(n *ast.Node) string {
	annotation := ast.FindChildByKind(n, "type_annotation")
	return ast.ValueOfChildByKind(annotation, tsTypeKinds...)
}

// TypeScript extracts synopses from the TypeScript and TSX grammars.
type TypeScript struct{}

func (ts TypeScript) Synopsis(selection, file *ast.Node) extraction.Synopsis {
	return extraction.FirstOf(
		ts.function(ecmaFunctionNode(selection)),
		ts.function(ecmaMethodNode(selection, file)),
		ts.typedef(selection),
		ts.class(selection),
	)
}

func (TypeScript) Code(file *ast.Node, offset int) (string, bool) {
	return codeWithin(file, offset, ecmaCodeKinds)
}

func (ts TypeScript) Progress(root *ast.Node, indicators []extraction.Indicator) *extraction.Progress {
	return progressOf(ts, root, indicators, noOptions)
}

func (TypeScript) function(fn *ast.Node) extraction.Synopsis {
	if fn == nil {
		return nil
	}

	var params []extraction.Param
	if formal := ast.FindChildByKind(fn, "formal_parameters"); formal != nil {
		params = []extraction.Param{}
		for _, p := range ast.FindAllChildrenByKind(formal, "required_parameter", "optional_parameter") {
			declaredRequired := p.Kind == "required_parameter"

			if rest := ast.FindChildByKind(p, "rest_pattern"); rest != nil {
				params = append(params, extraction.Param{
					Name:     ast.ValueOfChildByKind(rest, "identifier"),
					Type:     tsAnnotatedType(p),
					Required: declaredRequired,
				})
				continue
			}

			literal := ast.FindChildByKind(p, ecmaLiterals...)
			params = append(params, extraction.Param{
				Name:         ast.ValueOfChildByKind(p, "identifier"),
				Type:         tsAnnotatedType(p),
				Required:     declaredRequired && literal == nil,
				DefaultValue: ast.StripQuotes(valueOrEmpty(literal)),
			})
		}
	}

	return extraction.FunctionSynopsis{Params: params, Returns: ecmaReturns(fn)}
}

func (TypeScript) typedef(tree *ast.Node) extraction.Synopsis {
	typedef := ast.NodeByPath(tree, tsTypedef)
	if typedef == nil {
		return nil
	}

	var properties []extraction.Property
	if object := ast.FindChildByKind(typedef, "object_type"); object != nil {
		properties = []extraction.Property{}
		for _, prop := range ast.FindAllChildrenByKind(object, "property_signature", "index_signature") {
			typ := tsAnnotatedType(prop)
			name := ast.ValueOfChildByKind(prop, "property_identifier")
			if prop.Kind == "index_signature" {
				name = fmt.Sprintf("[%s: %s]", ast.ValueOfChildByKind(prop, "identifier"), typ)
			}
			properties = append(properties, extraction.Property{Name: name, Type: typ})
		}
	}

	return extraction.TypedefSynopsis{Properties: properties}
}

func (TypeScript) class(tree *ast.Node) extraction.Synopsis {
	cls := ast.NodeByPath(tree, ecmaClass)
	if cls == nil {
		return nil
	}
	heritage := ast.FindChildByKind(cls, "class_heritage")
	clause := ast.FindChildByKind(heritage, "extends_clause", "implements_clause")
	return extraction.ClassSynopsis{Extends: ast.ValueOfChildByKind(clause, "identifier", "type_identifier")}
}
