// Package parsers turns source text into ast trees using tree-sitter grammars.
package parsers

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mvp-joe/synopsis/internal/ast"
)

// ErrUnsupportedLanguage is returned for language ids without a grammar.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Parser parses source text for every registered language.
// It holds only immutable grammar handles and is safe for concurrent use.
type Parser struct {
	languages map[string]*sitter.Language
}

// New creates a parser with all built-in grammars registered.
func New() *Parser {
	p := &Parser{languages: make(map[string]*sitter.Language)}
	p.registerBuiltinLanguages()
	return p
}

// Supports reports whether languageID has a grammar.
func (p *Parser) Supports(languageID string) bool {
	_, ok := p.languages[languageID]
	return ok
}

// Languages returns the registered language ids, sorted.
func (p *Parser) Languages() []string {
	ids := make([]string, 0, len(p.languages))
	for id := range p.languages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Parse parses source with the grammar registered for languageID and
// converts the result into an owned ast tree.
func (p *Parser) Parse(ctx context.Context, source, languageID string) (*ast.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lang, ok := p.languages[languageID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, languageID)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set %s grammar: %w", languageID, err)
	}

	src := []byte(source)
	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s source", languageID)
	}
	defer tree.Close()

	root := tree.RootNode()
	return &ast.Program{
		Root:     convert(root, src),
		HasError: root.HasError(),
	}, nil
}

// convert copies a tree-sitter node and its descendants, anonymous tokens
// included, so the result outlives the tree.
func convert(node *sitter.Node, source []byte) *ast.Node {
	start, end := int(node.StartByte()), int(node.EndByte())
	out := &ast.Node{
		Kind:      node.Kind(),
		Value:     string(source[start:end]),
		Start:     start,
		End:       end,
		IsError:   node.IsError(),
		Anonymous: !node.IsNamed(),
	}

	count := int(node.ChildCount())
	if count == 0 {
		return out
	}
	out.Children = make([]*ast.Node, 0, count)
	for i := 0; i < count; i++ {
		child := node.Child(uint(i))
		if child == nil {
			continue
		}
		out.Children = append(out.Children, convert(child, source))
	}
	return out
}
