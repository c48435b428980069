package parsers

import (
	"unsafe"

	dart "github.com/alexaandru/go-sitter-forest/dart"
	kotlin "github.com/tree-sitter-grammars/tree-sitter-kotlin/bindings/go"
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	golang "github.com/tree-sitter/tree-sitter-go/bindings/go"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// langPtr wraps a binding's Language() pointer.
func langPtr(p unsafe.Pointer) *sitter.Language {
	return sitter.NewLanguage(p)
}

// registerBuiltinLanguages adds every compiled-in grammar, keyed by the
// editor language ids callers send.
func (p *Parser) registerBuiltinLanguages() {
	p.addLang(langPtr(typescript.LanguageTypescript()), "typescript")
	p.addLang(langPtr(typescript.LanguageTSX()), "typescriptreact")
	p.addLang(langPtr(javascript.Language()), "javascript", "javascriptreact")
	p.addLang(langPtr(python.Language()), "python")
	p.addLang(langPtr(php.LanguagePHP()), "php")
	p.addLang(langPtr(java.Language()), "java")
	p.addLang(langPtr(kotlin.Language()), "kotlin")
	p.addLang(langPtr(c.Language()), "c")
	p.addLang(langPtr(cpp.Language()), "cpp")
	p.addLang(langPtr(csharp.Language()), "csharp")
	p.addLang(langPtr(dart.GetLanguage()), "dart")
	p.addLang(langPtr(ruby.Language()), "ruby")
	p.addLang(langPtr(rust.Language()), "rust")
	p.addLang(langPtr(golang.Language()), "go")
}

func (p *Parser) addLang(lang *sitter.Language, ids ...string) {
	for _, id := range ids {
		p.languages[id] = lang
	}
}
