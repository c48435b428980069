package languages

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

var registry = map[string]Extractor{
	"typescript":      TypeScript{},
	"typescriptreact": TypeScript{},
	"javascript":      JavaScript{},
	"javascriptreact": JavaScript{},
	"python":          Python{},
	"php":             PHP{},
	"java":            Java{},
	"kotlin":          Kotlin{},
	"c":               C{},
	"cpp":             CPP{},
	"csharp":          CSharp{},
	"dart":            Dart{},
	"ruby":            Ruby{},
	"rust":            Rust{},
	"go":              Go{},
}

// extensions maps file extensions to language ids.
var extensions = map[string]string{
	".ts":   "typescript",
	".tsx":  "typescriptreact",
	".js":   "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".jsx":  "javascriptreact",
	".py":   "python",
	".php":  "php",
	".java": "java",
	".kt":   "kotlin",
	".kts":  "kotlin",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cc":   "cpp",
	".hpp":  "cpp",
	".cs":   "csharp",
	".dart": "dart",
	".rb":   "ruby",
	".rs":   "rust",
	".go":   "go",
}

// For returns the extractor registered for languageID, or Unknown.
func For(languageID string) Extractor {
	if e, ok := registry[languageID]; ok {
		return e
	}
	return Unknown{}
}

// Supported reports whether languageID has a real extractor.
func Supported(languageID string) bool {
	_, ok := registry[languageID]
	return ok
}

// IDs returns every registered language id, sorted.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FromFileName resolves the language id of fileName by extension. An empty
// fileName keeps fallback; an unknown extension yields "".
func FromFileName(fileName, fallback string) string {
	if fileName == "" {
		return fallback
	}
	return extensions[strings.ToLower(filepath.Ext(fileName))]
}

// Unknown is the extractor for unsupported languages. It recognizes nothing.
type Unknown struct{}

func (Unknown) Synopsis(_, _ *ast.Node) extraction.Synopsis { return extraction.UnspecifiedSynopsis{} }

func (Unknown) Code(_ *ast.Node, _ int) (string, bool) { return "", false }

func (Unknown) Progress(_ *ast.Node, _ []extraction.Indicator) *extraction.Progress { return nil }
