package coverage

import (
	"testing"

	"github.com/mvp-joe/synopsis/internal/ast"
	. "github.com/mvp-joe/synopsis/internal/ast/asttest"
	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/stretchr/testify/assert"
)

// Test Plan for the coverage accumulator:
// - A comment ending on the line directly above a construct documents it
// - A blank line between comment and construct breaks adjacency
// - Non-comment predecessors never document
// - Docstring mode documents constructs whose text holds a triple quote
// - Class bodies are entered recursively and their functions counted as methods
// - Classes without a known body kind are entered through the class node itself
// - Top-level totals follow the requested indicators, the breakdown never does
// - Extra comment and body kinds extend the defaults
// - Anonymous tokens are skipped even when their kind names a construct
// - A comment attached to the class just before its body documents the first member

type kindClassifier map[string]extraction.Synopsis

func (k kindClassifier) Synopsis(node, _ *ast.Node) extraction.Synopsis {
	return k[node.Kind]
}

var classifier = kindClassifier{
	"function_declaration": extraction.FunctionSynopsis{},
	"method_definition":    extraction.FunctionSynopsis{},
	"class_declaration":    extraction.ClassSynopsis{},
	"type_alias":           extraction.TypedefSynopsis{},
}

func TestAccumulate_FunctionsWithAdjacentComment(t *testing.T) {
	t.Parallel()

	src := "function a() {\n}\n/**\n * doc\n */\nfunction b() {\n}\n"
	root := Build(src, N("program", "",
		N("function_declaration", "function a() {\n}"),
		N("comment", "/**\n * doc\n */"),
		N("function_declaration", "function b() {\n}"),
	))

	got := Accumulate(root, classifier, []extraction.Indicator{extraction.Functions}, Options{})

	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, extraction.Count{Current: 1, Total: 2}, got.Breakdown[extraction.Functions])
	assert.Len(t, got.Breakdown, 4)
}

func TestAccumulate_AdjacencyRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		prev Spec
		want int
	}{
		{"blank line breaks adjacency", "// doc\n\nfunction f() {}", N("comment", "// doc"), 0},
		{"same line comment is not above", "/* doc */ function f() {}", N("comment", "/* doc */"), 0},
		{"statement before", "x();\nfunction f() {}", N("expression_statement", "x();"), 0},
		{"line comment directly above", "// doc\nfunction f() {}", N("comment", "// doc"), 1},
		{"comment with trailing newline", "// doc\nfunction f() {}", N("comment", "// doc\n"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := Build(tt.src, N("program", "", tt.prev, N("function_declaration", "function f() {}")))
			got := Accumulate(root, classifier, []extraction.Indicator{extraction.Functions}, Options{})
			assert.Equal(t, tt.want, got.Current)
			assert.Equal(t, 1, got.Total)
		})
	}
}

func TestAccumulate_Docstrings(t *testing.T) {
	t.Parallel()

	src := "class A:\n    \"\"\"doc\"\"\"\n    x = 1\nclass B:\n    y = 2\n"
	root := Build(src, N("module", "",
		N("class_declaration", "class A:\n    \"\"\"doc\"\"\"\n    x = 1",
			N("block", "\"\"\"doc\"\"\"\n    x = 1",
				N("expression_statement", "\"\"\"doc\"\"\""),
				N("expression_statement", "x = 1"),
			),
		),
		N("class_declaration", "class B:\n    y = 2",
			N("block", "y = 2", N("expression_statement", "y = 2")),
		),
	))

	classes := []extraction.Indicator{extraction.Classes}

	got := Accumulate(root, classifier, classes, Options{Docstrings: true})
	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 2, got.Total)

	got = Accumulate(root, classifier, classes, Options{})
	assert.Equal(t, 0, got.Current)
	assert.Equal(t, 2, got.Total)

	got = Accumulate(root, classifier, []extraction.Indicator{extraction.Functions}, Options{Docstrings: true})
	assert.Equal(t, 0, got.Current)
	assert.Equal(t, 0, got.Total)
}

func TestAccumulate_NestedClasses(t *testing.T) {
	t.Parallel()

	src := "// doc\nclass A {\n  // m\n  m() {}\n  n() {}\n}\nclass B {\n  o() {}\n}\n"
	root := Build(src, N("program", "",
		N("comment", "// doc"),
		N("class_declaration", "class A {\n  // m\n  m() {}\n  n() {}\n}",
			T("class"), N("identifier", "A"),
			N("class_body", "{\n  // m\n  m() {}\n  n() {}\n}",
				T("{"),
				N("comment", "// m"),
				N("method_definition", "m() {}"),
				N("method_definition", "n() {}"),
				T("}"),
			),
		),
		N("class_declaration", "class B {\n  o() {}\n}",
			T("class"), N("identifier", "B"),
			N("class_body", "{\n  o() {}\n}", T("{"), N("method_definition", "o() {}"), T("}")),
		),
	))

	t.Run("classes only", func(t *testing.T) {
		t.Parallel()
		got := Accumulate(root, classifier, []extraction.Indicator{extraction.Classes}, Options{})
		assert.Equal(t, 1, got.Current)
		assert.Equal(t, 2, got.Total)
		assert.Equal(t, extraction.Count{Current: 1, Total: 3}, got.Breakdown[extraction.Methods])
		assert.Equal(t, extraction.Count{}, got.Breakdown[extraction.Functions])
	})

	t.Run("methods only", func(t *testing.T) {
		t.Parallel()
		got := Accumulate(root, classifier, []extraction.Indicator{"methods"}, Options{})
		assert.Equal(t, 1, got.Current)
		assert.Equal(t, 3, got.Total)
		assert.Equal(t, extraction.Count{Current: 1, Total: 2}, got.Breakdown[extraction.Classes])
	})

	t.Run("everything", func(t *testing.T) {
		t.Parallel()
		got := Accumulate(root, classifier, extraction.AllIndicators, Options{})
		assert.Equal(t, 2, got.Current)
		assert.Equal(t, 5, got.Total)
		assert.LessOrEqual(t, got.Current, got.Total)
	})
}

func TestAccumulate_BodyFallbackAndExtraKinds(t *testing.T) {
	t.Parallel()

	src := "class A\n  # doc\n  def m\n  end\nend\n"
	bodyless := Build(src, N("program", "",
		N("class_declaration", "class A\n  # doc\n  def m\n  end\nend",
			T("class"), N("constant", "A"),
			N("line_comment", "# doc"),
			N("method_definition", "def m\n  end"),
			T("end"),
		),
	))
	methods := []extraction.Indicator{extraction.Methods}

	got := Accumulate(bodyless, classifier, methods, Options{})
	assert.Equal(t, 0, got.Current)
	assert.Equal(t, 1, got.Total)

	got = Accumulate(bodyless, classifier, methods, Options{CommentKinds: []string{"line_comment"}})
	assert.Equal(t, 1, got.Current)

	wrapped := Build(src, N("program", "",
		N("class_declaration", "class A\n  # doc\n  def m\n  end\nend",
			T("class"), N("constant", "A"),
			N("body_statement", "# doc\n  def m\n  end",
				N("comment", "# doc"),
				N("method_definition", "def m\n  end"),
			),
			T("end"),
		),
	))

	got = Accumulate(wrapped, classifier, methods, Options{})
	assert.Equal(t, 0, got.Total)

	got = Accumulate(wrapped, classifier, methods, Options{BodyKinds: []string{"body_statement"}})
	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 1, got.Total)
}

func TestAccumulate_NilRoot(t *testing.T) {
	t.Parallel()

	got := Accumulate(nil, classifier, extraction.AllIndicators, Options{})
	assert.Equal(t, 0, got.Total)
	assert.Len(t, got.Breakdown, 4)
}

func TestAccumulate_SkipsAnonymousTokens(t *testing.T) {
	t.Parallel()

	rubyLike := kindClassifier{"class": extraction.ClassSynopsis{}}
	src := "# A\nclass A\nend\nclass B\nend\n"
	root := Build(src, N("program", "",
		N("comment", "# A"),
		N("class", "class A\nend", T("class"), N("constant", "A"), T("end")),
		N("class", "class B\nend", T("class"), N("constant", "B"), T("end")),
	))

	got := Accumulate(root, rubyLike, []extraction.Indicator{extraction.Classes}, Options{})
	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 2, got.Total)
}

func TestAccumulate_CommentBeforeBody(t *testing.T) {
	t.Parallel()

	src := "class Dog\n  # Barks.\n  def bark\n  end\n\n  def sit\n  end\nend"
	root := Build(src, N("program", "",
		N("class_declaration", src,
			T("class"), N("constant", "Dog"),
			N("comment", "# Barks."),
			N("body_statement", "def bark\n  end\n\n  def sit\n  end",
				N("method_definition", "def bark\n  end"),
				N("method_definition", "def sit\n  end"),
			),
			T("end"),
		),
	))

	got := Accumulate(root, classifier, []extraction.Indicator{extraction.Methods}, Options{BodyKinds: []string{"body_statement"}})
	assert.Equal(t, extraction.Count{Current: 1, Total: 2}, got.Breakdown[extraction.Methods])
	assert.Equal(t, 1, got.Current)
}
