package docs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/docs"
	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/mvp-joe/synopsis/internal/logging"
	"github.com/mvp-joe/synopsis/internal/parsers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the docs service:
// - Synopses from real grammars match the known shapes for Go, PHP, C and C#
// - A selection is classified in the context of its file
// - Parse failures and panics collapse to an unspecified synopsis
// - Progress counts documented constructs per indicator for JS, Python, PHP and TS
// - Ruby classes are counted once, bodyless or not, and a comment above the
//   first method documents it
// - Classes and their nested members are counted from real Java, Kotlin, C++,
//   Ruby and JS trees
// - Repeated calls with the same input return the same synopsis
// - Languages without coverage report nil progress
// - PHP fragments are wrapped before parsing, tagged sources are left alone

func newService() *docs.Service {
	return docs.NewService(parsers.New(), logging.Discard())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<?php \necho 1;?>", docs.Format("php", "echo 1;"))
	assert.Equal(t, "<?php echo 1; ?>", docs.Format("php", "<?php echo 1; ?>"))
	assert.Equal(t, "echo 1;", docs.Format("ruby", "echo 1;"))
}

func TestGetSynopsis(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()

	t.Run("go function with result", func(t *testing.T) {
		t.Parallel()
		code := "func max(num1, num2 int) int {\n\tif num1 > num2 {\n\t\treturn num1\n\t}\n\treturn num2\n}"
		got := svc.GetSynopsis(ctx, code, "go", "")
		assert.Equal(t, extraction.FunctionSynopsis{
			Params: []extraction.Param{
				{Name: "num1", Type: "int", Required: true},
				{Name: "num2", Type: "int", Required: true},
			},
			Returns:     extraction.Bool(true),
			ReturnsType: "int",
		}, got)
	})

	t.Run("go struct", func(t *testing.T) {
		t.Parallel()
		code := "type Books struct {\n\ttitle string\n\tbook_id int\n}"
		got := svc.GetSynopsis(ctx, code, "go", code)
		assert.Equal(t, extraction.TypedefSynopsis{Properties: []extraction.Property{
			{Name: "title", Type: "string"},
			{Name: "book_id", Type: "int"},
		}}, got)
	})

	t.Run("php return type", func(t *testing.T) {
		t.Parallel()
		code := "function sha256(string $input): string {\n  return hash(\"sha256\", $input, false);\n}"
		got := svc.GetSynopsis(ctx, code, "php", code)
		assert.Equal(t, extraction.FunctionSynopsis{
			Params:      []extraction.Param{{Name: "input", Type: "string", Required: true}},
			Returns:     extraction.Bool(true),
			ReturnsType: "string",
		}, got)
	})

	t.Run("c void main", func(t *testing.T) {
		t.Parallel()
		got := svc.GetSynopsis(ctx, "void main() {\n  printf(\"hi\");\n}", "c", "")
		fn, ok := got.(extraction.FunctionSynopsis)
		require.True(t, ok, "got %#v", got)
		assert.NotNil(t, fn.Params)
		assert.Empty(t, fn.Params)
		assert.Nil(t, fn.Returns)
	})

	t.Run("csharp defaults", func(t *testing.T) {
		t.Parallel()
		code := "static void scholar(string fname, bool age = true, string branch = \"Computer science\")\n{\n    return true;\n}"
		got := svc.GetSynopsis(ctx, code, "csharp", code)
		assert.Equal(t, extraction.FunctionSynopsis{
			Params: []extraction.Param{
				{Name: "fname", Type: "string", Required: true},
				{Name: "age", Type: "bool", DefaultValue: "true"},
				{Name: "branch", Type: "string", DefaultValue: "Computer science"},
			},
			Returns: extraction.Bool(true),
		}, got)
	})

	t.Run("javascript method in file", func(t *testing.T) {
		t.Parallel()
		file := "class Greeter extends Base {\n  greet(name) {\n    return name;\n  }\n}"
		selection := "greet(name) {\n    return name;\n  }"
		got := svc.GetSynopsis(ctx, selection, "javascript", file)
		assert.Equal(t, extraction.FunctionSynopsis{
			Params:  []extraction.Param{{Name: "name", Required: true}},
			Returns: extraction.Bool(true),
		}, got)

		assert.Equal(t, extraction.ClassSynopsis{Extends: "Base"}, svc.GetSynopsis(ctx, file, "javascript", file))
	})

	t.Run("unsupported language", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, extraction.UnspecifiedSynopsis{}, svc.GetSynopsis(ctx, "PROCEDURE DIVISION.", "cobol", ""))
	})

	t.Run("plain statement", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, extraction.UnspecifiedSynopsis{}, svc.GetSynopsis(ctx, "x = 1", "python", ""))
	})
}

type panickingParser struct{}

func (panickingParser) Parse(context.Context, string, string) (*ast.Program, error) {
	panic("grammar exploded")
}

type failingParser struct{}

func (failingParser) Parse(context.Context, string, string) (*ast.Program, error) {
	return nil, errors.New("boom")
}

func TestGetSynopsis_Degrades(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, extraction.UnspecifiedSynopsis{},
		docs.NewService(panickingParser{}, logging.Discard()).GetSynopsis(ctx, "def f(): pass", "python", ""))
	assert.Equal(t, extraction.UnspecifiedSynopsis{},
		docs.NewService(failingParser{}, nil).GetSynopsis(ctx, "def f(): pass", "python", ""))
}

func TestGetProgress(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()
	functions := []extraction.Indicator{extraction.Functions}
	classes := []extraction.Indicator{extraction.Classes}

	t.Run("javascript functions", func(t *testing.T) {
		t.Parallel()
		file := "const test = () => {\n  return 1;\n}\n/**\n * this is a test function\n */\nfunction test2() {\n  return 2;\n}\n"
		progress, err := svc.GetProgress(ctx, file, "javascript", functions)
		require.NoError(t, err)
		require.NotNil(t, progress)
		assert.Equal(t, 1, progress.Current)
		assert.Equal(t, 2, progress.Total)
		assert.Equal(t, extraction.Count{Current: 1, Total: 2}, progress.Breakdown[extraction.Functions])
	})

	t.Run("javascript undocumented", func(t *testing.T) {
		t.Parallel()
		file := "const test = () => {\n  return 1;\n}\nfunction test2() {\n  return 2;\n}\nconsole.log(\"Hello world\")"
		progress, err := svc.GetProgress(ctx, file, "javascript", functions)
		require.NoError(t, err)
		assert.Equal(t, 0, progress.Current)
		assert.Equal(t, 2, progress.Total)
	})

	t.Run("python docstring classes", func(t *testing.T) {
		t.Parallel()
		file := "class MyClass:\n    \"\"\"A simple example class\"\"\"\n    i = 12345\n\n    def f(self):\n        return 'hello world'\n\nclass MyOtherClass:\n  i = 20\n\n  def hello(msg):\n      return msg"
		progress, err := svc.GetProgress(ctx, file, "python", classes)
		require.NoError(t, err)
		assert.Equal(t, 1, progress.Current)
		assert.Equal(t, 2, progress.Total)
	})

	t.Run("python methods are not functions", func(t *testing.T) {
		t.Parallel()
		file := "class MyClass:\n    \"\"\"A simple example class\"\"\"\n    i = 12345\n\n    def f(self):\n        return 'hello world'"
		progress, err := svc.GetProgress(ctx, file, "python", functions)
		require.NoError(t, err)
		assert.Equal(t, 0, progress.Current)
		assert.Equal(t, 0, progress.Total)
	})

	t.Run("php documented method", func(t *testing.T) {
		t.Parallel()
		file := "<?php\nclass POP3\n{\n  /**\n   * Print the string 'Hello, World!' to the screen\n   */\n  public function helloWorld()\n  {\n    echo 'Hello, World!';\n  }\n}\n?>"
		progress, err := svc.GetProgress(ctx, file, "php", extraction.AllIndicators)
		require.NoError(t, err)
		assert.Equal(t, 1, progress.Current)
		assert.Equal(t, 2, progress.Total)
		assert.Equal(t, extraction.Count{Current: 1, Total: 1}, progress.Breakdown[extraction.Methods])
	})

	t.Run("typescript all indicators", func(t *testing.T) {
		t.Parallel()
		file := `type MyType = {
  summary: string;
}

/**
 * MyOtherType has an index.
 */
type MyOtherType = {
  index: number;
}

class Hello {
  print() {
    return 'Hello world';
  }
}

/**
 * Wrap code between start and end.
 */
const wrapAround = (code: string, start: string, end: string, newLine = true): string => {
  return start + code + end;
};

const singleLine = (code: string, comment: string): string => {
  return comment + code;
};`
		progress, err := svc.GetProgress(ctx, file, "typescript", extraction.AllIndicators)
		require.NoError(t, err)
		assert.Equal(t, 2, progress.Current)
		assert.Equal(t, 6, progress.Total)
	})

	t.Run("dart has no coverage", func(t *testing.T) {
		t.Parallel()
		progress, err := svc.GetProgress(ctx, "int one() => 1;", "dart", functions)
		require.NoError(t, err)
		assert.Nil(t, progress)
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()
		progress, err := svc.GetProgress(ctx, "anything", "cobol", functions)
		require.NoError(t, err)
		assert.Nil(t, progress)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.GetProgress(cancelled, "def f(): pass", "python", functions)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGetProgress_Ruby(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()

	t.Run("bodyless classes", func(t *testing.T) {
		t.Parallel()
		progress, err := svc.GetProgress(ctx, "# A\nclass A\nend\nclass B\nend\n", "ruby", []extraction.Indicator{extraction.Classes})
		require.NoError(t, err)
		require.NotNil(t, progress)
		assert.Equal(t, 1, progress.Current)
		assert.Equal(t, 2, progress.Total)
	})

	t.Run("documented first method", func(t *testing.T) {
		t.Parallel()
		file := "# A dog.\nclass Dog < Animal\n  # Barks.\n  def bark\n  end\n\n  def sit\n  end\nend"
		progress, err := svc.GetProgress(ctx, file, "ruby", extraction.AllIndicators)
		require.NoError(t, err)
		require.NotNil(t, progress)
		assert.Equal(t, 2, progress.Current)
		assert.Equal(t, 3, progress.Total)
		assert.Equal(t, extraction.Count{Current: 1, Total: 1}, progress.Breakdown[extraction.Classes])
		assert.Equal(t, extraction.Count{Current: 1, Total: 2}, progress.Breakdown[extraction.Methods])
	})

	t.Run("empty class", func(t *testing.T) {
		t.Parallel()
		progress, err := svc.GetProgress(ctx, "class Empty\nend\n", "ruby", extraction.AllIndicators)
		require.NoError(t, err)
		require.NotNil(t, progress)
		assert.Equal(t, 0, progress.Current)
		assert.Equal(t, 1, progress.Total)
		assert.Equal(t, extraction.Count{Current: 0, Total: 1}, progress.Breakdown[extraction.Classes])
		assert.Equal(t, extraction.Count{}, progress.Breakdown[extraction.Methods])
	})
}

func TestGetProgress_ClassNesting(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()

	tests := []struct {
		name    string
		lang    string
		file    string
		classes extraction.Count
		methods extraction.Count
	}{
		{
			name:    "java nested class and method",
			lang:    "java",
			file:    "/** A */\nclass A {\n  /** Inner. */\n  class Inner {}\n\n  /** Runs. */\n  void run() {}\n}\nclass B {}",
			classes: extraction.Count{Current: 2, Total: 3},
			methods: extraction.Count{Current: 1, Total: 1},
		},
		{
			name:    "kotlin nested class",
			lang:    "kotlin",
			file:    "/** A */\nclass A {\n    /** Inner. */\n    class Inner\n}\nclass B",
			classes: extraction.Count{Current: 2, Total: 3},
		},
		{
			name:    "cpp sibling classes",
			lang:    "cpp",
			file:    "/** A */\nclass A {};\nclass B {};",
			classes: extraction.Count{Current: 1, Total: 2},
		},
		{
			name:    "ruby nested class",
			lang:    "ruby",
			file:    "# A\nclass A\n  # Inner.\n  class Inner\n  end\nend\nclass B\nend\n",
			classes: extraction.Count{Current: 2, Total: 3},
		},
		{
			name:    "javascript class methods",
			lang:    "javascript",
			file:    "/** A */\nclass A {\n  /** Greets. */\n  greet() {}\n\n  sit() {}\n}\nclass B {}",
			classes: extraction.Count{Current: 1, Total: 2},
			methods: extraction.Count{Current: 1, Total: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			progress, err := svc.GetProgress(ctx, tt.file, tt.lang, []extraction.Indicator{extraction.Classes})
			require.NoError(t, err)
			require.NotNil(t, progress)
			assert.Equal(t, tt.classes.Current, progress.Current)
			assert.Equal(t, tt.classes.Total, progress.Total)
			assert.Equal(t, tt.classes, progress.Breakdown[extraction.Classes])
			assert.Equal(t, tt.methods, progress.Breakdown[extraction.Methods])
		})
	}
}

func TestGetSynopsis_Deterministic(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()

	tests := []struct {
		lang      string
		file      string
		selection string
		function  bool
	}{
		{"javascript", "class Greeter {\n  greet(name) {\n    return name;\n  }\n}", "greet(name) {\n    return name;\n  }", true},
		{"python", "class Greeter:\n    def greet(self, name):\n        return name", "def greet(self, name):\n        return name", true},
		{"ruby", "class Greeter\n  def greet(name)\n    name\n  end\nend", "def greet(name)\n    name\n  end", true},
		{"php", "<?php\nclass Greeter\n{\n  public function greet($name)\n  {\n    return $name;\n  }\n}\n?>", "public function greet($name)\n  {\n    return $name;\n  }", false},
		{"java", "class Greeter {\n  String greet(String name) {\n    return name;\n  }\n}", "String greet(String name) {\n    return name;\n  }", false},
		{"typescript", "class Greeter {\n  greet(name: string): string {\n    return name;\n  }\n}", "greet(name: string): string {\n    return name;\n  }", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			t.Parallel()
			first := svc.GetSynopsis(ctx, tt.selection, tt.lang, tt.file)
			second := svc.GetSynopsis(ctx, tt.selection, tt.lang, tt.file)
			assert.Equal(t, first, second)
			if tt.function {
				assert.Equal(t, extraction.KindFunction, first.Kind())
			}
		})
	}
}
