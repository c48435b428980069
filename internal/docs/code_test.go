package docs_test

import (
	"context"
	"testing"

	"github.com/mvp-joe/synopsis/internal/docs"
	"github.com/mvp-joe/synopsis/internal/parsers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for cursor resolution without a selection:
// - A cursor anywhere on a construct's first line returns the whole construct
// - Nested constructs resolve to the innermost one starting on that line
// - A cursor inside a body falls back to the line when it parses cleanly
// - A line that does not parse on its own is rejected with ErrIncompleteLine
// - The file is not reformatted, so PHP offsets index the caller's text

const phpContext = `<?php
function writeMsg() {
  echo "Hello world!";
}
function sum(string $x, C $y) {
  $z = $x + $y;
  return $z;
}
?>`

const pythonContext = "def hello_world():\n  print('hello world!')"

const jsContext = "function hello() {\n  console.log('Hello, world!');\n}"

func TestGetCode(t *testing.T) {
	t.Parallel()

	svc := newService()

	tests := []struct {
		name     string
		language string
		context  string
		offset   int
		line     string
		want     string
	}{
		{
			name: "php front of first line", language: "php", context: phpContext, offset: 6,
			line: "function writeMsg() {", want: "function writeMsg() {\n  echo \"Hello world!\";\n}",
		},
		{
			name: "php middle of first line", language: "php", context: phpContext, offset: 18,
			line: "function writeMsg() {", want: "function writeMsg() {\n  echo \"Hello world!\";\n}",
		},
		{
			name: "php end of first line", language: "php", context: phpContext, offset: 27,
			line: "function writeMsg() {", want: "function writeMsg() {\n  echo \"Hello world!\";\n}",
		},
		{
			name: "python front of first line", language: "python", context: pythonContext, offset: 0,
			line: "def hello_world():", want: pythonContext,
		},
		{
			name: "python middle of first line", language: "python", context: pythonContext, offset: 9,
			line: "def hello_world():", want: pythonContext,
		},
		{
			name: "python end of first line", language: "python", context: pythonContext, offset: 18,
			line: "def hello_world():", want: pythonContext,
		},
		{
			name: "php body line", language: "php", context: phpContext, offset: 50,
			line: `  echo "Hello world!";`, want: `  echo "Hello world!";`,
		},
		{
			name: "javascript body line", language: "javascript", context: jsContext, offset: 36,
			line: "  console.log('Hello, world!');", want: "  console.log('Hello, world!');",
		},
		{
			name:     "javascript nested arrow",
			language: "javascript",
			context:  "const Parent = () => {\n  const childFunc = () => {\n    console.log('hello');\n  };\n};",
			offset:   37,
			line:     "  const childFunc = () => {",
			want:     "const childFunc = () => {\n    console.log('hello');\n  };",
		},
		{
			name:     "typescript method",
			language: "typescript",
			context: `export default class RequirementFulfillmentGraph<
  Requirement extends string,
  Course extends CourseWithUniqueId
> {

  public getAllRequirements(): readonly Requirement[] {
    return Array.from(this.requirementToCoursesMap.keys());
  }
}`,
			offset: 134,
			line:   "  public getAllRequirements(): readonly Requirement[] {",
			want: `public getAllRequirements(): readonly Requirement[] {
    return Array.from(this.requirementToCoursesMap.keys());
  }`,
		},
		{
			name:     "python method",
			language: "python",
			context:  "class Plus(Expression):\n  def evaluate(self, environment):\n    x = self.x.evaluate(environment)\n    return x",
			offset:   44,
			line:     "  def evaluate(self, environment):",
			want:     "def evaluate(self, environment):\n    x = self.x.evaluate(environment)\n    return x",
		},
		{
			name:     "php method",
			language: "php",
			context:  "<?php\nclass POP3\n{\n  public function helloWorld()\n  {\n    echo 'Hello, World!';\n  }\n}\n?>",
			offset:   31,
			line:     "  public function helloWorld()",
			want:     "public function helloWorld()\n  {\n    echo 'Hello, World!';\n  }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := svc.GetCode(context.Background(), tt.context, tt.language, tt.offset, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetCode_IncompleteLine(t *testing.T) {
	t.Parallel()

	_, err := newService().GetCode(context.Background(), jsContext, "javascript", 52, "}")
	require.ErrorIs(t, err, docs.ErrIncompleteLine)
	assert.Equal(t, "Select a complete line of code (or the first line of a function)", err.Error())
}

func TestGetCode_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := newService().GetCode(context.Background(), "x", "cobol", 0, "x")
	assert.ErrorIs(t, err, parsers.ErrUnsupportedLanguage)
}
