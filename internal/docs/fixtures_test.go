package docs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/mvp-joe/synopsis/internal/languages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for fixture files:
// - Progress over whole files counts top-level functions, types and classes
// - Class members count as methods
// - Synopsis of a method selected from a fixture file resolves in the file

func readFixture(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "code", rel))
	require.NoError(t, err)
	return string(data)
}

func TestGetProgress_Fixtures(t *testing.T) {
	t.Parallel()

	svc := newService()

	tests := []struct {
		file      string
		current   int
		total     int
		breakdown map[extraction.Indicator]extraction.Count
	}{
		{
			file:    "go/server.go",
			current: 2,
			total:   4,
			breakdown: map[extraction.Indicator]extraction.Count{
				extraction.Functions: {Current: 1, Total: 2},
				extraction.Types:     {Current: 1, Total: 2},
			},
		},
		{
			file:    "python/greeter.py",
			current: 2,
			total:   4,
			breakdown: map[extraction.Indicator]extraction.Count{
				extraction.Functions: {Current: 0, Total: 1},
				extraction.Classes:   {Current: 1, Total: 1},
				extraction.Methods:   {Current: 1, Total: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()
			source := readFixture(t, tt.file)
			language := languages.FromFileName(tt.file, "")

			progress, err := svc.GetProgress(context.Background(), source, language, extraction.AllIndicators)
			require.NoError(t, err)
			require.NotNil(t, progress)
			assert.Equal(t, tt.current, progress.Current)
			assert.Equal(t, tt.total, progress.Total)
			for ind, want := range tt.breakdown {
				assert.Equal(t, want, progress.Breakdown[ind], "indicator %s", ind)
			}
		})
	}
}

func TestGetSynopsis_Fixtures(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()

	source := readFixture(t, "go/server.go")
	got := svc.GetSynopsis(ctx, "func NewHandler(config *Config) *Handler {\n\treturn &Handler{config: config}\n}", "go", source)
	fn, ok := got.(extraction.FunctionSynopsis)
	require.True(t, ok, "expected a function synopsis, got %T", got)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "config", fn.Params[0].Name)

	source = readFixture(t, "python/greeter.py")
	got = svc.GetSynopsis(ctx, "class Greeter(Base):\n    \"\"\"Greets people by name.\"\"\"", "python", source)
	assert.Equal(t, extraction.ClassSynopsis{Extends: "Base"}, got)
}
