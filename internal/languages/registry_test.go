package languages_test

import (
	"testing"

	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/mvp-joe/synopsis/internal/languages"
	"github.com/stretchr/testify/assert"
)

// Test Plan for the language registry:
// - Every supported id resolves to a real extractor
// - Unknown ids fall back to an extractor that recognizes nothing
// - File names resolve by extension, case-insensitively

func TestRegistry(t *testing.T) {
	t.Parallel()

	ids := languages.IDs()
	assert.Len(t, ids, 15)
	assert.IsIncreasing(t, ids)
	for _, id := range ids {
		assert.True(t, languages.Supported(id), id)
		assert.NotEqual(t, languages.Unknown{}, languages.For(id), id)
	}

	assert.False(t, languages.Supported("cobol"))
	unknown := languages.For("cobol")
	assert.Equal(t, languages.Unknown{}, unknown)
	assert.Equal(t, extraction.UnspecifiedSynopsis{}, unknown.Synopsis(nil, nil))
	assert.Nil(t, unknown.Progress(nil, extraction.AllIndicators))
	_, ok := unknown.Code(nil, 0)
	assert.False(t, ok)
}

func TestFromFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		fallback string
		want     string
	}{
		{"typescript", "src/app.ts", "", "typescript"},
		{"tsx", "App.TSX", "", "typescriptreact"},
		{"header", "include/point.h", "", "c"},
		{"empty keeps fallback", "", "python", "python"},
		{"unknown extension", "notes.txt", "python", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, languages.FromFileName(tt.file, tt.fallback))
		})
	}
}
