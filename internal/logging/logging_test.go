package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for logging:
// - Level names parse case-insensitively, unknown names are rejected
// - The configured level filters records
// - The json format emits one JSON object per record
// - Discard drops everything

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: FormatText}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "file", "a.go")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "file=a.go")
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(Config{Level: "debug", Format: "JSON"}, &buf).Debug("parsed", "language", "go")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "parsed", record["msg"])
	assert.Equal(t, "go", record["language"])
}

func TestValidFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidFormat("text"))
	assert.True(t, ValidFormat("json"))
	assert.True(t, ValidFormat(""))
	assert.False(t, ValidFormat("xml"))
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
