package scan_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mvp-joe/synopsis/internal/config"
	"github.com/mvp-joe/synopsis/internal/docs"
	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/mvp-joe/synopsis/internal/logging"
	"github.com/mvp-joe/synopsis/internal/parsers"
	"github.com/mvp-joe/synopsis/internal/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Scanner:
// - A directory scan reports every matching file in path order and sums them
// - Files in languages without coverage are counted as skipped
// - A single file can be scanned directly
// - The reporter sees discovery, each file and completion
// - A cancelled context aborts the scan

const goSource = `package demo

// Add sums.
func Add(a, b int) int { return a + b }

func Sub(a, b int) int { return a - b }
`

const pythonSource = "def f():\n    \"\"\"Doc.\"\"\"\n    return 1\n"

type recordingReporter struct {
	mu        sync.Mutex
	total     int
	scanned   []string
	completed *scan.Report
}

func (r *recordingReporter) OnDiscoveryComplete(files int) { r.total = files }

func (r *recordingReporter) OnFileScanned(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scanned = append(r.scanned, path)
}

func (r *recordingReporter) OnComplete(report *scan.Report) { r.completed = report }

func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range map[string]string{
		"demo/demo.go":          goSource,
		"tools/f.py":            pythonSource,
		"app/main.dart":         "int one() => 1;",
		"node_modules/x/lib.js": "function ignored() {}",
		"notes.txt":             "not code",
	} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func newScanner(reporter scan.Reporter) *scan.Scanner {
	svc := docs.NewService(parsers.New(), logging.Discard())
	return scan.NewScanner(svc, scan.Options{
		Paths:    config.Default().Paths,
		Workers:  2,
		Reporter: reporter,
		Logger:   logging.Discard(),
	})
}

func TestScan_Directory(t *testing.T) {
	t.Parallel()

	root := writeTree(t)
	reporter := &recordingReporter{}

	report, err := newScanner(reporter).Scan(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, report.Files, 2)
	assert.Equal(t, "demo/demo.go", report.Files[0].Path)
	assert.Equal(t, "go", report.Files[0].Language)
	assert.Equal(t, extraction.Count{Current: 1, Total: 2}, report.Files[0].Progress.Breakdown[extraction.Functions])
	assert.Equal(t, "tools/f.py", report.Files[1].Path)
	assert.Equal(t, "python", report.Files[1].Language)

	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 2, report.Total.Current)
	assert.Equal(t, 3, report.Total.Total)
	assert.Equal(t, extraction.Count{Current: 2, Total: 3}, report.Total.Breakdown[extraction.Functions])

	assert.Equal(t, 3, reporter.total)
	assert.Len(t, reporter.scanned, 3)
	assert.Same(t, report, reporter.completed)
}

func TestScan_SingleFile(t *testing.T) {
	t.Parallel()

	root := writeTree(t)
	report, err := newScanner(nil).Scan(context.Background(), filepath.Join(root, "tools", "f.py"))
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.Equal(t, "f.py", report.Files[0].Path)
	assert.Equal(t, extraction.Count{Current: 1, Total: 1}, report.Total.Breakdown[extraction.Functions])
}

func TestScan_Errors(t *testing.T) {
	t.Parallel()

	_, err := newScanner(nil).Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newScanner(nil).Scan(ctx, writeTree(t))
	assert.ErrorIs(t, err, context.Canceled)
}
