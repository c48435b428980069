// Package scan measures documentation coverage across a directory tree.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/mvp-joe/synopsis/internal/config"
	"github.com/mvp-joe/synopsis/internal/docs"
	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/mvp-joe/synopsis/internal/languages"
)

// FileReport is the coverage of one file.
type FileReport struct {
	Path     string              `json:"path"`
	Language string              `json:"language"`
	Progress extraction.Progress `json:"progress"`
}

// Report is the coverage of a whole scan. Total is the sum of every file's
// progress. Skipped counts files that matched but could not be measured,
// either because their language has no coverage support or because they
// failed to read or parse.
type Report struct {
	Root    string              `json:"root"`
	Files   []FileReport        `json:"files"`
	Total   extraction.Progress `json:"total"`
	Skipped int                 `json:"skipped"`
}

// Options configures a Scanner.
type Options struct {
	Paths      config.PathsConfig
	Workers    int
	Indicators []extraction.Indicator
	Reporter   Reporter
	Logger     *slog.Logger
}

// Scanner computes per-file progress through a docs.Service.
type Scanner struct {
	docs       *docs.Service
	paths      config.PathsConfig
	workers    int
	indicators []extraction.Indicator
	reporter   Reporter
	logger     *slog.Logger
}

// NewScanner creates a Scanner. Zero-valued options fall back to one worker,
// all indicators, no reporting and slog.Default().
func NewScanner(svc *docs.Service, opts Options) *Scanner {
	s := &Scanner{
		docs:       svc,
		paths:      opts.Paths,
		workers:    opts.Workers,
		indicators: opts.Indicators,
		reporter:   opts.Reporter,
		logger:     opts.Logger,
	}
	if s.workers < 1 {
		s.workers = 1
	}
	if s.indicators == nil {
		s.indicators = extraction.AllIndicators
	}
	if s.reporter == nil {
		s.reporter = NoOpReporter{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Scan measures root, which may be a directory or a single file. A single
// file is measured regardless of the path patterns.
func (s *Scanner) Scan(ctx context.Context, root string) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}

	var (
		files []string
		base  = root
	)
	if info.IsDir() {
		discovery, err := NewFileDiscovery(root, s.paths.Code, s.paths.Ignore)
		if err != nil {
			return nil, err
		}
		if files, err = discovery.DiscoverFiles(); err != nil {
			return nil, fmt.Errorf("failed to discover files: %w", err)
		}
	} else {
		files = []string{root}
		base = filepath.Dir(root)
	}
	s.reporter.OnDiscoveryComplete(len(files))
	s.logger.Debug("scan discovered files", "root", root, "files", len(files))

	results := make([]*FileReport, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range files {
		g.Go(func() error {
			defer s.reporter.OnFileScanned(path)

			report, err := s.scanFile(gctx, base, path)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.logger.Warn("skipping file", "path", path, "error", err)
				return nil
			}
			results[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Root: root, Files: []FileReport{}, Total: extraction.NewProgress()}
	for _, r := range results {
		if r == nil {
			report.Skipped++
			continue
		}
		report.Files = append(report.Files, *r)
		report.Total = report.Total.Add(r.Progress)
	}

	s.reporter.OnComplete(report)
	return report, nil
}

// scanFile returns nil without error for files whose language has no
// coverage support.
func (s *Scanner) scanFile(ctx context.Context, base, path string) (*FileReport, error) {
	languageID := languages.FromFileName(path, "")
	if languageID == "" {
		return nil, nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	progress, err := s.docs.GetProgress(ctx, string(source), languageID, s.indicators)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, nil
	}

	rel, err := filepath.Rel(base, path)
	if err != nil {
		rel = path
	}
	return &FileReport{Path: filepath.ToSlash(rel), Language: languageID, Progress: *progress}, nil
}
