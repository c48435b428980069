// Package docs answers the three documentation questions asked about a piece
// of source: what shape a selection has, which construct a cursor sits on,
// and how much of a file is documented.
package docs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/mvp-joe/synopsis/internal/languages"
)

// Parser turns source text into a tree. *parsers.Parser satisfies it.
type Parser interface {
	Parse(ctx context.Context, source, languageID string) (*ast.Program, error)
}

// Service runs requests through the parser and the language registry.
// It is safe for concurrent use.
type Service struct {
	parser Parser
	logger *slog.Logger
}

// NewService creates a Service. A nil logger uses slog.Default().
func NewService(parser Parser, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{parser: parser, logger: logger}
}

const (
	phpOpenTag    = "<?php"
	phpWrapPrefix = "<?php \n"
	phpWrapSuffix = "?>"
)

// Format prepares code for parsing. PHP fragments without an opening tag are
// wrapped so the grammar sees them as code rather than inline HTML.
func Format(languageID, code string) string {
	if languageID == "php" && !strings.HasPrefix(code, phpOpenTag) {
		return phpWrapPrefix + code + phpWrapSuffix
	}
	return code
}

// GetSynopsis classifies selection within file. An empty file means the
// selection is the whole file. It never fails: parse errors, unsupported
// languages and extractor panics all yield UnspecifiedSynopsis.
func (s *Service) GetSynopsis(ctx context.Context, selection, languageID, file string) (synopsis extraction.Synopsis) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Debug("synopsis extraction panicked", "language", languageID, "panic", r)
			synopsis = extraction.UnspecifiedSynopsis{}
		}
	}()

	if file == "" {
		file = selection
	}

	selectionTree, err := s.parser.Parse(ctx, Format(languageID, selection), languageID)
	if err != nil {
		s.logger.Debug("selection parse failed", "language", languageID, "error", err)
		return extraction.UnspecifiedSynopsis{}
	}
	fileTree, err := s.parser.Parse(ctx, Format(languageID, file), languageID)
	if err != nil {
		s.logger.Debug("file parse failed", "language", languageID, "error", err)
		return extraction.UnspecifiedSynopsis{}
	}

	if matches := ast.NodesByValue(fileTree.Root, selection); len(matches) > 1 {
		s.logger.Debug("selection occurs more than once in file, using the first",
			"language", languageID, "matches", len(matches))
	}

	return languages.For(languageID).Synopsis(selectionTree.Root, fileTree.Root)
}

// GetProgress reports documentation coverage of file, counting only the
// given indicators in the totals. Languages without coverage support
// return nil.
func (s *Service) GetProgress(ctx context.Context, file, languageID string, indicators []extraction.Indicator) (*extraction.Progress, error) {
	if !languages.Supported(languageID) {
		return nil, nil
	}

	program, err := s.parser.Parse(ctx, Format(languageID, file), languageID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s source: %w", languageID, err)
	}

	return languages.For(languageID).Progress(program.Root, indicators), nil
}
