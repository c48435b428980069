package docs

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvp-joe/synopsis/internal/ast"
	"github.com/mvp-joe/synopsis/internal/languages"
)

// ErrIncompleteLine is returned by GetCode when the cursor is on no
// documentable construct and its line does not parse on its own.
var ErrIncompleteLine = errors.New("Select a complete line of code (or the first line of a function)")

// GetCode resolves a cursor with no selection. When offset lies on the first
// line of a documentable construct in file, the construct's full source is
// returned. Otherwise line is returned, provided it parses cleanly by itself.
//
// Offsets index file as given, so the file is never reformatted here.
func (s *Service) GetCode(ctx context.Context, file, languageID string, offset int, line string) (string, error) {
	program, err := s.parser.Parse(ctx, file, languageID)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s source: %w", languageID, err)
	}

	code, ok := languages.For(languageID).Code(program.Root, offset)
	if !ok {
		code = line
	}
	if code != line {
		return code, nil
	}

	lineProgram, err := s.parser.Parse(ctx, Format(languageID, line), languageID)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s line: %w", languageID, err)
	}
	if ast.HasErrorOnFirstChildChain(lineProgram.Root) {
		s.logger.Debug("line at cursor is incomplete", "language", languageID, "offset", offset)
		return "", ErrIncompleteLine
	}
	return code, nil
}
