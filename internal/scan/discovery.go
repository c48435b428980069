package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/mvp-joe/synopsis/internal/config"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
	// rootGlob matches files in the root directory for "**/" patterns.
	rootGlob glob.Glob
}

// FileDiscovery selects the files a scan visits using glob patterns and
// ignore rules. Patterns are matched against slash-separated paths relative
// to the root.
type FileDiscovery struct {
	rootDir        string
	codePatterns   []compiledPattern
	ignorePatterns []compiledPattern
}

// NewFileDiscovery compiles the code and ignore patterns for rootDir.
func NewFileDiscovery(rootDir string, codePatterns, ignorePatterns []string) (*FileDiscovery, error) {
	code, err := compilePatterns(codePatterns)
	if err != nil {
		return nil, err
	}
	ignore, err := compilePatterns(ignorePatterns)
	if err != nil {
		return nil, err
	}
	return &FileDiscovery{rootDir: rootDir, codePatterns: code, ignorePatterns: ignore}, nil
}

func compilePatterns(patterns []string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		cp := compiledPattern{pattern: pattern, glob: g}
		if simplified, ok := strings.CutPrefix(pattern, "**/"); ok {
			if rg, err := glob.Compile(simplified, '/'); err == nil {
				cp.rootGlob = rg
			}
		}
		compiled = append(compiled, cp)
	}
	return compiled, nil
}

// DiscoverFiles walks the root and returns the matching files, in lexical
// order. Ignored directories are not descended into.
func (fd *FileDiscovery) DiscoverFiles() ([]string, error) {
	files := []string{}

	err := filepath.WalkDir(fd.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fd.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if fd.IgnoresDir(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if fd.Matches(relPath) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// Matches reports whether relPath is a code file that is not ignored.
func (fd *FileDiscovery) Matches(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	return !fd.shouldIgnore(relPath) && matchesAnyPattern(relPath, fd.codePatterns)
}

// IgnoresDir reports whether the directory at relPath is skipped.
func (fd *FileDiscovery) IgnoresDir(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	return relPath != "." && fd.shouldIgnore(relPath)
}

// Rel returns path relative to the discovery root, slash-separated.
func (fd *FileDiscovery) Rel(path string) (string, error) {
	rel, err := filepath.Rel(fd.rootDir, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// shouldIgnore checks if a path matches any ignore pattern.
func (fd *FileDiscovery) shouldIgnore(relPath string) bool {
	if relPath == config.DirName || strings.HasPrefix(relPath, config.DirName+"/") {
		return true
	}

	if matchesAnyPattern(relPath, fd.ignorePatterns) {
		return true
	}

	// A directory "node_modules" matches the pattern "node_modules/**".
	return matchesAnyPattern(relPath+"/**", fd.ignorePatterns)
}

// matchesAnyPattern checks if a path matches any of the given patterns.
// Root-level files also match "**/" patterns with the prefix removed, so
// "**/*.go" matches both "main.go" and "cmd/main.go".
func matchesAnyPattern(path string, patterns []compiledPattern) bool {
	atRoot := !strings.Contains(path, "/")
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
		if atRoot && cp.rootGlob != nil && cp.rootGlob.Match(path) {
			return true
		}
	}
	return false
}
