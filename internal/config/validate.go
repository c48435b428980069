package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/mvp-joe/synopsis/internal/logging"
)

var (
	// ErrInvalidIndicator indicates an unknown progress indicator
	ErrInvalidIndicator = errors.New("invalid progress indicator")

	// ErrInvalidWorkers indicates a non-positive scan worker count
	ErrInvalidWorkers = errors.New("invalid scan workers")

	// ErrInvalidDebounce indicates a negative watch debounce
	ErrInvalidDebounce = errors.New("invalid watch debounce")

	// ErrInvalidLogging indicates an unknown log level or format
	ErrInvalidLogging = errors.New("invalid logging settings")

	// ErrInvalidCacheSize indicates a negative MCP cache size
	ErrInvalidCacheSize = errors.New("invalid cache size")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	for _, name := range cfg.Progress.Indicators {
		if _, err := extraction.ParseIndicator(name); err != nil {
			errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidIndicator, err))
		}
	}

	if cfg.Scan.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidWorkers, cfg.Scan.Workers))
	}

	if cfg.Watch.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("%w: debounce_ms cannot be negative, got %d", ErrInvalidDebounce, cfg.Watch.DebounceMS))
	}

	if err := validateLogging(&cfg.Logging); err != nil {
		errs = append(errs, err)
	}

	if cfg.MCP.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("%w: cache_size cannot be negative, got %d", ErrInvalidCacheSize, cfg.MCP.CacheSize))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateLogging(cfg *logging.Config) error {
	var errs []error

	if _, err := logging.ParseLevel(cfg.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidLogging, err))
	}

	if !logging.ValidFormat(cfg.Format) {
		errs = append(errs, fmt.Errorf("%w: format must be 'text' or 'json', got '%s'", ErrInvalidLogging, cfg.Format))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
