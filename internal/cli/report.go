package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/synopsis/internal/config"
	"github.com/mvp-joe/synopsis/internal/docs"
	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/mvp-joe/synopsis/internal/scan"
	"github.com/mvp-joe/synopsis/internal/watcher"
)

var (
	progressTypes []string
	watchFlag     bool
	jsonFlag      bool
	quietFlag     bool
)

// progressCmd represents the progress command
var progressCmd = &cobra.Command{
	Use:   "progress [path]",
	Short: "Measure documentation coverage of a file or directory",
	Long: `Progress counts the functions, methods, classes and types in each source
file and how many of them carry a doc comment, then prints per-file rows and
project totals.

Files are discovered with the paths.code and paths.ignore patterns of
.synopsis/config.yml. A single file argument is measured regardless of them.

Examples:
  # Measure the current directory
  synopsis progress

  # Only count functions and classes, as JSON
  synopsis progress ./src --types Functions,Classes --json

  # Re-measure whenever a source file changes
  synopsis progress --watch
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().StringSliceVarP(&progressTypes, "types", "t", nil, "indicators to count: Functions, Methods, Classes, Types (default from config)")
	progressCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "watch for file changes and re-measure")
	progressCmd.Flags().BoolVar(&jsonFlag, "json", false, "print the report as JSON")
	progressCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "disable the progress bar")
}

// progressOptions are the resolved inputs of a progress run.
type progressOptions struct {
	root       string
	indicators []extraction.Indicator
	json       bool
	quiet      bool
}

func runProgress(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	rt, err := loadSession()
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	if root, err = filepath.Abs(root); err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	indicators, err := resolveIndicators(progressTypes, rt.cfg)
	if err != nil {
		return err
	}

	opts := progressOptions{root: root, indicators: indicators, json: jsonFlag, quiet: quietFlag}
	out := cmd.OutOrStdout()

	if _, err := executeProgress(ctx, rt.service, rt.cfg, opts, rt.logger, out); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("progress cancelled")
		}
		return err
	}

	if !watchFlag {
		return nil
	}
	if err := watchProgress(ctx, rt.service, rt.cfg, opts, rt.logger, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watch mode failed: %w", err)
	}
	rt.logger.Info("watch mode stopped")
	return nil
}

// resolveIndicators prefers --types over the configured indicators.
func resolveIndicators(types []string, cfg *config.Config) ([]extraction.Indicator, error) {
	if len(types) > 0 {
		return extraction.ParseIndicators(types)
	}
	return cfg.Indicators()
}

// executeProgress runs one scan and writes its report.
func executeProgress(ctx context.Context, svc *docs.Service, cfg *config.Config, opts progressOptions, logger *slog.Logger, out io.Writer) (*scan.Report, error) {
	var reporter scan.Reporter = scan.NoOpReporter{}
	if !opts.json {
		reporter = NewCLIProgressReporter(out, opts.quiet)
	}

	scanner := scan.NewScanner(svc, scan.Options{
		Paths:      cfg.Paths,
		Workers:    cfg.Scan.Workers,
		Indicators: opts.indicators,
		Reporter:   reporter,
		Logger:     logger,
	})

	report, err := scanner.Scan(ctx, opts.root)
	if err != nil {
		return nil, err
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
	}
	return report, nil
}

// watchProgress re-runs the scan after each debounced batch of changes until
// ctx is cancelled. Changes made while a scan runs are batched into one
// follow-up scan.
func watchProgress(ctx context.Context, svc *docs.Service, cfg *config.Config, opts progressOptions, logger *slog.Logger, out io.Writer) error {
	dir := opts.root
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	discovery, err := scan.NewFileDiscovery(dir, cfg.Paths.Code, cfg.Paths.Ignore)
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(dir, watcher.Options{
		Filter:   discovery,
		Debounce: time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Stop()

	err = fw.Start(ctx, func(files []string) {
		fw.Pause()
		defer fw.Resume()

		logger.Info("files changed, re-measuring", "files", len(files))
		if _, err := executeProgress(ctx, svc, cfg, opts, logger, out); err != nil && ctx.Err() == nil {
			logger.Warn("progress scan failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	logger.Info("watching for changes", "root", dir)
	<-ctx.Done()
	return ctx.Err()
}
