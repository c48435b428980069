package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/synopsis/internal/config"
	"github.com/mvp-joe/synopsis/internal/docs"
	"github.com/mvp-joe/synopsis/internal/logging"
	"github.com/mvp-joe/synopsis/internal/parsers"
)

var (
	projectDir string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "synopsis",
	Short: "Synopsis - infer what source code documentation should describe",
	Long: `Synopsis parses source code with tree-sitter and reports the shape a doc
comment should take: a function's parameters and return value, a typedef's
properties, or a class's superclass. It also measures how much of a file or
project is already documented.

Supported languages: ` + strings.Join(parsers.New().Languages(), ", "),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "dir", "", "project directory holding .synopsis/config.yml (default is the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// session bundles what every command needs.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	service *docs.Service
}

// loadSession reads configuration and builds the logger and docs service.
// --verbose forces debug logging regardless of the configured level.
func loadSession() (*session, error) {
	var (
		cfg *config.Config
		err error
	)
	if projectDir != "" {
		cfg, err = config.LoadConfigFromDir(projectDir)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logCfg := cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	logger := logging.New(logCfg, os.Stderr)
	slog.SetDefault(logger)

	return &session{
		cfg:     cfg,
		logger:  logger,
		service: docs.NewService(parsers.New(), logger),
	}, nil
}
