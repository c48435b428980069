// Package config loads synopsis settings.
//
// Settings come from three layers, highest priority first:
//
//  1. Environment variables (SYNOPSIS_*, nested keys joined with "_")
//  2. Project config (.synopsis/config.yml), merged over the user config
//     (~/.synopsis/config.yml)
//  3. Built-in defaults
//
// Example:
//
//	cfg, err := config.LoadConfigFromDir(root)
//	if err != nil {
//	    return err
//	}
//	indicators, err := cfg.Indicators()
package config

import (
	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/mvp-joe/synopsis/internal/logging"
)

// DirName is the per-project and per-user configuration directory.
const DirName = ".synopsis"

// Config represents the complete synopsis configuration.
type Config struct {
	Progress ProgressConfig `yaml:"progress" mapstructure:"progress"`
	Paths    PathsConfig    `yaml:"paths" mapstructure:"paths"`
	Scan     ScanConfig     `yaml:"scan" mapstructure:"scan"`
	Watch    WatchConfig    `yaml:"watch" mapstructure:"watch"`
	Logging  logging.Config `yaml:"logging" mapstructure:"logging"`
	MCP      MCPConfig      `yaml:"mcp" mapstructure:"mcp"`
}

// ProgressConfig selects the coverage buckets counted in totals.
type ProgressConfig struct {
	Indicators []string `yaml:"indicators" mapstructure:"indicators"` // Functions, Methods, Classes, Types
}

// PathsConfig defines which files a directory scan visits.
type PathsConfig struct {
	Code   []string `yaml:"code" mapstructure:"code"`     // glob patterns for code files
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to skip
}

// ScanConfig tunes directory scans.
type ScanConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"` // files parsed concurrently
}

// WatchConfig tunes progress --watch.
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms" mapstructure:"debounce_ms"`
}

// MCPConfig tunes the MCP server.
type MCPConfig struct {
	CacheSize int `yaml:"cache_size" mapstructure:"cache_size"` // cached tool results, 0 disables
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	indicators := make([]string, 0, len(extraction.AllIndicators))
	for _, ind := range extraction.AllIndicators {
		indicators = append(indicators, string(ind))
	}

	return &Config{
		Progress: ProgressConfig{Indicators: indicators},
		Paths: PathsConfig{
			Code: []string{
				"**/*.{ts,tsx,js,jsx,mjs,cjs}",
				"**/*.py",
				"**/*.php",
				"**/*.{java,kt,kts}",
				"**/*.{c,h,cpp,cc,hpp}",
				"**/*.cs",
				"**/*.dart",
				"**/*.rb",
				"**/*.rs",
				"**/*.go",
			},
			Ignore: []string{
				"node_modules/**",
				"vendor/**",
				".git/**",
				"dist/**",
				"build/**",
				"target/**",
				"__pycache__/**",
			},
		},
		Scan:    ScanConfig{Workers: 4},
		Watch:   WatchConfig{DebounceMS: 500},
		Logging: logging.Config{Level: "info", Format: logging.FormatText},
		MCP:     MCPConfig{CacheSize: 1024},
	}
}

// Indicators parses the configured progress indicators.
func (c *Config) Indicators() ([]extraction.Indicator, error) {
	return extraction.ParseIndicators(c.Progress.Indicators)
}
