package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from files and environment variables.
	// Priority: defaults → user config → project config → environment (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
	homeDir string
}

// NewLoader creates a loader for the project at rootDir. The user config is
// read from the current user's home directory when it can be determined.
func NewLoader(rootDir string) Loader {
	home, _ := os.UserHomeDir()
	return &loader{rootDir: rootDir, homeDir: home}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (SYNOPSIS_*)
// 2. Project config file (.synopsis/config.yml or .synopsis/config.yaml)
// 3. User config file (~/.synopsis/config.yml)
// 4. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SYNOPSIS")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., SYNOPSIS_SCAN_WORKERS)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnv(v)

	setDefaults(v)

	if l.homeDir != "" {
		if err := mergeConfigFrom(v, filepath.Join(l.homeDir, DirName)); err != nil {
			return nil, fmt.Errorf("failed to read user config file: %w", err)
		}
	}
	if err := mergeConfigFrom(v, filepath.Join(l.rootDir, DirName)); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// mergeConfigFrom merges dir/config.y(a)ml into v. A missing file is not an
// error.
func mergeConfigFrom(v *viper.Viper, dir string) error {
	for _, name := range []string{"config.yml", "config.yaml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		v.SetConfigFile(path)
		return v.MergeInConfig()
	}
	return nil
}

// bindEnv binds the environment variables for every key, so that
// AutomaticEnv also covers keys absent from the config files.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"progress.indicators",
		"scan.workers",
		"watch.debounce_ms",
		"logging.level",
		"logging.format",
		"mcp.cache_size",
	} {
		_ = v.BindEnv(key)
	}
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("progress.indicators", defaults.Progress.Indicators)

	v.SetDefault("paths.code", defaults.Paths.Code)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)

	v.SetDefault("scan.workers", defaults.Scan.Workers)
	v.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMS)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	v.SetDefault("mcp.cache_size", defaults.MCP.CacheSize)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
