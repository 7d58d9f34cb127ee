package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "vidlib"

const (
	defaultPrompt   = "YT> "
	defaultLogLevel = "warn"
)

type Config struct {
	Catalog  string `koanf:"catalog"`   // catalog file; empty means the built-in catalog
	Seed     int64  `koanf:"seed"`      // random seed for PLAY_RANDOM; 0 seeds from time
	Prompt   string `koanf:"prompt"`    // interactive prompt
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn" or "error"

	Search SearchConfig `koanf:"search"`
}

// SearchConfig holds search settings.
type SearchConfig struct {
	MaxResults int `koanf:"max_results"` // 0 means unlimited
}

// Load reads the default config files, then extra (if set), which must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if extra != "" {
		if err := k.Load(file.Provider(expandPath(extra)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", extra, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in catalog
	cfg.Catalog = expandPath(cfg.Catalog)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/vidlib/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetPrompt returns the prompt with the default applied.
func (c *Config) GetPrompt() string {
	if c.Prompt == "" {
		return defaultPrompt
	}
	return c.Prompt
}

// GetLogLevel returns the log level with the default applied.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return defaultLogLevel
	}
	return c.LogLevel
}

// GetSearchConfig returns the search configuration with defaults applied.
func (c *Config) GetSearchConfig() SearchConfig {
	cfg := c.Search
	if cfg.MaxResults < 0 {
		cfg.MaxResults = 0
	}
	return cfg
}
