package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/1broseidon/winplace/internal/tiling"
)

// MonitorFallback selects the monitor used when no index is given.
type MonitorFallback string

const (
	FallbackWindow  MonitorFallback = "window"  // Monitor containing the window.
	FallbackPrimary MonitorFallback = "primary" // Primary monitor.
)

// LoggingConfig configures the placement action log.
type LoggingConfig struct {
	// Enabled turns the file sink on/off
	Enabled bool `yaml:"enabled,omitempty"`
	// Level controls file logging verbosity: debug, info, warn, error
	Level string `yaml:"level,omitempty"`
	// File is the log file path (default: ~/.local/share/winplace/winplace.log)
	File string `yaml:"file,omitempty"`
	// MaxSizeMB is the maximum log file size before rotation (default: 10)
	MaxSizeMB int `yaml:"max_size_mb,omitempty"`
	// MaxFiles is the number of rotated files to keep (default: 3)
	MaxFiles int `yaml:"max_files,omitempty"`
}

// Config is the effective winplace configuration.
type Config struct {
	// Display overrides $DISPLAY for the X11 backend.
	Display string `yaml:"display,omitempty"`
	// StrictApply reports a failed move as an error instead of a warning.
	StrictApply bool `yaml:"strict_apply"`
	// DefaultMonitorFallback applies when a request carries no monitor index.
	DefaultMonitorFallback MonitorFallback `yaml:"default_monitor_fallback"`

	Logging LoggingConfig `yaml:"logging,omitempty"`

	// Presets are named alignments, merged over the builtin presets.
	Presets map[string]tiling.Preset `yaml:"presets,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		DefaultMonitorFallback: FallbackWindow,
		Logging: LoggingConfig{
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
		Presets: map[string]tiling.Preset{},
	}
}

// GetLoggingConfig returns the logging config with defaults filled in.
func (c *Config) GetLoggingConfig() LoggingConfig {
	if c == nil {
		return LoggingConfig{}
	}
	cfg := c.Logging
	if cfg.File == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			home = os.Getenv("HOME")
		}
		if home == "" {
			home = "."
		}
		cfg.File = filepath.Join(home, ".local/share/winplace/winplace.log")
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxFiles == 0 {
		cfg.MaxFiles = 3
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	return cfg
}

// AllPresets returns the builtin presets overlaid with configured ones.
func (c *Config) AllPresets() map[string]tiling.Preset {
	if c == nil {
		return tiling.BuiltinPresets()
	}
	return tiling.MergePresets(c.Presets)
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	switch c.DefaultMonitorFallback {
	case FallbackWindow, FallbackPrimary:
	default:
		return &ValidationError{Path: "default_monitor_fallback", Err: fmt.Errorf("default_monitor_fallback must be one of: window, primary")}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")}
	}
	if c.Logging.MaxSizeMB < 0 {
		return &ValidationError{Path: "logging.max_size_mb", Err: fmt.Errorf("max_size_mb must be >= 0")}
	}
	if c.Logging.MaxFiles < 0 {
		return &ValidationError{Path: "logging.max_files", Err: fmt.Errorf("max_files must be >= 0")}
	}
	for name, p := range c.Presets {
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Path: "presets", Err: fmt.Errorf("presets contains an empty name")}
		}
		if _, err := p.Alignment(); err != nil {
			return &ValidationError{Path: "presets." + name, Err: err}
		}
	}
	return nil
}
