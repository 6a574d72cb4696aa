package config

import (
	"fmt"
	"strings"
)

// ValidationError points at the offending config key and, when known, the
// file position it was read from.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// BuildEffectiveConfig overlays raw values on the defaults.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.StrictApply != nil {
		cfg.StrictApply = *raw.StrictApply
	}
	if raw.DefaultMonitorFallback != nil {
		cfg.DefaultMonitorFallback = MonitorFallback(strings.ToLower(string(*raw.DefaultMonitorFallback)))
	}
	if l := raw.Logging; l != nil {
		if l.Enabled != nil {
			cfg.Logging.Enabled = *l.Enabled
		}
		if l.Level != nil {
			cfg.Logging.Level = *l.Level
		}
		if l.File != nil {
			cfg.Logging.File = *l.File
		}
		if l.MaxSizeMB != nil {
			cfg.Logging.MaxSizeMB = *l.MaxSizeMB
		}
		if l.MaxFiles != nil {
			cfg.Logging.MaxFiles = *l.MaxFiles
		}
	}
	for name, p := range raw.Presets {
		name = strings.ToLower(name)
		if field := p.missing(); field != "" {
			return nil, &ValidationError{Path: "presets." + name, Err: fmt.Errorf("%s is required", field)}
		}
		cfg.Presets[name] = p.preset()
	}
	return cfg, nil
}
