package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.DefaultMonitorFallback != FallbackWindow {
		t.Fatalf("expected window fallback, got %q", cfg.DefaultMonitorFallback)
	}
	if cfg.StrictApply {
		t.Fatalf("expected best-effort apply by default")
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.File != "" {
		t.Fatalf("expected no file, got %q", res.File)
	}
	if res.Config.DefaultMonitorFallback != FallbackWindow {
		t.Fatalf("expected defaults, got %+v", res.Config)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(writeConfig(t, "# empty"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Logging.MaxFiles != 3 {
		t.Fatalf("expected default max_files 3, got %d", res.Config.Logging.MaxFiles)
	}
}

func TestLoadFromPath_AllKeys(t *testing.T) {
	path := writeConfig(t,
		`display: ":1"`,
		"strict_apply: true",
		"default_monitor_fallback: Primary",
		"logging:",
		"  enabled: true",
		"  level: debug",
		"  file: /tmp/winplace-test.log",
		"  max_size_mb: 2",
		"  max_files: 5",
		"presets:",
		"  Sidebar:",
		"    left: 0",
		"    right: 25",
		"    top: 0",
		"    bottom: 100",
	)

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Display != ":1" || !cfg.StrictApply || cfg.DefaultMonitorFallback != FallbackPrimary {
		t.Fatalf("unexpected top-level values: %+v", cfg)
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/winplace-test.log" ||
		cfg.Logging.MaxSizeMB != 2 || cfg.Logging.MaxFiles != 5 {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	p, ok := cfg.Presets["sidebar"]
	if !ok {
		t.Fatalf("expected preset names to be lower-cased, got %v", cfg.Presets)
	}
	if p.Right != 25 || p.Bottom != 100 {
		t.Fatalf("unexpected preset %+v", p)
	}
	if _, ok := cfg.AllPresets()["left-half"]; !ok {
		t.Fatalf("expected builtin presets to remain available")
	}
}

func TestLoadFromPath_UnknownKeyRejected(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "strict: true"))
	if err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestLoadFromPath_ValidationErrorHasSource(t *testing.T) {
	path := writeConfig(t,
		"strict_apply: false",
		"default_monitor_fallback: nearest",
	)
	_, err := LoadFromPath(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Path != "default_monitor_fallback" {
		t.Fatalf("expected path default_monitor_fallback, got %q", verr.Path)
	}
	if verr.Source.Line != 2 {
		t.Fatalf("expected line 2, got %d", verr.Source.Line)
	}
	if !strings.HasPrefix(err.Error(), path+":2:") {
		t.Fatalf("expected file position in %q", err.Error())
	}
}

func TestLoadFromPath_PresetValidation(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "missing edge",
			lines: []string{"presets:", "  wide:", "    left: 0", "    right: 100", "    top: 0"},
			want:  "bottom is required",
		},
		{
			name:  "degenerate",
			lines: []string{"presets:", "  bad:", "    left: 60", "    right: 50", "    top: 0", "    bottom: 100"},
			want:  "alignment region is empty",
		},
		{
			name:  "out of range",
			lines: []string{"presets:", "  bad:", "    left: 0", "    right: 150", "    top: 0", "    bottom: 100"},
			want:  "out of range",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromPath(writeConfig(t, tt.lines...))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestValidate_LoggingLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	err := cfg.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path != "logging.level" {
		t.Fatalf("expected logging.level validation error, got %v", err)
	}
}

func TestGetLoggingConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	cfg := (&Config{}).GetLoggingConfig()
	if cfg.MaxSizeMB != 10 || cfg.MaxFiles != 3 || cfg.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.File != "/home/tester/.local/share/winplace/winplace.log" {
		t.Fatalf("unexpected log file %q", cfg.File)
	}

	var nilCfg *Config
	if got := nilCfg.GetLoggingConfig(); got != (LoggingConfig{}) {
		t.Fatalf("expected zero config for nil receiver, got %+v", got)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if path != "/home/tester/.config/winplace/config.yaml" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestLoadFromPath_MixedCasePresetErrorHasSource(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		line  int
	}{
		{
			name:  "degenerate",
			lines: []string{"presets:", "  SideBar:", "    left: 60", "    right: 50", "    top: 0", "    bottom: 100"},
			line:  3,
		},
		{
			name:  "missing edge",
			lines: []string{"strict_apply: true", "presets:", "  Wide:", "    left: 0", "    right: 100", "    top: 0"},
			line:  4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.lines...)
			_, err := LoadFromPath(path)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Source.Line != tt.line {
				t.Fatalf("expected line %d for %q, got %d", tt.line, verr.Path, verr.Source.Line)
			}
			if !strings.HasPrefix(err.Error(), path+":") {
				t.Fatalf("expected file position in %q", err.Error())
			}
		})
	}
}
