package config

import "github.com/1broseidon/winplace/internal/tiling"

// RawConfig mirrors the YAML file. Nil fields keep their defaults.
type RawConfig struct {
	Display                *string              `yaml:"display"`
	StrictApply            *bool                `yaml:"strict_apply"`
	DefaultMonitorFallback *MonitorFallback     `yaml:"default_monitor_fallback"`
	Logging                *RawLoggingConfig    `yaml:"logging"`
	Presets                map[string]RawPreset `yaml:"presets"`
}

type RawLoggingConfig struct {
	Enabled   *bool   `yaml:"enabled"`
	Level     *string `yaml:"level"`
	File      *string `yaml:"file"`
	MaxSizeMB *int    `yaml:"max_size_mb"`
	MaxFiles  *int    `yaml:"max_files"`
}

// RawPreset requires every edge so a typo cannot silently become 0.
type RawPreset struct {
	Left   *float64 `yaml:"left"`
	Right  *float64 `yaml:"right"`
	Top    *float64 `yaml:"top"`
	Bottom *float64 `yaml:"bottom"`
}

func (p RawPreset) missing() string {
	switch {
	case p.Left == nil:
		return "left"
	case p.Right == nil:
		return "right"
	case p.Top == nil:
		return "top"
	case p.Bottom == nil:
		return "bottom"
	}
	return ""
}

func (p RawPreset) preset() tiling.Preset {
	return tiling.Preset{Left: *p.Left, Right: *p.Right, Top: *p.Top, Bottom: *p.Bottom}
}
