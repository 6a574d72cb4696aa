package tiling

import (
	"fmt"
	"sort"
	"strings"
)

// Preset is a named alignment as raw percentages.
type Preset struct {
	Left   float64 `yaml:"left" json:"left"`
	Right  float64 `yaml:"right" json:"right"`
	Top    float64 `yaml:"top" json:"top"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
}

// Alignment validates the preset.
func (p Preset) Alignment() (Alignment, error) {
	return NewAlignment(p.Left, p.Right, p.Top, p.Bottom)
}

// BuiltinPresets are always available; config presets with the same name win.
func BuiltinPresets() map[string]Preset {
	return map[string]Preset{
		"full":             {Left: 0, Right: 100, Top: 0, Bottom: 100},
		"left-half":        {Left: 0, Right: 50, Top: 0, Bottom: 100},
		"right-half":       {Left: 50, Right: 100, Top: 0, Bottom: 100},
		"top-half":         {Left: 0, Right: 100, Top: 0, Bottom: 50},
		"bottom-half":      {Left: 0, Right: 100, Top: 50, Bottom: 100},
		"left-third":       {Left: 0, Right: 100.0 / 3, Top: 0, Bottom: 100},
		"center-third":     {Left: 100.0 / 3, Right: 200.0 / 3, Top: 0, Bottom: 100},
		"right-third":      {Left: 200.0 / 3, Right: 100, Top: 0, Bottom: 100},
		"left-two-thirds":  {Left: 0, Right: 200.0 / 3, Top: 0, Bottom: 100},
		"right-two-thirds": {Left: 100.0 / 3, Right: 100, Top: 0, Bottom: 100},
		"center":           {Left: 20, Right: 80, Top: 10, Bottom: 90},
	}
}

// MergePresets overlays custom presets on the builtins.
func MergePresets(custom map[string]Preset) map[string]Preset {
	merged := BuiltinPresets()
	for name, p := range custom {
		merged[strings.ToLower(name)] = p
	}
	return merged
}

// LookupPreset resolves a preset name case-insensitively.
func LookupPreset(presets map[string]Preset, name string) (Alignment, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Alignment{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(presets), ", "))
	}
	a, err := p.Alignment()
	if err != nil {
		return Alignment{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return a, nil
}

// PresetNames returns preset names in sorted order.
func PresetNames(presets map[string]Preset) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
