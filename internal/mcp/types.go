package mcp

import "github.com/1broseidon/winplace/internal/platform"

// PlaceWindowInput is the input for the place_window tool.
type PlaceWindowInput struct {
	Process string `json:"process" jsonschema:"required,Executable name of the owning process (e.g. firefox or Notes.exe), matched case-insensitively"`
	Title   string `json:"title,omitempty" jsonschema:"Optional exact window title filter, case-insensitive"`
	Class   string `json:"class,omitempty" jsonschema:"Optional exact window class filter, case-insensitive"`
	Monitor *int   `json:"monitor,omitempty" jsonschema:"1-based monitor index. When omitted the configured fallback monitor is used (default: the monitor containing the window)."`

	Preset string   `json:"preset,omitempty" jsonschema:"Named alignment preset (see list_presets). Mutually exclusive with left/right/top/bottom."`
	Left   *float64 `json:"left,omitempty" jsonschema:"Left edge as a percentage of the work area width (0-100)"`
	Right  *float64 `json:"right,omitempty" jsonschema:"Right edge as a percentage of the work area width (0-100)"`
	Top    *float64 `json:"top,omitempty" jsonschema:"Top edge as a percentage of the work area height (0-100)"`
	Bottom *float64 `json:"bottom,omitempty" jsonschema:"Bottom edge as a percentage of the work area height (0-100)"`

	DryRun bool `json:"dry_run,omitempty" jsonschema:"When true, compute the target rectangle without moving the window"`
}

// PlaceWindowOutput is the output for the place_window tool.
type PlaceWindowOutput struct {
	Window    string `json:"window"`
	Monitor   string `json:"monitor"`
	Alignment string `json:"alignment"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Applied   bool   `json:"applied"`
	Warning   string `json:"warning,omitempty"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	Process string `json:"process,omitempty" jsonschema:"Optional process name filter, case-insensitive"`
}

// WindowEntry describes one visible window.
type WindowEntry struct {
	ID      string `json:"id"`
	PID     int    `json:"pid"`
	Process string `json:"process"`
	Title   string `json:"title"`
	Class   string `json:"class"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowEntry `json:"windows"`
}

// ListMonitorsInput is the input for the list_monitors tool.
type ListMonitorsInput struct{}

// MonitorEntry describes one monitor.
type MonitorEntry struct {
	Index    int               `json:"index"`
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Primary  bool              `json:"primary"`
	Bounds   platform.Rect     `json:"bounds"`
	WorkArea platform.WorkArea `json:"work_area"`
}

// ListMonitorsOutput is the output for the list_monitors tool.
type ListMonitorsOutput struct {
	Monitors []MonitorEntry `json:"monitors"`
}

// ListPresetsInput is the input for the list_presets tool.
type ListPresetsInput struct{}

// PresetInfo describes a named alignment.
type PresetInfo struct {
	Name   string  `json:"name"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// ListPresetsOutput is the output for the list_presets tool.
type ListPresetsOutput struct {
	Presets []PresetInfo `json:"presets"`
}
