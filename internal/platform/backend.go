package platform

import "errors"

// WindowID is a platform-neutral top-level window identifier.
type WindowID uintptr

// MonitorID is a platform-neutral monitor identifier.
type MonitorID uintptr

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// WorkArea is a monitor's usable rectangle expressed as edges.
type WorkArea struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Width returns Right-Left.
func (w WorkArea) Width() int { return w.Right - w.Left }

// Height returns Bottom-Top.
func (w WorkArea) Height() int { return w.Bottom - w.Top }

// WorkAreaFromRect converts an origin/size rectangle to edge form.
func WorkAreaFromRect(r Rect) WorkArea {
	return WorkArea{Left: r.X, Top: r.Y, Right: r.X + r.Width, Bottom: r.Y + r.Height}
}

// Monitor describes a physical display and its usable work area.
type Monitor struct {
	ID       MonitorID
	Name     string
	Bounds   Rect
	WorkArea WorkArea
	Primary  bool
}

// ErrUnsupported is returned by Open on platforms without a backend.
var ErrUnsupported = errors.New("window system not supported on this platform")

// Options configures how a backend connects to the window system.
type Options struct {
	// Display overrides the X11 display name. Ignored on Windows.
	Display string
}

// Backend abstracts the window-system operations needed to find and place a
// top-level window.
type Backend interface {
	// EnumWindows calls visit for each top-level window in system order until
	// visit returns false.
	EnumWindows(visit func(WindowID) bool) error
	IsWindowVisible(id WindowID) bool
	WindowText(id WindowID) (string, error)
	WindowClass(id WindowID) (string, error)
	WindowProcessID(id WindowID) (int, error)
	// ProcessName returns the base executable name of a process.
	ProcessName(pid int) (string, error)

	EnumMonitors() ([]MonitorID, error)
	MonitorInfo(id MonitorID) (Monitor, error)
	// MonitorFromWindow returns the monitor containing most of the window,
	// falling back to the primary monitor.
	MonitorFromWindow(id WindowID) (MonitorID, error)

	// SetWindowPos moves and resizes a window without changing its z-order.
	SetWindowPos(id WindowID, bounds Rect) error

	Close() error
}
