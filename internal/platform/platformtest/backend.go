// Package platformtest provides an in-memory platform.Backend for tests.
package platformtest

import (
	"errors"
	"fmt"
	"sync"

	"github.com/1broseidon/winplace/internal/platform"
)

// Window is a scripted top-level window.
type Window struct {
	ID      platform.WindowID
	PID     int
	Visible bool
	Title   string
	Class   string
	// Monitor is the monitor returned by MonitorFromWindow.
	Monitor platform.MonitorID
}

// MoveCall records one SetWindowPos invocation.
type MoveCall struct {
	Window platform.WindowID
	Bounds platform.Rect
}

// Backend is a scripted window system. Zero value has no windows and no
// monitors.
type Backend struct {
	mu sync.Mutex

	Windows  []Window
	Monitors []platform.Monitor
	// Processes maps pid to executable name. A pid missing here fails
	// ProcessName like a process that cannot be opened.
	Processes map[int]string

	EnumWindowsErr  error
	EnumMonitorsErr error
	SetWindowPosErr error

	Moves []MoveCall
	// ProcessQueries counts every ProcessName call, failed ones included.
	ProcessQueries int
	Closed         bool
}

var _ platform.Backend = (*Backend)(nil)

// ErrNoProcess is returned by ProcessName for unknown pids.
var ErrNoProcess = errors.New("process cannot be opened")

func (b *Backend) EnumWindows(visit func(platform.WindowID) bool) error {
	if b.EnumWindowsErr != nil {
		return b.EnumWindowsErr
	}
	b.mu.Lock()
	windows := append([]Window(nil), b.Windows...)
	b.mu.Unlock()

	for _, w := range windows {
		if !visit(w.ID) {
			return nil
		}
	}
	return nil
}

func (b *Backend) window(id platform.WindowID) (Window, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, w := range b.Windows {
		if w.ID == id {
			return w, true
		}
	}
	return Window{}, false
}

func (b *Backend) IsWindowVisible(id platform.WindowID) bool {
	w, ok := b.window(id)
	return ok && w.Visible
}

func (b *Backend) WindowText(id platform.WindowID) (string, error) {
	w, ok := b.window(id)
	if !ok {
		return "", fmt.Errorf("window %d not found", id)
	}
	return w.Title, nil
}

func (b *Backend) WindowClass(id platform.WindowID) (string, error) {
	w, ok := b.window(id)
	if !ok {
		return "", fmt.Errorf("window %d not found", id)
	}
	return w.Class, nil
}

func (b *Backend) WindowProcessID(id platform.WindowID) (int, error) {
	w, ok := b.window(id)
	if !ok {
		return 0, fmt.Errorf("window %d not found", id)
	}
	return w.PID, nil
}

func (b *Backend) ProcessName(pid int) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ProcessQueries++
	name, ok := b.Processes[pid]
	if !ok {
		return "", fmt.Errorf("pid %d: %w", pid, ErrNoProcess)
	}
	return name, nil
}

func (b *Backend) EnumMonitors() ([]platform.MonitorID, error) {
	if b.EnumMonitorsErr != nil {
		return nil, b.EnumMonitorsErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]platform.MonitorID, 0, len(b.Monitors))
	for _, m := range b.Monitors {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (b *Backend) MonitorInfo(id platform.MonitorID) (platform.Monitor, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, m := range b.Monitors {
		if m.ID == id {
			return m, nil
		}
	}
	return platform.Monitor{}, fmt.Errorf("monitor %d not found", id)
}

// MonitorFromWindow returns the window's scripted monitor, or the primary
// (else first) monitor.
func (b *Backend) MonitorFromWindow(id platform.WindowID) (platform.MonitorID, error) {
	if w, ok := b.window(id); ok && w.Monitor != 0 {
		return w.Monitor, nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.Monitors) == 0 {
		return 0, errors.New("no monitors")
	}
	for _, m := range b.Monitors {
		if m.Primary {
			return m.ID, nil
		}
	}
	return b.Monitors[0].ID, nil
}

func (b *Backend) SetWindowPos(id platform.WindowID, bounds platform.Rect) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Moves = append(b.Moves, MoveCall{Window: id, Bounds: bounds})
	return b.SetWindowPosErr
}

func (b *Backend) Close() error {
	b.Closed = true
	return nil
}

// Screen builds a monitor whose bounds and work area are both r.
func Screen(id platform.MonitorID, name string, r platform.Rect) platform.Monitor {
	return platform.Monitor{
		ID:       id,
		Name:     name,
		Bounds:   r,
		WorkArea: platform.WorkAreaFromRect(r),
	}
}
