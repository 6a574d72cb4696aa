//go:build linux

package platform

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/1broseidon/winplace/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/shirou/gopsutil/v4/process"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// Open connects to the X11 display named in opts (or $DISPLAY).
func Open(opts Options) (Backend, error) {
	conn, err := x11.NewConnection(opts.Display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Close closes the underlying X11 connection.
func (b *LinuxBackend) Close() error {
	if b != nil && b.conn != nil {
		b.conn.Close()
		b.conn = nil
	}
	return nil
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

// EnumWindows visits managed client windows, topmost first.
func (b *LinuxBackend) EnumWindows(visit func(WindowID) bool) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	clients, err := conn.ClientWindows()
	if err != nil {
		return fmt.Errorf("failed to list client windows: %w", err)
	}
	for _, w := range clients {
		if !visit(WindowID(w)) {
			return nil
		}
	}
	return nil
}

func (b *LinuxBackend) IsWindowVisible(id WindowID) bool {
	conn, err := b.connection()
	if err != nil {
		return false
	}
	return conn.IsViewable(xproto.Window(id))
}

func (b *LinuxBackend) WindowText(id WindowID) (string, error) {
	conn, err := b.connection()
	if err != nil {
		return "", err
	}
	return conn.WindowTitle(xproto.Window(id))
}

func (b *LinuxBackend) WindowClass(id WindowID) (string, error) {
	conn, err := b.connection()
	if err != nil {
		return "", err
	}
	return conn.WindowClass(xproto.Window(id))
}

func (b *LinuxBackend) WindowProcessID(id WindowID) (int, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}
	return conn.WindowPid(xproto.Window(id))
}

// ProcessName resolves the executable base name of pid, falling back to
// the kernel's command name for processes whose exe link is not readable
// by the current user.
func (b *LinuxBackend) ProcessName(pid int) (string, error) {
	return procName(pid)
}

func procName(pid int) (string, error) {
	if pid <= 0 {
		return "", fmt.Errorf("invalid pid %d", pid)
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", fmt.Errorf("failed to open process %d: %w", pid, err)
	}

	if exe, err := p.Exe(); err == nil && exe != "" {
		return filepath.Base(strings.TrimSuffix(exe, " (deleted)")), nil
	}

	name, err := p.Name()
	if err != nil {
		return "", fmt.Errorf("failed to read process %d name: %w", pid, err)
	}
	return name, nil
}

// EnumMonitors returns RandR CRTC ids for active monitors.
func (b *LinuxBackend) EnumMonitors() ([]MonitorID, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}
	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}
	ids := make([]MonitorID, 0, len(monitors))
	for _, m := range monitors {
		ids = append(ids, MonitorID(m.ID))
	}
	return ids, nil
}

// MonitorInfo re-queries RandR and computes the work area for one monitor.
func (b *LinuxBackend) MonitorInfo(id MonitorID) (Monitor, error) {
	conn, err := b.connection()
	if err != nil {
		return Monitor{}, err
	}
	monitors, err := conn.GetMonitors()
	if err != nil {
		return Monitor{}, err
	}
	for _, m := range monitors {
		if MonitorID(m.ID) == id {
			return monitorFromX11(m, conn.WorkArea(m)), nil
		}
	}
	return Monitor{}, fmt.Errorf("monitor %d not found", id)
}

func (b *LinuxBackend) MonitorFromWindow(id WindowID) (MonitorID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}
	m, err := conn.MonitorForWindow(xproto.Window(id))
	if err != nil {
		return 0, err
	}
	return MonitorID(m.ID), nil
}

// SetWindowPos issues an EWMH moveresize; the stacking order is unchanged.
func (b *LinuxBackend) SetWindowPos(id WindowID, bounds Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MoveResizeWindow(xproto.Window(id), bounds.X, bounds.Y, bounds.Width, bounds.Height)
}

func monitorFromX11(m x11.Monitor, work x11.Monitor) Monitor {
	return Monitor{
		ID:       MonitorID(m.ID),
		Name:     m.Name,
		Primary:  m.Primary,
		Bounds:   Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height},
		WorkArea: WorkAreaFromRect(Rect{X: work.X, Y: work.Y, Width: work.Width, Height: work.Height}),
	}
}
