//go:build windows

package platform

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	swpNoZOrder      = 0x0004
	swpNoOwnerZOrder = 0x0200

	monitorDefaultToPrimary = 0x00000001
	monitorInfoFPrimary     = 0x00000001

	maxClassName = 256
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
	procGetWindowTextLength = user32.NewProc("GetWindowTextLengthW")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	procMonitorFromWindow   = user32.NewProc("MonitorFromWindow")
	procSetWindowPos        = user32.NewProc("SetWindowPos")
)

// monitorInfoEx mirrors MONITORINFOEXW.
type monitorInfoEx struct {
	cbSize    uint32
	rcMonitor windows.Rect
	rcWork    windows.Rect
	dwFlags   uint32
	szDevice  [32]uint16
}

// The enumeration callbacks are created once per process: Windows limits the
// number of callbacks a Go program may create. The active visitor is handed
// over through package state guarded by enumMu.
var (
	enumMu         sync.Mutex
	enumWindowsCB  uintptr
	enumMonitorsCB uintptr
	callbacksOnce  sync.Once

	activeWindowVisit func(WindowID) bool
	windowVisitStop   bool
	collectedMonitors []MonitorID
)

func initCallbacks() {
	callbacksOnce.Do(func() {
		enumWindowsCB = windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
			if activeWindowVisit(WindowID(hwnd)) {
				return 1
			}
			windowVisitStop = true
			return 0
		})
		enumMonitorsCB = windows.NewCallback(func(hmon windows.Handle, _ windows.Handle, _ *windows.Rect, _ uintptr) uintptr {
			collectedMonitors = append(collectedMonitors, MonitorID(hmon))
			return 1
		})
	})
}

// WindowsBackend implements Backend on top of user32 and kernel32.
type WindowsBackend struct{}

var _ Backend = (*WindowsBackend)(nil)

// Open returns the Win32 backend. Options are ignored.
func Open(Options) (Backend, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("failed to load user32.dll: %w", err)
	}
	initCallbacks()
	return &WindowsBackend{}, nil
}

func (b *WindowsBackend) Close() error { return nil }

// EnumWindows walks top-level windows in z-order via EnumWindows.
func (b *WindowsBackend) EnumWindows(visit func(WindowID) bool) error {
	enumMu.Lock()
	defer enumMu.Unlock()

	activeWindowVisit = visit
	windowVisitStop = false
	defer func() { activeWindowVisit = nil }()

	err := windows.EnumWindows(enumWindowsCB, nil)
	if windowVisitStop {
		// EnumWindows reports FALSE when the callback stops early.
		return nil
	}
	if err != nil {
		return fmt.Errorf("EnumWindows: %w", err)
	}
	return nil
}

func (b *WindowsBackend) IsWindowVisible(id WindowID) bool {
	return windows.IsWindowVisible(windows.HWND(id))
}

func (b *WindowsBackend) WindowText(id WindowID) (string, error) {
	n, _, _ := procGetWindowTextLength.Call(uintptr(id))
	if n == 0 {
		return "", nil
	}
	buf := make([]uint16, n+1)
	copied, _, callErr := procGetWindowTextW.Call(uintptr(id), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if copied == 0 {
		if errno, ok := callErr.(windows.Errno); ok && errno != 0 {
			return "", fmt.Errorf("GetWindowTextW: %w", errno)
		}
		return "", nil
	}
	return windows.UTF16ToString(buf[:copied]), nil
}

func (b *WindowsBackend) WindowClass(id WindowID) (string, error) {
	buf := make([]uint16, maxClassName)
	n, err := windows.GetClassName(windows.HWND(id), &buf[0], int32(len(buf)))
	if err != nil {
		return "", fmt.Errorf("GetClassName: %w", err)
	}
	return windows.UTF16ToString(buf[:n]), nil
}

func (b *WindowsBackend) WindowProcessID(id WindowID) (int, error) {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(windows.HWND(id), &pid); err != nil {
		return 0, fmt.Errorf("GetWindowThreadProcessId: %w", err)
	}
	return int(pid), nil
}

// ProcessName opens the process with limited query rights and returns the
// base name of its image. The process handle is always closed.
func (b *WindowsBackend) ProcessName(pid int) (string, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return "", fmt.Errorf("OpenProcess(%d): %w", pid, err)
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return "", fmt.Errorf("QueryFullProcessImageName(%d): %w", pid, err)
	}
	return filepath.Base(windows.UTF16ToString(buf[:size])), nil
}

// EnumMonitors lists display monitors in EnumDisplayMonitors order.
func (b *WindowsBackend) EnumMonitors() ([]MonitorID, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	collectedMonitors = nil
	ok, _, callErr := procEnumDisplayMonitors.Call(0, 0, enumMonitorsCB, 0)
	ids := collectedMonitors
	collectedMonitors = nil
	if ok == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors: %w", errnoOrUnknown(callErr))
	}
	return ids, nil
}

func (b *WindowsBackend) MonitorInfo(id MonitorID) (Monitor, error) {
	info := monitorInfoEx{}
	info.cbSize = uint32(unsafe.Sizeof(info))
	ok, _, callErr := procGetMonitorInfoW.Call(uintptr(id), uintptr(unsafe.Pointer(&info)))
	if ok == 0 {
		return Monitor{}, fmt.Errorf("GetMonitorInfoW: %w", errnoOrUnknown(callErr))
	}
	return Monitor{
		ID:      id,
		Name:    windows.UTF16ToString(info.szDevice[:]),
		Primary: info.dwFlags&monitorInfoFPrimary != 0,
		Bounds: Rect{
			X:      int(info.rcMonitor.Left),
			Y:      int(info.rcMonitor.Top),
			Width:  int(info.rcMonitor.Right - info.rcMonitor.Left),
			Height: int(info.rcMonitor.Bottom - info.rcMonitor.Top),
		},
		WorkArea: WorkArea{
			Left:   int(info.rcWork.Left),
			Top:    int(info.rcWork.Top),
			Right:  int(info.rcWork.Right),
			Bottom: int(info.rcWork.Bottom),
		},
	}, nil
}

func (b *WindowsBackend) MonitorFromWindow(id WindowID) (MonitorID, error) {
	hmon, _, _ := procMonitorFromWindow.Call(uintptr(id), monitorDefaultToPrimary)
	if hmon == 0 {
		return 0, fmt.Errorf("MonitorFromWindow returned no monitor")
	}
	return MonitorID(hmon), nil
}

// SetWindowPos moves and resizes without touching the z-order or the
// owner's z-order.
func (b *WindowsBackend) SetWindowPos(id WindowID, bounds Rect) error {
	ok, _, callErr := procSetWindowPos.Call(
		uintptr(id),
		0,
		uintptr(int32(bounds.X)),
		uintptr(int32(bounds.Y)),
		uintptr(int32(bounds.Width)),
		uintptr(int32(bounds.Height)),
		swpNoZOrder|swpNoOwnerZOrder,
	)
	if ok == 0 {
		return fmt.Errorf("SetWindowPos: %w", errnoOrUnknown(callErr))
	}
	return nil
}

func errnoOrUnknown(err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) && errno != 0 {
		return errno
	}
	return errors.New("unknown error")
}
