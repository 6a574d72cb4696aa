package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// ClientWindows returns managed top-level windows, topmost first.
// _NET_CLIENT_LIST_STACKING is preferred; window managers that only publish
// _NET_CLIENT_LIST fall back to mapping order.
func (c *Connection) ClientWindows() ([]xproto.Window, error) {
	stacking, err := ewmh.ClientListStackingGet(c.XUtil)
	if err == nil && len(stacking) > 0 {
		ordered := make([]xproto.Window, len(stacking))
		for i, w := range stacking {
			ordered[len(stacking)-1-i] = w
		}
		return ordered, nil
	}
	return ewmh.ClientListGet(c.XUtil)
}

// IsViewable reports whether a window is mapped, not hidden (minimized) and
// on the current desktop.
func (c *Connection) IsViewable(windowID xproto.Window) bool {
	attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), windowID).Reply()
	if err != nil || attrs.MapState != xproto.MapStateViewable {
		return false
	}
	if states, err := ewmh.WmStateGet(c.XUtil, windowID); err == nil {
		for _, state := range states {
			if state == "_NET_WM_STATE_HIDDEN" {
				return false
			}
		}
	}
	return c.IsNormalWindow(windowID) && c.IsOnCurrentDesktop(windowID)
}

// WindowTitle returns _NET_WM_NAME, falling back to WM_NAME.
func (c *Connection) WindowTitle(windowID xproto.Window) (string, error) {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title, nil
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(title), nil
}

// WindowClass returns the class part of WM_CLASS.
func (c *Connection) WindowClass(windowID xproto.Window) (string, error) {
	wmClass, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(wmClass.Class), nil
}

// WindowPid returns the _NET_WM_PID of a window.
func (c *Connection) WindowPid(windowID xproto.Window) (int, error) {
	pid, err := ewmh.WmPidGet(c.XUtil, windowID)
	if err != nil {
		return 0, err
	}
	return int(pid), nil
}

// WindowGeometry returns the window rectangle in root coordinates.
func (c *Connection) WindowGeometry(windowID xproto.Window) (x, y, width, height int, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	return int(translate.DstX), int(translate.DstY), int(geom.Width), int(geom.Height), nil
}

// MoveResizeWindow moves and resizes a window to the specified geometry.
// The stacking order is left untouched. An error is returned when the
// window no longer exists or the server rejects the configure request.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	return moveResize(c, windowID, x, y, width, height)
}

// windowMover is the set of X requests a move is built from.
type windowMover interface {
	windowExists(w xproto.Window) error
	unmaximizeWindow(w xproto.Window)
	requestMoveResize(w xproto.Window, x, y, width, height int) error
	configureWindow(w xproto.Window, x, y, width, height int) error
}

func moveResize(m windowMover, w xproto.Window, x, y, width, height int) error {
	if err := m.windowExists(w); err != nil {
		return fmt.Errorf("window 0x%x no longer exists: %w", uint32(w), err)
	}

	// Maximized windows ignore geometry requests on most window managers.
	m.unmaximizeWindow(w)

	// Use EWMH MoveResize for better WM compatibility
	if err := m.requestMoveResize(w, x, y, width, height); err == nil {
		return nil
	}

	// Fallback to direct window manipulation
	if err := m.configureWindow(w, x, y, width, height); err != nil {
		return fmt.Errorf("failed to configure window 0x%x: %w", uint32(w), err)
	}
	return nil
}

func (c *Connection) windowExists(w xproto.Window) error {
	_, err := xproto.GetWindowAttributes(c.XUtil.Conn(), w).Reply()
	return err
}

func (c *Connection) requestMoveResize(w xproto.Window, x, y, width, height int) error {
	return ewmh.MoveresizeWindow(c.XUtil, w, x, y, width, height)
}

func (c *Connection) configureWindow(w xproto.Window, x, y, width, height int) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{uint32(int32(x)), uint32(int32(y)), uint32(width), uint32(height)}
	return xproto.ConfigureWindowChecked(c.XUtil.Conn(), w, mask, values).Check()
}

// unmaximizeWindow removes maximized state from a window
func (c *Connection) unmaximizeWindow(windowID xproto.Window) {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return
	}

	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT":
			ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateRemove, state)
		}
	}
}

// IsNormalWindow checks if a window is a normal application window
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine type, assume it's normal
		return true
	}

	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL", "_NET_WM_WINDOW_TYPE_DIALOG", "_NET_WM_WINDOW_TYPE_UTILITY":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}

	// If no specific type is set, assume it's normal
	return len(types) == 0
}
