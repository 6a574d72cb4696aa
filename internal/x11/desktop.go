package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// allDesktops is the _NET_WM_DESKTOP value of sticky windows.
const allDesktops = 0xFFFFFFFF

// GetCurrentDesktop reads _NET_CURRENT_DESKTOP.
func (c *Connection) GetCurrentDesktop() (int, error) {
	desktop, err := ewmh.CurrentDesktopGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("_NET_CURRENT_DESKTOP: %w", err)
	}
	return int(desktop), nil
}

// GetWindowDesktop reads _NET_WM_DESKTOP; sticky windows report -1.
func (c *Connection) GetWindowDesktop(windowID xproto.Window) (int, error) {
	desktop, err := ewmh.WmDesktopGet(c.XUtil, windowID)
	if err != nil {
		return 0, fmt.Errorf("_NET_WM_DESKTOP of 0x%x: %w", uint32(windowID), err)
	}
	if desktop == allDesktops {
		return -1, nil
	}
	return int(desktop), nil
}

// IsOnCurrentDesktop is true for sticky windows, windows on the active
// desktop, and windows whose desktop cannot be determined.
func (c *Connection) IsOnCurrentDesktop(windowID xproto.Window) bool {
	desktop, err := c.GetWindowDesktop(windowID)
	if err != nil || desktop < 0 {
		return true
	}
	current, err := c.GetCurrentDesktop()
	return err != nil || desktop == current
}
