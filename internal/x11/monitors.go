package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Monitor represents a physical display
type Monitor struct {
	ID      int
	Name    string
	Primary bool
	X       int
	Y       int
	Width   int
	Height  int
}

// Contains reports whether the point lies inside the monitor.
func (m Monitor) Contains(x, y int) bool {
	return x >= m.X && x < m.X+m.Width && y >= m.Y && y < m.Y+m.Height
}

// GetMonitors retrieves all active monitors using XRandR, in CRTC order.
// Monitor IDs are the CRTC XIDs.
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primaryOutput randr.Output
	if reply, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		primaryOutput = reply.Output
	}

	var monitors []Monitor

	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		primary := false
		for _, out := range crtcInfo.Outputs {
			if primaryOutput != 0 && out == primaryOutput {
				primary = true
			}
		}

		monitors = append(monitors, Monitor{
			ID:      int(crtc),
			Name:    outputName,
			Primary: primary,
			X:       int(crtcInfo.X),
			Y:       int(crtcInfo.Y),
			Width:   int(crtcInfo.Width),
			Height:  int(crtcInfo.Height),
		})
	}

	return monitors, nil
}

// PrimaryMonitor returns the RandR primary monitor, or the first one when no
// primary output is configured.
func PrimaryMonitor(monitors []Monitor) *Monitor {
	if len(monitors) == 0 {
		return nil
	}
	for i := range monitors {
		if monitors[i].Primary {
			return &monitors[i]
		}
	}
	return &monitors[0]
}

// MonitorForWindow returns the monitor containing the center of the window,
// falling back to the primary monitor.
func (c *Connection) MonitorForWindow(windowID xproto.Window) (*Monitor, error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return nil, err
	}
	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors found")
	}
	if mon := findMonitorForWindow(c, monitors, windowID); mon != nil {
		return mon, nil
	}
	return PrimaryMonitor(monitors), nil
}

// WorkArea returns the monitor geometry reduced by dock struts, or by the
// intersection with _NET_WORKAREA when no dock publishes struts.
func (c *Connection) WorkArea(monitor Monitor) Monitor {
	area := monitor
	if applyDockStruts(c, &area) {
		return area
	}

	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return area
	}
	desktopIndex := 0
	if currentDesktop, err := c.GetCurrentDesktop(); err == nil && currentDesktop < len(workArea) {
		desktopIndex = currentDesktop
	}
	wa := workArea[desktopIndex]

	x1 := max(area.X, int(wa.X))
	y1 := max(area.Y, int(wa.Y))
	x2 := min(area.X+area.Width, int(wa.X)+int(wa.Width))
	y2 := min(area.Y+area.Height, int(wa.Y)+int(wa.Height))

	// Only adjust if work area intersects with our monitor
	if x2 > x1 && y2 > y1 {
		area.X = x1
		area.Y = y1
		area.Width = x2 - x1
		area.Height = y2 - y1
	}
	return area
}

// box is a half-open rectangle [x1,x2) x [y1,y2).
type box struct {
	x1, y1, x2, y2 int
}

func (m Monitor) box() box {
	return box{x1: m.X, y1: m.Y, x2: m.X + m.Width, y2: m.Y + m.Height}
}

func (b box) intersect(o box) box {
	r := box{x1: max(b.x1, o.x1), y1: max(b.y1, o.y1), x2: min(b.x2, o.x2), y2: min(b.y2, o.y2)}
	if r.x2 <= r.x1 || r.y2 <= r.y1 {
		return box{}
	}
	return r
}

func (b box) width() int  { return b.x2 - b.x1 }
func (b box) height() int { return b.y2 - b.y1 }

// insets accumulates the space docks reserve on each edge of a monitor.
type insets struct {
	left, right, top, bottom int
}

func (i insets) empty() bool {
	return i.left == 0 && i.right == 0 && i.top == 0 && i.bottom == 0
}

func applyDockStruts(c *Connection, monitor *Monitor) bool {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return false
	}
	rootWidth := int(rootGeom.Width)
	rootHeight := int(rootGeom.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return false
	}

	var reserved insets
	for _, windowID := range clients {
		if !isDock(c, windowID) {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
			reserved = addStrut(*monitor, rootWidth, rootHeight, sp, reserved)
			continue
		}

		// Some docks only set _NET_WM_STRUT, which spans the whole root edge.
		if s, err := ewmh.WmStrutGet(c.XUtil, windowID); err == nil {
			reserved = addStrut(*monitor, rootWidth, rootHeight, fullEdgeStrut(s, rootWidth, rootHeight), reserved)
		}
	}

	if reserved.empty() {
		return false
	}

	monitor.X += reserved.left
	monitor.Y += reserved.top
	monitor.Width = max(monitor.Width-reserved.left-reserved.right, 1)
	monitor.Height = max(monitor.Height-reserved.top-reserved.bottom, 1)
	return true
}

func isDock(c *Connection, windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		return false
	}
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DOCK" {
			return true
		}
	}
	return false
}

func fullEdgeStrut(s *ewmh.WmStrut, rootWidth, rootHeight int) *ewmh.WmStrutPartial {
	return &ewmh.WmStrutPartial{
		Left:       s.Left,
		Right:      s.Right,
		Top:        s.Top,
		Bottom:     s.Bottom,
		LeftEndY:   uint(rootHeight - 1),
		RightEndY:  uint(rootHeight - 1),
		TopEndX:    uint(rootWidth - 1),
		BottomEndX: uint(rootWidth - 1),
	}
}

// addStrut widens acc by the part of a dock strut that overlaps the monitor.
// Strut ranges are inclusive; edges are measured from the root window.
func addStrut(monitor Monitor, rootWidth, rootHeight int, sp *ewmh.WmStrutPartial, acc insets) insets {
	mon := monitor.box()

	if sp.Top > 0 {
		r := mon.intersect(box{x1: int(sp.TopStartX), y1: 0, x2: int(sp.TopEndX) + 1, y2: int(sp.Top)})
		acc.top = max(acc.top, r.height())
	}
	if sp.Bottom > 0 {
		r := mon.intersect(box{x1: int(sp.BottomStartX), y1: rootHeight - int(sp.Bottom), x2: int(sp.BottomEndX) + 1, y2: rootHeight})
		acc.bottom = max(acc.bottom, r.height())
	}
	if sp.Left > 0 {
		r := mon.intersect(box{x1: 0, y1: int(sp.LeftStartY), x2: int(sp.Left), y2: int(sp.LeftEndY) + 1})
		acc.left = max(acc.left, r.width())
	}
	if sp.Right > 0 {
		r := mon.intersect(box{x1: rootWidth - int(sp.Right), y1: int(sp.RightStartY), x2: rootWidth, y2: int(sp.RightEndY) + 1})
		acc.right = max(acc.right, r.width())
	}
	return acc
}

func findMonitorForWindow(c *Connection, monitors []Monitor, windowID xproto.Window) *Monitor {
	x, y, width, height, err := c.WindowGeometry(windowID)
	if err != nil {
		return nil
	}

	centerX := x + width/2
	centerY := y + height/2
	for i := range monitors {
		if monitors[i].Contains(centerX, centerY) {
			return &monitors[i]
		}
	}
	return nil
}
