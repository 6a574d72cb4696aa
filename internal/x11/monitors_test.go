package x11

import (
	"testing"

	"github.com/BurntSushi/xgbutil/ewmh"
)

func TestAddStrut_BottomPanelOnlyAffectsItsMonitor(t *testing.T) {
	left := Monitor{X: 0, Y: 0, Width: 1920, Height: 1080}
	right := Monitor{X: 1920, Y: 0, Width: 1920, Height: 1080}
	panel := &ewmh.WmStrutPartial{Bottom: 40, BottomStartX: 0, BottomEndX: 1919}

	got := addStrut(left, 3840, 1080, panel, insets{})
	if got.bottom != 40 || got.top != 0 || got.left != 0 || got.right != 0 {
		t.Fatalf("left monitor: unexpected insets %+v", got)
	}

	got = addStrut(right, 3840, 1080, panel, insets{})
	if !got.empty() {
		t.Fatalf("right monitor: expected no insets, got %+v", got)
	}
}

func TestAddStrut_KeepsLargestPerEdge(t *testing.T) {
	mon := Monitor{X: 0, Y: 0, Width: 1000, Height: 800}
	acc := addStrut(mon, 1000, 800, &ewmh.WmStrutPartial{Left: 30, LeftEndY: 799}, insets{})
	acc = addStrut(mon, 1000, 800, &ewmh.WmStrutPartial{Left: 10, LeftEndY: 799}, acc)
	if acc.left != 30 {
		t.Fatalf("expected left inset 30, got %d", acc.left)
	}
}

func TestFullEdgeStrut_SpansRoot(t *testing.T) {
	sp := fullEdgeStrut(&ewmh.WmStrut{Top: 24}, 2560, 1440)
	mon := Monitor{X: 1280, Y: 0, Width: 1280, Height: 1440}
	acc := addStrut(mon, 2560, 1440, sp, insets{})
	if acc.top != 24 {
		t.Fatalf("expected top inset 24, got %d", acc.top)
	}
}

func TestMonitorContains(t *testing.T) {
	mon := Monitor{X: -1280, Y: 0, Width: 1280, Height: 1024}
	if !mon.Contains(-1, 0) {
		t.Fatalf("expected (-1,0) inside")
	}
	if mon.Contains(0, 0) {
		t.Fatalf("expected (0,0) outside")
	}
}

func TestPrimaryMonitor(t *testing.T) {
	if PrimaryMonitor(nil) != nil {
		t.Fatalf("expected nil for empty list")
	}
	mons := []Monitor{{ID: 1}, {ID: 2, Primary: true}}
	if got := PrimaryMonitor(mons); got.ID != 2 {
		t.Fatalf("expected primary id 2, got %d", got.ID)
	}
	mons[1].Primary = false
	if got := PrimaryMonitor(mons); got.ID != 1 {
		t.Fatalf("expected fallback id 1, got %d", got.ID)
	}
}
