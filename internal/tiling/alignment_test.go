package tiling

import (
	"errors"
	"math"
	"testing"

	"github.com/1broseidon/winplace/internal/platform"
)

func mustAlignment(t *testing.T, left, right, top, bottom float64) Alignment {
	t.Helper()
	a, err := NewAlignment(left, right, top, bottom)
	if err != nil {
		t.Fatalf("NewAlignment(%g,%g,%g,%g): %v", left, right, top, bottom, err)
	}
	return a
}

func TestTranslate_FullScreenIsExact(t *testing.T) {
	area := platform.WorkArea{Left: 1920, Top: 30, Right: 3840, Bottom: 1080}
	got, err := Translate(mustAlignment(t, 0, 100, 0, 100), area)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	want := platform.Rect{X: 1920, Y: 30, Width: 1920, Height: 1050}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestTranslate_LeftHalf(t *testing.T) {
	area := platform.WorkArea{Left: 0, Top: 0, Right: 1920, Bottom: 1080}
	got, err := Translate(mustAlignment(t, 0, 50, 0, 100), area)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	want := platform.Rect{X: 0, Y: 0, Width: 960, Height: 1080}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestTranslate_FloorsPositionAndRoundsSize(t *testing.T) {
	// W=1001: x = floor(33.3/100*1001) = floor(333.333) = 333,
	// width = floor(33.4/100*1001+0.5) = floor(334.834) = 334.
	area := platform.WorkArea{Left: 0, Top: 0, Right: 1001, Bottom: 101}
	got, err := Translate(mustAlignment(t, 33.3, 66.7, 0.5, 50), area)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got.X != 333 || got.Width != 334 {
		t.Fatalf("expected x=333 width=334, got x=%d width=%d", got.X, got.Width)
	}
	// y = floor(0.505) = 0, height = floor(49.5/100*101+0.5) = floor(50.495) = 50
	if got.Y != 0 || got.Height != 50 {
		t.Fatalf("expected y=0 height=50, got y=%d height=%d", got.Y, got.Height)
	}
}

func TestTranslate_NegativeOriginMonitor(t *testing.T) {
	area := platform.WorkArea{Left: -1280, Top: -200, Right: 0, Bottom: 824}
	got, err := Translate(mustAlignment(t, 50, 100, 50, 100), area)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	want := platform.Rect{X: -640, Y: 312, Width: 640, Height: 512}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestTranslate_StaysWithinWorkArea(t *testing.T) {
	areas := []platform.WorkArea{
		{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
		{Left: 0, Top: 0, Right: 1366, Bottom: 738},
		{Left: -1024, Top: 17, Right: 0, Bottom: 785},
		{Left: 5, Top: 5, Right: 6, Bottom: 6},
	}
	steps := []float64{0, 0.1, 12.5, 33.333, 49.99, 50, 66.667, 99.9, 100}

	for _, area := range areas {
		w, h := area.Width(), area.Height()
		for _, l := range steps {
			for _, r := range steps {
				if l >= r {
					continue
				}
				a := mustAlignment(t, l, r, l, r)
				got, err := Translate(a, area)
				if err != nil {
					t.Fatalf("translate: %v", err)
				}
				if got.Width < 0 || got.Width > w || got.Height < 0 || got.Height > h {
					t.Fatalf("%v on %+v: size %dx%d outside [0,%d]x[0,%d]", a, area, got.Width, got.Height, w, h)
				}
				if got.X+got.Width > area.Right+1 || got.Y+got.Height > area.Bottom+1 {
					t.Fatalf("%v on %+v: rect %+v overflows work area", a, area, got)
				}
				again, _ := Translate(a, area)
				if again != got {
					t.Fatalf("translate not idempotent: %+v vs %+v", got, again)
				}
			}
		}
	}
}

func TestTranslate_RejectsZeroValue(t *testing.T) {
	_, err := Translate(Alignment{}, platform.WorkArea{Right: 100, Bottom: 100})
	if !errors.Is(err, ErrDegenerateRegion) {
		t.Fatalf("expected ErrDegenerateRegion, got %v", err)
	}
}

func TestNewAlignment_Errors(t *testing.T) {
	tests := []struct {
		name                     string
		left, right, top, bottom float64
		want                     error
	}{
		{"left below zero", -1, 50, 0, 100, ErrOutOfRange},
		{"right above hundred", 0, 100.5, 0, 100, ErrOutOfRange},
		{"top NaN", 0, 50, math.NaN(), 100, ErrOutOfRange},
		{"bottom infinite", 0, 50, 0, math.Inf(1), ErrOutOfRange},
		{"left after right", 60, 50, 0, 100, ErrDegenerateRegion},
		{"equal horizontal", 50, 50, 0, 100, ErrDegenerateRegion},
		{"top after bottom", 0, 100, 80, 20, ErrDegenerateRegion},
		{"range checked first", 60, 50, 0, 101, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAlignment(tt.left, tt.right, tt.top, tt.bottom)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewAlignment_Accessors(t *testing.T) {
	a := mustAlignment(t, 10, 20, 30, 40)
	if a.Left() != 10 || a.Right() != 20 || a.Top() != 30 || a.Bottom() != 40 {
		t.Fatalf("unexpected accessors: %v", a)
	}
}
