package tiling

import (
	"errors"
	"fmt"
	"math"

	"github.com/1broseidon/winplace/internal/platform"
)

var (
	// ErrOutOfRange reports an offset outside [0,100].
	ErrOutOfRange = errors.New("alignment offset out of range")
	// ErrDegenerateRegion reports left >= right or top >= bottom.
	ErrDegenerateRegion = errors.New("alignment region is empty")
)

// Alignment is a sub-rectangle of a work area expressed as left/right/top/bottom
// percentages of its width and height. Values are only obtainable through
// NewAlignment, so a non-zero Alignment always satisfies
// 0 <= left < right <= 100 and 0 <= top < bottom <= 100.
type Alignment struct {
	left, right, top, bottom float64
}

// NewAlignment validates the four offsets and returns an Alignment.
// Range is checked before ordering.
func NewAlignment(left, right, top, bottom float64) (Alignment, error) {
	offsets := []struct {
		name  string
		value float64
	}{
		{"left", left},
		{"right", right},
		{"top", top},
		{"bottom", bottom},
	}
	for _, o := range offsets {
		// NaN fails both comparisons and lands here.
		if !(o.value >= 0 && o.value <= 100) {
			return Alignment{}, fmt.Errorf("%w: %s=%g must be within [0,100]", ErrOutOfRange, o.name, o.value)
		}
	}
	if left >= right {
		return Alignment{}, fmt.Errorf("%w: left=%g must be less than right=%g", ErrDegenerateRegion, left, right)
	}
	if top >= bottom {
		return Alignment{}, fmt.Errorf("%w: top=%g must be less than bottom=%g", ErrDegenerateRegion, top, bottom)
	}
	return Alignment{left: left, right: right, top: top, bottom: bottom}, nil
}

func (a Alignment) Left() float64   { return a.left }
func (a Alignment) Right() float64  { return a.right }
func (a Alignment) Top() float64    { return a.top }
func (a Alignment) Bottom() float64 { return a.bottom }

// Validate re-checks the invariants. It catches the zero value, which
// callers can build without going through NewAlignment.
func (a Alignment) Validate() error {
	_, err := NewAlignment(a.left, a.right, a.top, a.bottom)
	return err
}

func (a Alignment) String() string {
	return fmt.Sprintf("left=%g right=%g top=%g bottom=%g", a.left, a.right, a.top, a.bottom)
}

// Translate maps an alignment onto a work area. Position is floored; size is
// rounded half up, so x+width may exceed the work area edge by one pixel.
func Translate(a Alignment, area platform.WorkArea) (platform.Rect, error) {
	if err := a.Validate(); err != nil {
		return platform.Rect{}, err
	}

	screenWidth := float64(area.Width())
	screenHeight := float64(area.Height())

	return platform.Rect{
		X:      int(math.Floor(a.left/100*screenWidth)) + area.Left,
		Y:      int(math.Floor(a.top/100*screenHeight)) + area.Top,
		Width:  int(math.Floor((a.right-a.left)/100*screenWidth + 0.5)),
		Height: int(math.Floor((a.bottom-a.top)/100*screenHeight + 0.5)),
	}, nil
}
