// Package placement finds a window, picks its target monitor and moves it
// to a percentage-aligned region of that monitor's work area.
package placement

import (
	"fmt"

	"github.com/1broseidon/winplace/internal/finder"
	"github.com/1broseidon/winplace/internal/logging"
	"github.com/1broseidon/winplace/internal/monitors"
	"github.com/1broseidon/winplace/internal/platform"
	"github.com/1broseidon/winplace/internal/tiling"
)

// Fallback selects the monitor used when a request has no monitor index.
type Fallback string

const (
	// FallbackWindow uses the monitor currently containing the window.
	FallbackWindow Fallback = "window"
	// FallbackPrimary uses the primary monitor.
	FallbackPrimary Fallback = "primary"
)

// Request describes one placement. Offsets are raw percentages and are
// validated during placement.
type Request struct {
	Criteria finder.Criteria
	// Monitor is the 1-based monitor index; nil selects the fallback monitor.
	Monitor *int

	Left, Right, Top, Bottom float64

	// DryRun resolves and translates without moving the window.
	DryRun bool
}

// ResolvedTarget is everything needed for the final move.
type ResolvedTarget struct {
	Window    platform.WindowID
	Monitor   platform.MonitorID
	Alignment tiling.Alignment
}

// Result reports what a placement did.
type Result struct {
	Target   ResolvedTarget
	WorkArea platform.WorkArea
	Bounds   platform.Rect
	// Applied is false for dry runs and for best-effort moves that failed.
	Applied bool
	// ApplyErr is the swallowed move error in best-effort mode.
	ApplyErr error
}

// Options tune a Placer.
type Options struct {
	// StrictApply surfaces move failures as KindApplyFailed.
	StrictApply bool
	Fallback    Fallback
}

// Placer runs placements against a window system.
type Placer struct {
	backend platform.Backend
	finder  *finder.Finder
	logger  *logging.Logger
	opts    Options
}

// NewPlacer returns a Placer. logger may be nil.
func NewPlacer(backend platform.Backend, logger *logging.Logger, opts Options) *Placer {
	if opts.Fallback == "" {
		opts.Fallback = FallbackWindow
	}
	return &Placer{
		backend: backend,
		finder:  finder.New(backend, logger),
		logger:  logger,
		opts:    opts,
	}
}

// Place runs match, resolve, validate, translate and apply in order and stops
// at the first failure, which is returned as *Error.
func (p *Placer) Place(req Request) (Result, error) {
	var res Result

	window, err := p.finder.Find(req.Criteria)
	if err != nil {
		return res, p.fail("match", err)
	}
	res.Target.Window = window

	monitor, err := p.resolveMonitor(req.Monitor, window)
	if err != nil {
		return res, p.fail("resolve", err)
	}
	res.Target.Monitor = monitor

	alignment, err := tiling.NewAlignment(req.Left, req.Right, req.Top, req.Bottom)
	if err != nil {
		return res, p.fail("validate", err)
	}
	res.Target.Alignment = alignment

	area, err := monitors.WorkArea(p.backend, monitor)
	if err != nil {
		return res, p.fail("resolve", err)
	}
	res.WorkArea = area

	bounds, err := tiling.Translate(alignment, area)
	if err != nil {
		return res, p.fail("translate", err)
	}
	res.Bounds = bounds
	p.logger.Debug(logging.ActionTranslate, "target computed", map[string]any{
		"alignment": alignment.String(),
		"work_area": fmt.Sprintf("%d,%d-%d,%d", area.Left, area.Top, area.Right, area.Bottom),
		"bounds":    fmt.Sprintf("%d,%d %dx%d", bounds.X, bounds.Y, bounds.Width, bounds.Height),
	})

	if req.DryRun {
		return res, nil
	}

	if err := p.apply(res.Target, bounds); err != nil {
		if p.opts.StrictApply {
			return res, p.fail("apply", &Error{Kind: KindApplyFailed, Detail: err.Error(), Err: err})
		}
		p.logger.Warn(logging.ActionApply, "move request failed; continuing", map[string]any{"err": err})
		res.ApplyErr = err
		return res, nil
	}
	res.Applied = true
	return res, nil
}

func (p *Placer) resolveMonitor(index *int, window platform.WindowID) (platform.MonitorID, error) {
	var (
		id  platform.MonitorID
		err error
		how string
	)
	switch {
	case index != nil:
		id, err = monitors.Resolve(p.backend, *index)
		how = fmt.Sprintf("index %d", *index)
	case p.opts.Fallback == FallbackPrimary:
		id, err = monitors.Primary(p.backend)
		how = "primary"
	default:
		id, err = monitors.ForWindow(p.backend, window)
		how = "window"
	}
	if err != nil {
		return 0, err
	}
	p.logger.Debug(logging.ActionResolve, "monitor selected", map[string]any{
		"monitor": fmt.Sprintf("0x%X", uintptr(id)),
		"by":      how,
	})
	return id, nil
}

func (p *Placer) apply(target ResolvedTarget, bounds platform.Rect) error {
	p.logger.Info(logging.ActionApply, "moving window", map[string]any{
		"window": fmt.Sprintf("0x%X", uintptr(target.Window)),
		"x":      bounds.X,
		"y":      bounds.Y,
		"width":  bounds.Width,
		"height": bounds.Height,
	})
	return p.backend.SetWindowPos(target.Window, bounds)
}

func (p *Placer) fail(step string, err error) error {
	err = classify(err)
	p.logger.Debug(logging.ActionFail, step+" failed", map[string]any{"err": err})
	return err
}

// ListWindows lists visible windows.
func (p *Placer) ListWindows() ([]finder.WindowInfo, error) {
	return p.finder.List()
}

// ListMonitors lists monitors with their 1-based indexes.
func (p *Placer) ListMonitors() ([]monitors.Info, error) {
	infos, err := monitors.List(p.backend)
	if err != nil {
		return nil, classify(err)
	}
	return infos, nil
}
