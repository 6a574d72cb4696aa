// Package monitors selects the monitor a window is placed on.
package monitors

import (
	"errors"
	"fmt"

	"github.com/1broseidon/winplace/internal/platform"
)

var (
	ErrInvalidIndex      = errors.New("monitor index must be 1 or greater")
	ErrEnumerationFailed = errors.New("monitor enumeration failed")
	ErrNoMonitors        = errors.New("no monitors found")
	ErrIndexOutOfRange   = errors.New("monitor index out of range")
)

// Source is the part of the window system the resolver needs.
type Source interface {
	EnumMonitors() ([]platform.MonitorID, error)
	MonitorInfo(id platform.MonitorID) (platform.Monitor, error)
	MonitorFromWindow(id platform.WindowID) (platform.MonitorID, error)
}

// Resolve enumerates monitors and returns the one at the 1-based index.
func Resolve(src Source, index int) (platform.MonitorID, error) {
	if index <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidIndex, index)
	}

	ids, err := src.EnumMonitors()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEnumerationFailed, err)
	}
	if len(ids) == 0 {
		return 0, ErrNoMonitors
	}
	if index-1 >= len(ids) {
		return 0, fmt.Errorf("%w: index %d, %d monitor(s) available", ErrIndexOutOfRange, index, len(ids))
	}
	return ids[index-1], nil
}

// ForWindow returns the monitor that currently contains the window.
func ForWindow(src Source, window platform.WindowID) (platform.MonitorID, error) {
	id, err := src.MonitorFromWindow(window)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEnumerationFailed, err)
	}
	return id, nil
}

// Primary returns the primary monitor, or the first one enumerated.
func Primary(src Source) (platform.MonitorID, error) {
	ids, err := src.EnumMonitors()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEnumerationFailed, err)
	}
	if len(ids) == 0 {
		return 0, ErrNoMonitors
	}
	for _, id := range ids {
		if m, err := src.MonitorInfo(id); err == nil && m.Primary {
			return id, nil
		}
	}
	return ids[0], nil
}

// WorkArea fetches a fresh work-area snapshot for a monitor.
func WorkArea(src Source, id platform.MonitorID) (platform.WorkArea, error) {
	m, err := src.MonitorInfo(id)
	if err != nil {
		return platform.WorkArea{}, fmt.Errorf("%w: %v", ErrEnumerationFailed, err)
	}
	return m.WorkArea, nil
}

// Info describes a monitor together with its 1-based CLI index.
type Info struct {
	Index    int                `json:"index"`
	ID       platform.MonitorID `json:"id"`
	Name     string             `json:"name"`
	Primary  bool               `json:"primary"`
	Bounds   platform.Rect      `json:"bounds"`
	WorkArea platform.WorkArea  `json:"work_area"`
}

// List returns every monitor in enumeration order.
func List(src Source) ([]Info, error) {
	ids, err := src.EnumMonitors()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumerationFailed, err)
	}
	infos := make([]Info, 0, len(ids))
	for i, id := range ids {
		m, err := src.MonitorInfo(id)
		if err != nil {
			return nil, fmt.Errorf("%w: monitor %d: %v", ErrEnumerationFailed, i+1, err)
		}
		infos = append(infos, Info{
			Index:    i + 1,
			ID:       id,
			Name:     m.Name,
			Primary:  m.Primary,
			Bounds:   m.Bounds,
			WorkArea: m.WorkArea,
		})
	}
	return infos, nil
}
