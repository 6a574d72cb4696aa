// Package finder locates a visible top-level window by owning process name,
// optionally narrowed by window title and window class.
package finder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/1broseidon/winplace/internal/logging"
	"github.com/1broseidon/winplace/internal/platform"
)

var (
	// ErrNotFound is wrapped by every NotFoundError.
	ErrNotFound = errors.New("window not found")
	// ErrEmptyProcessName rejects criteria without a process name.
	ErrEmptyProcessName = errors.New("process name is required")
	// ErrEnumerationFailed reports that the window list could not be read.
	ErrEnumerationFailed = errors.New("window enumeration failed")
)

// Source is the part of the window system the matcher needs.
type Source interface {
	EnumWindows(visit func(platform.WindowID) bool) error
	IsWindowVisible(id platform.WindowID) bool
	WindowProcessID(id platform.WindowID) (int, error)
	ProcessName(pid int) (string, error)
	WindowText(id platform.WindowID) (string, error)
	WindowClass(id platform.WindowID) (string, error)
}

// Criteria selects a window. Empty WindowTitle or WindowClass disables that
// filter. All comparisons fold ASCII case.
type Criteria struct {
	ProcessName string
	WindowTitle string
	WindowClass string
}

// Validate rejects an empty process name.
func (c Criteria) Validate() error {
	if strings.TrimSpace(c.ProcessName) == "" {
		return ErrEmptyProcessName
	}
	return nil
}

func (c Criteria) String() string {
	s := fmt.Sprintf("process=%q", c.ProcessName)
	if c.WindowTitle != "" {
		s += fmt.Sprintf(" title=%q", c.WindowTitle)
	}
	if c.WindowClass != "" {
		s += fmt.Sprintf(" class=%q", c.WindowClass)
	}
	return s
}

// Criterion names the filter that eliminated every candidate.
type Criterion string

const (
	CriterionProcess Criterion = "process"
	CriterionTitle   Criterion = "title"
	CriterionClass   Criterion = "class"
)

// NotFoundError reports which criterion failed to match any visible window.
type NotFoundError struct {
	Criteria  Criteria
	Criterion Criterion
	// Scanned counts visible windows examined.
	Scanned int
}

func (e *NotFoundError) Error() string {
	switch e.Criterion {
	case CriterionTitle:
		return fmt.Sprintf("no window of process %q has title %q", e.Criteria.ProcessName, e.Criteria.WindowTitle)
	case CriterionClass:
		if e.Criteria.WindowTitle != "" {
			return fmt.Sprintf("no window of process %q titled %q has class %q", e.Criteria.ProcessName, e.Criteria.WindowTitle, e.Criteria.WindowClass)
		}
		return fmt.Sprintf("no window of process %q has class %q", e.Criteria.ProcessName, e.Criteria.WindowClass)
	default:
		return fmt.Sprintf("no visible window belongs to process %q (%d visible windows scanned)", e.Criteria.ProcessName, e.Scanned)
	}
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Finder scans the live window set.
type Finder struct {
	src    Source
	logger *logging.Logger
}

// New returns a Finder over src. logger may be nil.
func New(src Source, logger *logging.Logger) *Finder {
	return &Finder{src: src, logger: logger}
}

// Find returns the first visible window, in system enumeration order, that
// passes every active filter. Windows whose owning process cannot be queried
// are skipped.
func (f *Finder) Find(c Criteria) (platform.WindowID, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	var (
		found         platform.WindowID
		matched       bool
		scanned       int
		processHits   int
		titleHits     int
		enumerateErrs error
	)

	enumerateErrs = f.src.EnumWindows(func(id platform.WindowID) bool {
		if !f.src.IsWindowVisible(id) {
			return true
		}
		scanned++

		name, ok := f.processName(id)
		if !ok || !EqualFoldASCII(name, c.ProcessName) {
			return true
		}
		processHits++

		if c.WindowTitle != "" {
			title, err := f.src.WindowText(id)
			if err != nil || title == "" || !EqualFoldASCII(title, c.WindowTitle) {
				return true
			}
		}
		titleHits++

		if c.WindowClass != "" {
			class, err := f.src.WindowClass(id)
			if err != nil || class == "" || !EqualFoldASCII(class, c.WindowClass) {
				return true
			}
		}

		found, matched = id, true
		return false
	})
	if enumerateErrs != nil {
		return 0, fmt.Errorf("%w: %v", ErrEnumerationFailed, enumerateErrs)
	}

	if !matched {
		nf := &NotFoundError{Criteria: c, Criterion: CriterionProcess, Scanned: scanned}
		switch {
		case processHits == 0:
		case titleHits == 0:
			nf.Criterion = CriterionTitle
		default:
			nf.Criterion = CriterionClass
		}
		return 0, nf
	}

	f.logger.Info(logging.ActionMatch, "window matched", map[string]any{
		"window":   fmt.Sprintf("0x%X", uintptr(found)),
		"criteria": c.String(),
		"scanned":  scanned,
	})
	return found, nil
}

// processName resolves the owning process of a window. Failures are logged
// and reported as ok=false so the scan can continue.
func (f *Finder) processName(id platform.WindowID) (string, bool) {
	pid, err := f.src.WindowProcessID(id)
	if err != nil {
		f.logger.Debug(logging.ActionSkip, "window process id unavailable", map[string]any{
			"window": fmt.Sprintf("0x%X", uintptr(id)),
			"err":    err,
		})
		return "", false
	}
	name, err := f.src.ProcessName(pid)
	if err != nil {
		f.logger.Debug(logging.ActionSkip, "process query failed", map[string]any{
			"window": fmt.Sprintf("0x%X", uintptr(id)),
			"pid":    pid,
			"err":    err,
		})
		return "", false
	}
	return name, true
}

// EqualFoldASCII compares strings ignoring ASCII letter case only. Non-ASCII
// bytes must match exactly, so "\u212A" (Kelvin sign) does not equal "k".
func EqualFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
