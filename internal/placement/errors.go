package placement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/1broseidon/winplace/internal/finder"
	"github.com/1broseidon/winplace/internal/monitors"
	"github.com/1broseidon/winplace/internal/tiling"
)

// Kind classifies a terminal placement failure.
type Kind int

const (
	KindWindowNotFound Kind = iota + 1
	KindMonitorEnumerationFailed
	KindNoMonitorsAvailable
	KindInvalidMonitorIndex
	KindAlignmentOutOfRange
	KindDegenerateAlignmentRegion
	KindApplyFailed
)

// Process exit codes. Invalid and out-of-range monitor indexes share 4;
// both alignment failures share 5.
const (
	ExitOK                 = 0
	ExitWindowNotFound     = 1
	ExitMonitorEnumeration = 2
	ExitNoMonitors         = 3
	ExitInvalidMonitor     = 4
	ExitInvalidAlignment   = 5
	ExitApplyFailed        = 6
	ExitStartup            = 7
)

func (k Kind) String() string {
	switch k {
	case KindWindowNotFound:
		return "WindowNotFound"
	case KindMonitorEnumerationFailed:
		return "MonitorEnumerationFailed"
	case KindNoMonitorsAvailable:
		return "NoMonitorsAvailable"
	case KindInvalidMonitorIndex:
		return "InvalidMonitorIndex"
	case KindAlignmentOutOfRange:
		return "AlignmentOutOfRange"
	case KindDegenerateAlignmentRegion:
		return "DegenerateAlignmentRegion"
	case KindApplyFailed:
		return "ApplyFailed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ExitCode maps a kind to the process exit status.
func (k Kind) ExitCode() int {
	switch k {
	case KindWindowNotFound:
		return ExitWindowNotFound
	case KindMonitorEnumerationFailed:
		return ExitMonitorEnumeration
	case KindNoMonitorsAvailable:
		return ExitNoMonitors
	case KindInvalidMonitorIndex:
		return ExitInvalidMonitor
	case KindAlignmentOutOfRange, KindDegenerateAlignmentRegion:
		return ExitInvalidAlignment
	case KindApplyFailed:
		return ExitApplyFailed
	default:
		return ExitStartup
	}
}

// message is the short user-facing description of a kind.
func (k Kind) message() string {
	switch k {
	case KindWindowNotFound:
		return "window not found"
	case KindMonitorEnumerationFailed:
		return "failed to enumerate monitors"
	case KindNoMonitorsAvailable:
		return "no monitors found"
	case KindInvalidMonitorIndex:
		return "invalid monitor index"
	case KindAlignmentOutOfRange:
		return "alignment offset out of range"
	case KindDegenerateAlignmentRegion:
		return "alignment region is empty"
	case KindApplyFailed:
		return "failed to move window"
	default:
		return "placement failed"
	}
}

// Error is a terminal placement failure with a kind and diagnostic detail.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Detail != "" {
		return e.Kind.message() + ": " + e.Detail
	}
	return e.Kind.message()
}

func (e *Error) Unwrap() error { return e.Err }

// ExitCode returns the exit status for err: 0 for nil, the kind's code for a
// placement Error, and ExitStartup otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind.ExitCode()
	}
	return ExitStartup
}

// classify wraps a component error with its kind. Unknown errors are
// returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return err
	}

	var (
		kind     Kind
		sentinel error
	)
	switch {
	case errors.Is(err, finder.ErrNotFound):
		kind, sentinel = KindWindowNotFound, finder.ErrNotFound
	case errors.Is(err, finder.ErrEmptyProcessName):
		kind, sentinel = KindWindowNotFound, finder.ErrEmptyProcessName
	case errors.Is(err, finder.ErrEnumerationFailed):
		kind, sentinel = KindWindowNotFound, finder.ErrEnumerationFailed
	case errors.Is(err, monitors.ErrInvalidIndex):
		kind, sentinel = KindInvalidMonitorIndex, monitors.ErrInvalidIndex
	case errors.Is(err, monitors.ErrIndexOutOfRange):
		kind, sentinel = KindInvalidMonitorIndex, monitors.ErrIndexOutOfRange
	case errors.Is(err, monitors.ErrNoMonitors):
		kind, sentinel = KindNoMonitorsAvailable, monitors.ErrNoMonitors
	case errors.Is(err, monitors.ErrEnumerationFailed):
		kind, sentinel = KindMonitorEnumerationFailed, monitors.ErrEnumerationFailed
	case errors.Is(err, tiling.ErrOutOfRange):
		kind, sentinel = KindAlignmentOutOfRange, tiling.ErrOutOfRange
	case errors.Is(err, tiling.ErrDegenerateRegion):
		kind, sentinel = KindDegenerateAlignmentRegion, tiling.ErrDegenerateRegion
	default:
		return err
	}
	return &Error{Kind: kind, Detail: detail(err, sentinel), Err: err}
}

// detail strips the sentinel prefix that fmt.Errorf("%w: ...") leaves on
// component errors, so the kind message is not repeated.
func detail(err, sentinel error) string {
	msg := err.Error()
	if msg == sentinel.Error() {
		return ""
	}
	return strings.TrimPrefix(msg, sentinel.Error()+": ")
}
