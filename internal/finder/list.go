package finder

import (
	"fmt"

	"github.com/1broseidon/winplace/internal/platform"
)

// WindowInfo describes one visible top-level window.
type WindowInfo struct {
	ID          platform.WindowID `json:"id"`
	PID         int               `json:"pid"`
	ProcessName string            `json:"process_name"`
	Title       string            `json:"title"`
	Class       string            `json:"class"`
}

// List returns every visible window in enumeration order. Windows whose
// process cannot be queried are listed with an empty ProcessName.
func (f *Finder) List() ([]WindowInfo, error) {
	var windows []WindowInfo
	err := f.src.EnumWindows(func(id platform.WindowID) bool {
		if !f.src.IsWindowVisible(id) {
			return true
		}
		info := WindowInfo{ID: id}
		if pid, err := f.src.WindowProcessID(id); err == nil {
			info.PID = pid
		}
		info.ProcessName, _ = f.processName(id)
		info.Title, _ = f.src.WindowText(id)
		info.Class, _ = f.src.WindowClass(id)
		windows = append(windows, info)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumerationFailed, err)
	}
	return windows, nil
}
