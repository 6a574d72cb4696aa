//go:build !linux && !windows

package platform

// Open reports ErrUnsupported; only X11 and Win32 are implemented.
func Open(Options) (Backend, error) {
	return nil, ErrUnsupported
}
