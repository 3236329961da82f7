//go:build !linux && !windows

package platform

// Open reports ErrUnsupported; only X11 and Win32 backends exist.
func Open(opts Options) (Backend, error) {
	return nil, ErrUnsupported
}
