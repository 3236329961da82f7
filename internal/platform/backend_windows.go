//go:build windows

package platform

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010

	hwndTop = 0
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
	procGetWindowTextLength = user32.NewProc("GetWindowTextLengthW")
	procGetWindowRect       = user32.NewProc("GetWindowRect")
	procSetWindowPos        = user32.NewProc("SetWindowPos")

	// enumMu guards enumVisible while EnumWindows runs enumVisibleCallback.
	enumMu      sync.Mutex
	enumVisible []Handle

	// EnumWindows callbacks are a limited resource; create one and reuse it.
	enumVisibleCallback = windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		if windows.IsWindowVisible(hwnd) {
			enumVisible = append(enumVisible, Handle(hwnd))
		}
		return 1
	})
)

// WindowsBackend talks to the Win32 window manager through user32.
type WindowsBackend struct {
	titleLimit int
}

var _ Backend = (*WindowsBackend)(nil)

// Open returns the Win32 backend. Options.Display is ignored.
func Open(opts Options) (Backend, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("failed to load user32.dll: %w", err)
	}
	return &WindowsBackend{titleLimit: opts.TitleLimit}, nil
}

// Close is a no-op; user32 holds no per-process connection.
func (b *WindowsBackend) Close() error {
	return nil
}

// VisibleTopLevelWindows lists visible top-level windows in EnumWindows order.
func (b *WindowsBackend) VisibleTopLevelWindows() ([]Handle, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumVisible = nil
	err := windows.EnumWindows(enumVisibleCallback, nil)
	out := enumVisible
	enumVisible = nil
	if err != nil {
		return nil, fmt.Errorf("EnumWindows failed: %w", err)
	}
	return out, nil
}

// WindowTitle reads the window text into a buffer bounded by the title limit.
func (b *WindowsBackend) WindowTitle(h Handle) (string, error) {
	size := b.titleLimit
	if size <= 0 {
		n, _, _ := procGetWindowTextLength.Call(uintptr(h))
		size = int(n)
	}
	if size <= 0 {
		return "", nil
	}

	buf := make([]uint16, size+1)
	n, _, err := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		if errno, ok := err.(windows.Errno); ok && errno != 0 {
			return "", fmt.Errorf("GetWindowTextW failed: %w", err)
		}
		return "", nil
	}
	return truncateTitle(windows.UTF16ToString(buf[:n]), b.titleLimit), nil
}

// WindowRect returns the window rectangle as reported by GetWindowRect.
func (b *WindowsBackend) WindowRect(h Handle) (Rect, error) {
	var r windows.Rect
	ok, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return Rect{}, fmt.Errorf("GetWindowRect failed: %w", err)
	}
	return Rect{
		Top:    int(r.Top),
		Left:   int(r.Left),
		Right:  int(r.Right),
		Bottom: int(r.Bottom),
	}, nil
}

// SetPosition calls SetWindowPos with the SWP_* bits matching flags.
func (b *WindowsBackend) SetPosition(h Handle, left, top, width, height int, flags MoveFlags) error {
	var swp uintptr
	if flags.Has(KeepSize) {
		swp |= swpNoSize
	}
	if flags.Has(KeepZOrder) {
		swp |= swpNoZOrder
	}
	if flags.Has(NoActivate) {
		swp |= swpNoActivate
	}

	ok, _, err := procSetWindowPos.Call(
		uintptr(h),
		hwndTop,
		uintptr(left),
		uintptr(top),
		uintptr(width),
		uintptr(height),
		swp,
	)
	if ok == 0 {
		return fmt.Errorf("SetWindowPos failed: %w", err)
	}
	return nil
}
