//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/wincfg/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn       *x11.Connection
	titleLimit int
}

var _ Backend = (*LinuxBackend)(nil)

// Open connects to the X server described by opts.
func Open(opts Options) (Backend, error) {
	conn, err := x11.NewConnection(opts.Display)
	if err != nil {
		return nil, err
	}
	return &LinuxBackend{conn: conn, titleLimit: opts.TitleLimit}, nil
}

// Close closes the underlying X11 connection.
func (b *LinuxBackend) Close() error {
	if b != nil && b.conn != nil {
		b.conn.Close()
		b.conn = nil
	}
	return nil
}

// VisibleTopLevelWindows lists mapped, non-hidden top-level windows in
// client list order.
func (b *LinuxBackend) VisibleTopLevelWindows() ([]Handle, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	windows, err := conn.TopLevelWindows()
	if err != nil {
		return nil, fmt.Errorf("failed to list top-level windows: %w", err)
	}

	out := make([]Handle, 0, len(windows))
	for _, win := range windows {
		if !conn.IsVisible(win) {
			continue
		}
		out = append(out, Handle(win))
	}
	return out, nil
}

// WindowTitle returns the window title, truncated to the configured limit.
func (b *LinuxBackend) WindowTitle(h Handle) (string, error) {
	conn, err := b.connection()
	if err != nil {
		return "", err
	}
	title, err := conn.Title(xproto.Window(h))
	if err != nil {
		return "", err
	}
	return truncateTitle(title, b.titleLimit), nil
}

// WindowRect returns the outer frame rectangle, decorations included, in
// root coordinates. SetPosition places the same rectangle.
func (b *LinuxBackend) WindowRect(h Handle) (Rect, error) {
	conn, err := b.connection()
	if err != nil {
		return Rect{}, err
	}
	geom, err := conn.Geometry(xproto.Window(h))
	if err != nil {
		return Rect{}, err
	}
	return Rect{
		Top:    geom.Y,
		Left:   geom.X,
		Right:  geom.X + geom.Width,
		Bottom: geom.Y + geom.Height,
	}, nil
}

// SetPosition moves a window. With KeepSize the width and height arguments
// are ignored. X11 move requests never restack or focus a window, so
// KeepZOrder and NoActivate hold for every call.
func (b *LinuxBackend) SetPosition(h Handle, left, top, width, height int, flags MoveFlags) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	if flags.Has(KeepSize) || width <= 0 || height <= 0 {
		return conn.MoveWindow(xproto.Window(h), left, top)
	}
	return conn.MoveResizeWindow(xproto.Window(h), left, top, width, height)
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}
