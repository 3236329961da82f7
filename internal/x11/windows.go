package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// Geometry is a window's outer position and size in root coordinates.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// TopLevelWindows returns the managed top-level windows in client list order.
// Without an EWMH window manager the root window's children are used instead.
func (c *Connection) TopLevelWindows() ([]xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err == nil {
		return clients, nil
	}

	tree, err := xproto.QueryTree(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, err
	}
	return tree.Children, nil
}

// IsVisible reports whether a window is mapped and not hidden (iconified).
func (c *Connection) IsVisible(windowID xproto.Window) bool {
	attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), windowID).Reply()
	if err != nil {
		return false
	}
	if attrs.MapState != xproto.MapStateViewable {
		return false
	}

	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return true
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_HIDDEN" {
			return false
		}
	}
	return true
}

// Title returns _NET_WM_NAME, falling back to the ICCCM WM_NAME.
func (c *Connection) Title(windowID xproto.Window) (string, error) {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil && strings.TrimSpace(title) != "" {
		return title, nil
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err != nil {
		return "", err
	}
	return title, nil
}

// FrameExtents are the decoration sizes a reparenting window manager adds
// around a client window.
type FrameExtents struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// GetFrameExtents returns the window decoration sizes. Windows without
// _NET_FRAME_EXTENTS report zero extents.
func (c *Connection) GetFrameExtents(windowID xproto.Window) FrameExtents {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, windowID)
	if err != nil {
		return FrameExtents{}
	}
	return FrameExtents{
		Left:   int(extents.Left),
		Right:  int(extents.Right),
		Top:    int(extents.Top),
		Bottom: int(extents.Bottom),
	}
}

// Geometry returns the outer frame of a window in root coordinates, the
// rectangle _NET_MOVERESIZE_WINDOW positions.
func (c *Connection) Geometry(windowID xproto.Window) (Geometry, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return Geometry{}, err
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return Geometry{}, err
	}

	client := Geometry{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}
	return frameGeometry(client, c.GetFrameExtents(windowID)), nil
}

// frameGeometry grows a client rectangle by the frame extents.
func frameGeometry(client Geometry, ext FrameExtents) Geometry {
	return Geometry{
		X:      client.X - ext.Left,
		Y:      client.Y - ext.Top,
		Width:  client.Width + ext.Left + ext.Right,
		Height: client.Height + ext.Top + ext.Bottom,
	}
}

// clientSize is the client area left inside an outer frame size. X rejects
// zero sizes, so the result is at least 1x1.
func clientSize(width, height int, ext FrameExtents) (int, int) {
	width -= ext.Left + ext.Right
	height -= ext.Top + ext.Bottom
	return max(width, 1), max(height, 1)
}

// MoveWindow moves the outer frame to x, y without touching its size,
// stacking or focus.
func (c *Connection) MoveWindow(windowID xproto.Window, x, y int) error {
	if err := ewmh.MoveWindow(c.XUtil, windowID, x, y); err != nil {
		return c.configure(windowID,
			xproto.ConfigWindowX|xproto.ConfigWindowY,
			uint32(x), uint32(y))
	}
	return nil
}

// MoveResizeWindow places the outer frame at x, y with the given outer size.
// The window manager is asked for the matching client size.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	cw, ch := clientSize(width, height, c.GetFrameExtents(windowID))
	if err := ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, cw, ch); err != nil {
		return c.configure(windowID,
			xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			uint32(x), uint32(y), uint32(cw), uint32(ch))
	}
	return nil
}

// configure sends ConfigureWindow directly and waits for the server's answer.
func (c *Connection) configure(windowID xproto.Window, mask uint16, values ...uint32) error {
	if err := xproto.ConfigureWindowChecked(c.XUtil.Conn(), windowID, mask, values).Check(); err != nil {
		return fmt.Errorf("failed to configure window 0x%x: %w", uint32(windowID), err)
	}
	return nil
}
