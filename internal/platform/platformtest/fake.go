// Package platformtest provides an in-memory platform.Backend for tests.
package platformtest

import (
	"fmt"
	"sync"

	"github.com/1broseidon/wincfg/internal/platform"
)

// Window is a fake live window.
type Window struct {
	Handle  platform.Handle
	Title   string
	Rect    platform.Rect
	Visible bool
}

// Move records one SetPosition call.
type Move struct {
	Handle platform.Handle
	Left   int
	Top    int
	Width  int
	Height int
	Flags  platform.MoveFlags
}

// Backend is a fake window manager. Windows are reported in slice order.
type Backend struct {
	mu sync.Mutex

	Windows []Window
	Moves   []Move

	// Enumerations counts VisibleTopLevelWindows calls.
	Enumerations int

	EnumerateErr error
	// MoveErr, when set, is returned for moves of the listed handles.
	MoveErr map[platform.Handle]error
	// RectErr, when set, is returned for rect reads of the listed handles.
	RectErr map[platform.Handle]error

	Closed bool
}

var _ platform.Backend = (*Backend)(nil)

// New returns a fake backend holding the given visible windows.
func New(windows ...Window) *Backend {
	for i := range windows {
		windows[i].Visible = true
	}
	return &Backend{Windows: windows}
}

func (b *Backend) VisibleTopLevelWindows() ([]platform.Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.Enumerations++
	if b.EnumerateErr != nil {
		return nil, b.EnumerateErr
	}
	var out []platform.Handle
	for _, w := range b.Windows {
		if w.Visible {
			out = append(out, w.Handle)
		}
	}
	return out, nil
}

func (b *Backend) WindowTitle(h platform.Handle) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w, err := b.find(h)
	if err != nil {
		return "", err
	}
	return w.Title, nil
}

func (b *Backend) WindowRect(h platform.Handle) (platform.Rect, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.RectErr[h]; err != nil {
		return platform.Rect{}, err
	}
	w, err := b.find(h)
	if err != nil {
		return platform.Rect{}, err
	}
	return w.Rect, nil
}

// SetPosition records the call and applies it the way a window manager
// would: the position always, the size unless KeepSize is set.
func (b *Backend) SetPosition(h platform.Handle, left, top, width, height int, flags platform.MoveFlags) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.MoveErr[h]; err != nil {
		return err
	}
	w, err := b.find(h)
	if err != nil {
		return err
	}
	b.Moves = append(b.Moves, Move{Handle: h, Left: left, Top: top, Width: width, Height: height, Flags: flags})

	curWidth := w.Rect.Right - w.Rect.Left
	curHeight := w.Rect.Bottom - w.Rect.Top
	if !flags.Has(platform.KeepSize) {
		curWidth, curHeight = width, height
	}
	w.Rect = platform.Rect{
		Top:    top,
		Left:   left,
		Right:  left + curWidth,
		Bottom: top + curHeight,
	}
	return nil
}

func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Closed = true
	return nil
}

func (b *Backend) find(h platform.Handle) (*Window, error) {
	for i := range b.Windows {
		if b.Windows[i].Handle == h {
			return &b.Windows[i], nil
		}
	}
	return nil, fmt.Errorf("no window with handle %d", h)
}
