package platform

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultTitleLimit is the default bound, in code points, on a title read.
const DefaultTitleLimit = 1024

// ErrUnsupported is returned by Open on platforms without a window backend.
var ErrUnsupported = errors.New("window management is not supported on this platform")

// Handle is an opaque reference to a live window. It is only meaningful in
// the process that obtained it and is never serialized. The zero value means
// no window.
type Handle uint64

// Valid reports whether h refers to a window.
func (h Handle) Valid() bool {
	return h != 0
}

// Rect is a window's bounding rectangle in screen coordinates. Right and
// Bottom are edges, not sizes.
type Rect struct {
	Top    int
	Left   int
	Right  int
	Bottom int
}

// MoveFlags controls which window attributes SetPosition leaves untouched.
type MoveFlags uint8

const (
	KeepSize MoveFlags = 1 << iota
	KeepZOrder
	NoActivate
)

// Has reports whether all bits of f are set.
func (m MoveFlags) Has(f MoveFlags) bool {
	return m&f == f
}

// Backend abstracts the window-system operations needed to dump and restore
// window positions.
type Backend interface {
	VisibleTopLevelWindows() ([]Handle, error)
	WindowTitle(h Handle) (string, error)
	WindowRect(h Handle) (Rect, error)
	SetPosition(h Handle, left, top, width, height int, flags MoveFlags) error
	Close() error
}

// Options configures a backend.
type Options struct {
	// Display selects the X11 display. Empty uses $DISPLAY.
	Display string
	// TitleLimit bounds title reads in code points; 0 disables the bound.
	TitleLimit int
}

// truncateTitle cuts s to at most limit code points.
func truncateTitle(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == limit {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
