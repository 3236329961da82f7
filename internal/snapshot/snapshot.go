package snapshot

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/wincfg/internal/platform"
)

// Record is a window's title and rectangle. Handle is set only for records
// captured from live windows in this process.
type Record struct {
	Title  string
	Handle platform.Handle
	Rect   platform.Rect
}

// Enumerate returns the visible top-level windows in backend order.
func Enumerate(svc platform.Backend) ([]platform.Handle, error) {
	if svc == nil {
		return nil, fmt.Errorf("window backend is nil")
	}
	handles, err := svc.VisibleTopLevelWindows()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}
	return handles, nil
}

// Build reads the title and rectangle of each handle, preserving order.
// Windows that disappear before their rectangle can be read are dropped.
func Build(svc platform.Backend, handles []platform.Handle, logger *slog.Logger) []Record {
	logger = orDefault(logger)

	out := make([]Record, 0, len(handles))
	for _, h := range handles {
		rect, err := svc.WindowRect(h)
		if err != nil {
			// Closed since enumeration; there is no rectangle to record.
			logger.Debug("skipping window without geometry", "handle", uint64(h), "error", err)
			continue
		}

		title, err := svc.WindowTitle(h)
		if err != nil {
			logger.Debug("window title unavailable", "handle", uint64(h), "error", err)
			title = ""
		}

		out = append(out, Record{
			Title:  title,
			Handle: h,
			Rect:   rect,
		})
	}
	return out
}

// Capture enumerates the visible windows and snapshots each of them.
func Capture(svc platform.Backend, logger *slog.Logger) ([]Record, error) {
	handles, err := Enumerate(svc)
	if err != nil {
		return nil, err
	}
	return Build(svc, handles, logger), nil
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
