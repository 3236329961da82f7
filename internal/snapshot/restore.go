package snapshot

import (
	"context"
	"log/slog"

	"github.com/1broseidon/wincfg/internal/platform"
)

// RestoreOptions tunes Restore.
type RestoreOptions struct {
	// ApplySize resizes windows to Right-Left by Bottom-Top. When false only
	// the position is restored and Right/Bottom are passed through unused.
	ApplySize bool
	Logger    *slog.Logger
}

// RestoreReport counts what happened to each record.
type RestoreReport struct {
	Restored int `json:"restored"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// Resolve finds the first visible window whose title equals title. It
// enumerates afresh on every call.
func Resolve(svc platform.Backend, title string) (platform.Handle, bool, error) {
	handles, err := Enumerate(svc)
	if err != nil {
		return 0, false, err
	}
	for _, h := range handles {
		live, err := svc.WindowTitle(h)
		if err != nil {
			continue
		}
		if live == title {
			return h, true, nil
		}
	}
	return 0, false, nil
}

// Restore moves each record's window back to its stored position. Records
// whose title matches no live window are skipped. A failed move is logged
// and does not stop the run.
func Restore(ctx context.Context, svc platform.Backend, records []Record, opts RestoreOptions) (RestoreReport, error) {
	logger := orDefault(opts.Logger)

	var report RestoreReport
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		h := rec.Handle
		if !h.Valid() {
			resolved, ok, err := Resolve(svc, rec.Title)
			if err != nil {
				return report, err
			}
			if !ok {
				logger.Debug("no live window with title", "title", rec.Title)
				report.Skipped++
				continue
			}
			h = resolved
		}

		left, top, width, height, flags := placement(rec.Rect, opts.ApplySize)
		if err := svc.SetPosition(h, left, top, width, height, flags); err != nil {
			logger.Warn("failed to reposition window", "title", rec.Title, "handle", uint64(h), "error", err)
			report.Failed++
			continue
		}
		logger.Debug("restored window", "title", rec.Title, "left", left, "top", top)
		report.Restored++
	}
	return report, nil
}

func placement(r platform.Rect, applySize bool) (left, top, width, height int, flags platform.MoveFlags) {
	flags = platform.KeepZOrder | platform.NoActivate
	if !applySize {
		return r.Left, r.Top, r.Right, r.Bottom, flags | platform.KeepSize
	}
	return r.Left, r.Top, r.Right - r.Left, r.Bottom - r.Top, flags
}
