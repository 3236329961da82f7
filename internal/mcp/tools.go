package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/wincfg/internal/dumpfile"
	"github.com/1broseidon/wincfg/internal/platform"
	"github.com/1broseidon/wincfg/internal/snapshot"
)

func (s *Server) handleDumpWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ DumpWindowsInput) (*mcpsdk.CallToolResult, DumpWindowsOutput, error) {
	var records []snapshot.Record
	err := s.withBackend(func(b platform.Backend) error {
		var err error
		records, err = snapshot.Capture(b, s.logger)
		return err
	})
	if err != nil {
		return nil, DumpWindowsOutput{}, err
	}

	var text strings.Builder
	if err := dumpfile.Encode(&text, records); err != nil {
		return nil, DumpWindowsOutput{}, err
	}

	out := DumpWindowsOutput{
		Text:    text.String(),
		Windows: make([]WindowInfo, 0, len(records)),
	}
	for _, rec := range records {
		if rec.Title == "" {
			continue
		}
		info := windowInfo(rec)
		info.Handle = 0
		out.Windows = append(out.Windows, info)
	}
	s.logger.Info("dump_windows", "windows", len(out.Windows))
	return nil, out, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	var records []snapshot.Record
	err := s.withBackend(func(b platform.Backend) error {
		var err error
		records, err = snapshot.Capture(b, s.logger)
		return err
	})
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{Windows: make([]WindowInfo, 0, len(records))}
	for _, rec := range records {
		out.Windows = append(out.Windows, windowInfo(rec))
	}
	return nil, out, nil
}

func (s *Server) handleRestoreWindows(ctx context.Context, _ *mcpsdk.CallToolRequest, args RestoreWindowsInput) (*mcpsdk.CallToolResult, RestoreWindowsOutput, error) {
	if strings.TrimSpace(args.Text) == "" {
		return nil, RestoreWindowsOutput{}, fmt.Errorf("text is required")
	}

	records, err := dumpfile.Decode(strings.NewReader(args.Text), s.logger)
	if err != nil {
		return nil, RestoreWindowsOutput{}, err
	}

	applySize := s.config.Restore.ApplySize
	if args.ApplySize != nil {
		applySize = *args.ApplySize
	}

	var report snapshot.RestoreReport
	err = s.withBackend(func(b platform.Backend) error {
		var err error
		report, err = snapshot.Restore(ctx, b, records, snapshot.RestoreOptions{
			ApplySize: applySize,
			Logger:    s.logger,
		})
		return err
	})
	if err != nil {
		return nil, RestoreWindowsOutput{}, err
	}

	s.logger.Info("restore_windows", "records", len(records), "restored", report.Restored, "skipped", report.Skipped, "failed", report.Failed)
	return nil, RestoreWindowsOutput{
		Records:  len(records),
		Restored: report.Restored,
		Skipped:  report.Skipped,
		Failed:   report.Failed,
	}, nil
}

func windowInfo(rec snapshot.Record) WindowInfo {
	return WindowInfo{
		Title:  rec.Title,
		Handle: uint64(rec.Handle),
		Top:    rec.Rect.Top,
		Left:   rec.Rect.Left,
		Right:  rec.Rect.Right,
		Bottom: rec.Rect.Bottom,
	}
}
