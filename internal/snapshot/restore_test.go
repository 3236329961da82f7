package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/1broseidon/wincfg/internal/platform"
	"github.com/1broseidon/wincfg/internal/platform/platformtest"
)

func TestResolve(t *testing.T) {
	fake := platformtest.New(
		platformtest.Window{Handle: 7, Title: "Foo"},
		platformtest.Window{Handle: 8, Title: "Foo"},
		platformtest.Window{Handle: 9, Title: "Foobar"},
	)

	h, ok, err := Resolve(fake, "Foo")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !ok || h != 7 {
		t.Fatalf("Resolve(Foo) = %d, %v; want 7, true", h, ok)
	}

	h, ok, err = Resolve(fake, "Bar")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ok || h.Valid() {
		t.Fatalf("Resolve(Bar) = %d, %v; want no match", h, ok)
	}
}

func TestResolve_ExactMatchOnly(t *testing.T) {
	fake := platformtest.New(platformtest.Window{Handle: 1, Title: "foo"})

	if _, ok, _ := Resolve(fake, "Foo"); ok {
		t.Fatal("title match should be case-sensitive")
	}
	if _, ok, _ := Resolve(fake, "fo"); ok {
		t.Fatal("title match should not accept prefixes")
	}
}

func TestRestore_PositionOnlyByDefault(t *testing.T) {
	fake := platformtest.New(platformtest.Window{
		Handle: 42,
		Title:  "Notepad",
		Rect:   platform.Rect{Top: 0, Left: 0, Right: 300, Bottom: 200},
	})
	records := []Record{{
		Title: "Notepad",
		Rect:  platform.Rect{Top: 50, Left: 100, Right: 500, Bottom: 600},
	}}

	report, err := Restore(context.Background(), fake, records, RestoreOptions{})
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if report != (RestoreReport{Restored: 1}) {
		t.Fatalf("unexpected report %+v", report)
	}
	if len(fake.Moves) != 1 {
		t.Fatalf("expected one move, got %d", len(fake.Moves))
	}

	want := platformtest.Move{
		Handle: 42,
		Left:   100,
		Top:    50,
		Width:  500,
		Height: 600,
		Flags:  platform.KeepSize | platform.KeepZOrder | platform.NoActivate,
	}
	if fake.Moves[0] != want {
		t.Fatalf("move = %+v, want %+v", fake.Moves[0], want)
	}

	// Size is untouched: the window keeps its 300x200 extent.
	got := fake.Windows[0].Rect
	if got != (platform.Rect{Top: 50, Left: 100, Right: 400, Bottom: 250}) {
		t.Fatalf("window rect after restore = %+v", got)
	}
}

func TestRestore_ApplySize(t *testing.T) {
	fake := platformtest.New(platformtest.Window{Handle: 1, Title: "Notepad"})
	records := []Record{{
		Title: "Notepad",
		Rect:  platform.Rect{Top: 50, Left: 100, Right: 500, Bottom: 600},
	}}

	if _, err := Restore(context.Background(), fake, records, RestoreOptions{ApplySize: true}); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	move := fake.Moves[0]
	if move.Width != 400 || move.Height != 550 {
		t.Fatalf("expected 400x550, got %dx%d", move.Width, move.Height)
	}
	if move.Flags.Has(platform.KeepSize) {
		t.Fatal("KeepSize must be cleared when applying size")
	}
	if fake.Windows[0].Rect != records[0].Rect {
		t.Fatalf("window rect = %+v, want %+v", fake.Windows[0].Rect, records[0].Rect)
	}
}

func TestRestore_SkipsUnresolvedTitles(t *testing.T) {
	fake := platformtest.New(platformtest.Window{Handle: 5, Title: "Foo"})
	records := []Record{
		{Title: "Bar", Rect: platform.Rect{Left: 1, Top: 1}},
		{Title: "Foo", Rect: platform.Rect{Left: 2, Top: 2}},
	}

	report, err := Restore(context.Background(), fake, records, RestoreOptions{})
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if report.Restored != 1 || report.Skipped != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
	if len(fake.Moves) != 1 || fake.Moves[0].Handle != 5 {
		t.Fatalf("unexpected moves %+v", fake.Moves)
	}
}

func TestRestore_ReenumeratesPerRecord(t *testing.T) {
	fake := platformtest.New(
		platformtest.Window{Handle: 1, Title: "a"},
		platformtest.Window{Handle: 2, Title: "b"},
	)
	records := []Record{{Title: "a"}, {Title: "b"}, {Title: "c"}}

	if _, err := Restore(context.Background(), fake, records, RestoreOptions{}); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if fake.Enumerations != 3 {
		t.Fatalf("expected 3 enumerations, got %d", fake.Enumerations)
	}
}

func TestRestore_UsesKnownHandleWithoutEnumerating(t *testing.T) {
	fake := platformtest.New(platformtest.Window{Handle: 9, Title: "renamed"})
	records := []Record{{Title: "before rename", Handle: 9, Rect: platform.Rect{Left: 3, Top: 4}}}

	report, err := Restore(context.Background(), fake, records, RestoreOptions{})
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if report.Restored != 1 || fake.Enumerations != 0 {
		t.Fatalf("report %+v, enumerations %d", report, fake.Enumerations)
	}
}

func TestRestore_MoveFailureContinues(t *testing.T) {
	fake := platformtest.New(
		platformtest.Window{Handle: 1, Title: "a"},
		platformtest.Window{Handle: 2, Title: "b"},
	)
	fake.MoveErr = map[platform.Handle]error{1: errors.New("BadMatch")}

	report, err := Restore(context.Background(), fake, []Record{{Title: "a"}, {Title: "b"}}, RestoreOptions{})
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if report != (RestoreReport{Restored: 1, Failed: 1}) {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestRestore_StopsOnCancelledContext(t *testing.T) {
	fake := platformtest.New(platformtest.Window{Handle: 1, Title: "a"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Restore(ctx, fake, []Record{{Title: "a"}}, RestoreOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(fake.Moves) != 0 {
		t.Fatal("no window should move after cancellation")
	}
}
