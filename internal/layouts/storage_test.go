package layouts

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/1broseidon/wincfg/internal/dumpfile"
	"github.com/1broseidon/wincfg/internal/platform"
	"github.com/1broseidon/wincfg/internal/snapshot"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"work", false},
		{"two-monitors_v2", false},
		{"", true},
		{"   ", true},
		{"..", true},
		{"a/b", true},
		{"../escape", true},
		{"x..y", true},
		{" foo", true},
		{"foo ", true},
		{"foo\t", true},
		{"two words", false},
	}
	for _, tt := range tests {
		err := ValidateName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateName(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestWriteOpenListDelete(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	records := []snapshot.Record{
		{Title: "Notepad", Handle: 4, Rect: platform.Rect{Top: 50, Left: 100, Right: 500, Bottom: 600}},
		{Title: "", Handle: 5},
	}
	if err := Write("desk", records); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := Write("alpha", nil); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".config", "wincfg", "layouts", "desk.txt"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "Notepad@@@600@@@100@@@500@@@50\n" {
		t.Fatalf("unexpected saved content %q", data)
	}

	f, err := Open("desk")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	decoded, err := dumpfile.Decode(f, nil)
	f.Close()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Title != "Notepad" {
		t.Fatalf("unexpected decoded records %+v", decoded)
	}

	names, err := List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "desk"}) {
		t.Fatalf("List() = %v", names)
	}

	if err := Delete("desk"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := Open("desk"); err == nil {
		t.Fatal("expected error opening deleted layout")
	}
}

func TestWrite_RejectsPaddedName(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := Write(" foo", nil); err == nil {
		t.Fatal("expected padded name to be rejected")
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "wincfg", "layouts", " foo.txt")); !os.IsNotExist(err) {
		t.Fatalf("padded layout file should not exist, stat err = %v", err)
	}
}

func TestList_MissingDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	names, err := List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected no layouts, got %v", names)
	}
}
