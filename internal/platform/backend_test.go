package platform

import "testing"

func TestHandleValid(t *testing.T) {
	if Handle(0).Valid() {
		t.Fatal("zero handle should be invalid")
	}
	if !Handle(0x2a00004).Valid() {
		t.Fatal("non-zero handle should be valid")
	}
}

func TestMoveFlagsHas(t *testing.T) {
	flags := KeepSize | NoActivate
	if !flags.Has(KeepSize) {
		t.Error("expected KeepSize")
	}
	if !flags.Has(NoActivate) {
		t.Error("expected NoActivate")
	}
	if flags.Has(KeepZOrder) {
		t.Error("did not expect KeepZOrder")
	}
	if flags.Has(KeepSize | KeepZOrder) {
		t.Error("Has should require every bit")
	}
}

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"unbounded", "Untitled - Notepad", 0, "Untitled - Notepad"},
		{"negative is unbounded", "abc", -1, "abc"},
		{"shorter than limit", "Calc", 10, "Calc"},
		{"exact limit", "Calc", 4, "Calc"},
		{"cut ascii", "Calculator", 4, "Calc"},
		{"cut multibyte by code point", "日本語のタイトル", 3, "日本語"},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateTitle(tt.in, tt.limit)
			if got != tt.want {
				t.Errorf("truncateTitle(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}
