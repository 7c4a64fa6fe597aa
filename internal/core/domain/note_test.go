package domain

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNotePreview(t *testing.T) {
	short := &Note{Content: "call back on Monday"}
	if got := short.Preview(); got != "call back on Monday" {
		t.Errorf("short preview = %q", got)
	}

	exact := &Note{Content: strings.Repeat("a", 100)}
	if got := exact.Preview(); got != exact.Content {
		t.Errorf("100-char content should not be truncated, got %q", got)
	}

	long := &Note{Content: strings.Repeat("a", 101)}
	want := strings.Repeat("a", 100) + "..."
	if got := long.Preview(); got != want {
		t.Errorf("long preview = %q, want %q", got, want)
	}
}

func TestNotePreviewMultiByte(t *testing.T) {
	// 51 two-byte runes is 102 bytes but only 51 characters; the limit
	// counts characters, so nothing is truncated.
	short := &Note{Content: strings.Repeat("é", 51)}
	if got := short.Preview(); got != short.Content {
		t.Errorf("51-character content was truncated: %q", got)
	}

	long := &Note{Content: strings.Repeat("é", 101)}
	want := strings.Repeat("é", 100) + "..."
	got := long.Preview()
	if got != want {
		t.Errorf("long preview = %q, want %q", got, want)
	}
	if !utf8.ValidString(got) {
		t.Error("preview split a rune")
	}
}
