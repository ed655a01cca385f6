package taskextract

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"- buy milk", "Buy milk"},
		{"• call bob", "Call bob"},
		{"* email", "Email"},
		{"todo: file taxes", "File taxes"},
		{"TODO file taxes", "File taxes"},
		{"Todo:file", "File"},
		{"3. pay rent", "Pay rent"},
		{"12) pay rent", "Pay rent"},
		{"- todo: 1. buy", "Buy"},
		{"émile called", "Émile called"},
		{"Already Upper", "Already Upper"},
		{"1.5 liters of water", "5 liters of water"},
	}
	for _, tc := range tests {
		if got := Clean(tc.in); got != tc.want {
			t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClean_TruncatesOnWords(t *testing.T) {
	in := strings.TrimSpace(strings.Repeat("abcd ", 30))
	got := Clean(in)
	if !strings.HasSuffix(got, ellipsis) {
		t.Fatalf("want ellipsis, got %q", got)
	}
	body := strings.TrimSuffix(got, ellipsis)
	if runeLen(body) != 119 {
		t.Fatalf("body len = %d, want 119", runeLen(body))
	}
	if !strings.HasPrefix(body, "Abcd abcd") || strings.HasSuffix(body, " ") {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestClean_HardCutsSingleLongWord(t *testing.T) {
	got := Clean(strings.Repeat("x", 150))
	want := "X" + strings.Repeat("x", 119) + ellipsis
	if got != want {
		t.Fatalf("got %q (%d), want %d runes", got, runeLen(got), runeLen(want))
	}
}

func TestClean_ExactLimitUntouched(t *testing.T) {
	in := "A" + strings.Repeat("b", 119)
	if got := Clean(in); got != in {
		t.Fatalf("120 rune task should be kept as is, got %q", got)
	}
}

func TestEllipsize(t *testing.T) {
	if got := ellipsize("short", 80); got != "short" {
		t.Fatalf("got %q", got)
	}
	got := ellipsize(strings.Repeat("ü", 100), 80)
	if runeLen(got) != 80 || !strings.HasSuffix(got, ellipsis) {
		t.Fatalf("got %q (%d runes)", got, runeLen(got))
	}
}
