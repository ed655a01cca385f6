package normalize

import (
	"testing"
)

func TestFold_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "identity ascii", in: "buy milk", out: "buy milk"},
		{name: "invalid utf8 dropped", in: string([]byte{0xff, 'b', 'u', 'y', 0x80, ' ', 'm', 'i', 'l', 'k'}), out: "buy milk"},
		{name: "case fold", in: "Call MOM", out: "call mom"},
		{name: "zero widths", in: "ca\u200bl\u200dl", out: "call"},
		{name: "combining marks", in: "fix\u0301ed", out: "fixed"},
		{name: "fullwidth", in: "ＥＭＡＩＬ bob", out: "email bob"},
		{name: "ligature", in: "oﬃce", out: "office"},
		{name: "newlines collapse", in: "  a\t\tb\nc \r\n d  ", out: "a b c d"},
		{name: "empty", in: "", out: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fold(tc.in)
			if got != tc.out {
				t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.out)
			}
			if again := Fold(got); again != got {
				t.Fatalf("Fold not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestCapture(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  - Email the client\r\n- Review budget \n", "- Email the client\n- Review budget"},
		{"a\rb", "a\nb"},
		{"keep  inner  spaces", "keep  inner  spaces"},
		{"nul\x00byte\x7f", "nulbyte"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Capture(tc.in); got != tc.want {
			t.Fatalf("Capture(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"tab\tand\nnewline\r", "tab\tand\nnewline\r"},
		{"bell\x07 esc\x1b", "bell esc"},
		{"c1\u0085control", "c1control"},
		{"héllo wörld", "héllo wörld"},
		{string([]byte{'a', 0xc3, 'b'}), "ab"},
	}
	for _, tc := range tests {
		if got := Sanitize(tc.in); got != tc.want {
			t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains("Meet at the CAFÉ", "café") {
		t.Fatalf("expected folded match")
	}
	if !Contains("anything", "  ") {
		t.Fatalf("blank query should match")
	}
	if Contains("buy milk", "eggs") {
		t.Fatalf("unexpected match")
	}
}
