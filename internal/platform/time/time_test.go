package time

import (
	"testing"
	"time"
)

func TestISO(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 678_000_000, time.FixedZone("x", 3600))
	if got := ISO(at); got != "2025-01-02T02:04:05.678Z" {
		t.Fatalf("ISO = %q", got)
	}

	tests := []struct {
		in string
		ok bool
	}{
		{"2025-01-02T02:04:05.678Z", true},
		{"2025-01-02T02:04:05Z", true},
		{"2025-01-02T02:04:05.123456+02:00", true},
		{"yesterday", false},
		{"", false},
	}
	for _, tc := range tests {
		if _, ok := ParseISO(tc.in); ok != tc.ok {
			t.Fatalf("ParseISO(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
	}
	back, _ := ParseISO(ISO(at))
	if !back.Equal(at) {
		t.Fatalf("round trip %v != %v", back, at)
	}
}

func TestClocks(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)
	m.Advance(1500 * time.Millisecond)
	if Millis(m.Now())-Millis(start) != 1500 {
		t.Fatalf("manual advance = %v", m.Now().Sub(start))
	}
	if _, ok := Or(nil).(System); !ok {
		t.Fatal("Or(nil) should be the system clock")
	}
	if Or(m) != Clock(m) {
		t.Fatal("Or should keep a non nil clock")
	}
	if Ptr(time.Time{}) != nil || Ptr(start) == nil {
		t.Fatal("Ptr zero handling")
	}
}
