// Package time contains the clock seam and the timestamp formats stored by the vault
package time

import (
	"sync"
	"time"
)

// ISOLayout is the millisecond UTC layout the extension stores, e.g. 2025-01-02T03:04:05.678Z
const ISOLayout = "2006-01-02T15:04:05.000Z"

// Clock is the time source. Services take one so tests can pin time
type Clock interface {
	Now() time.Time
}

// System is the wall clock
type System struct{}

// Now returns time.Now
func (System) Now() time.Time { return time.Now() }

// Manual is a settable clock for tests
type Manual struct {
	mu sync.Mutex
	t  time.Time
}

// NewManual returns a Manual clock at t
func NewManual(t time.Time) *Manual { return &Manual{t: t} }

// Now returns the current manual time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.t
}

// Advance moves the clock forward by d
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.t = m.t.Add(d)
	m.mu.Unlock()
}

// Or returns c, or the system clock when c is nil
func Or(c Clock) Clock {
	if c == nil {
		return System{}
	}
	return c
}

// Millis returns t as Unix milliseconds
func Millis(t time.Time) int64 { return t.UnixMilli() }

// ISO formats t in ISOLayout
func ISO(t time.Time) string { return t.UTC().Format(ISOLayout) }

// ParseISO accepts ISOLayout and RFC 3339 with or without fractional seconds
func ParseISO(s string) (time.Time, bool) {
	for _, layout := range []string{ISOLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
