package service

import (
	"sync"

	ptime "floaty/internal/platform/time"
	"floaty/internal/services/vault/domain"
)

// IDs issues integer ids that are unique and increasing within the process.
// Each id is max(nowMillis*1000, last+1)
type IDs struct {
	mu    sync.Mutex
	last  int64
	clock ptime.Clock
}

// NewIDs returns a generator on clock, the system clock when nil
func NewIDs(clock ptime.Clock) *IDs { return &IDs{clock: ptime.Or(clock)} }

// Next returns the next id
func (g *IDs) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := ptime.Millis(g.clock.Now()) * 1000
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe raises the floor so ids issued later stay above seen.
// Ids above domain.MaxID are ignored
func (g *IDs) Observe(seen int64) {
	g.mu.Lock()
	if seen > g.last && seen <= domain.MaxID {
		g.last = seen
	}
	g.mu.Unlock()
}
