// Package domain holds the capture event types and the activity ports
package domain

import (
	"context"
	"time"
)

// Event is one vault change as recorded in the log
type Event struct {
	ID    string    `json:"event_id"`
	Kind  string    `json:"kind"`
	Count int       `json:"count"`
	At    time.Time `json:"at"`
}

// KindCount aggregates events of one kind
type KindCount struct {
	Kind   string `json:"kind"   example:"note.saved"`
	Events uint64 `json:"events" example:"12"`
	Items  uint64 `json:"items"  example:"30"`
}

// SummaryInput bounds a summary query. A zero Since means the last 7 days
type SummaryInput struct {
	Since string `json:"since,omitempty" example:"2025-03-01T00:00:00.000Z"`
}

// Storage is the event sink
type Storage interface {
	Insert(ctx context.Context, xs []Event) error
	Summary(ctx context.Context, since time.Time) ([]KindCount, error)
}

// ServicePort is what the HTTP layer uses
type ServicePort interface {
	Summary(ctx context.Context, in SummaryInput) ([]KindCount, error)
}
