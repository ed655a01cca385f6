// Package service records vault changes as capture events and summarizes them
package service

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	perr "floaty/internal/platform/errors"
	"floaty/internal/platform/logger"
	ptime "floaty/internal/platform/time"
	"floaty/internal/services/activity/domain"
	vaultdom "floaty/internal/services/vault/domain"
)

// Config tunes the recorder
type Config struct {
	Buffer     int           // queued events before drops, default 256
	BatchSize  int           // events per insert, default 64
	FlushEvery time.Duration // max time an event waits, default 2s
	Window     time.Duration // summary window when since is empty, default 7 days
}

func (c Config) withDefaults() Config {
	if c.Buffer <= 0 {
		c.Buffer = 256
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 64
	}
	if c.FlushEvery <= 0 {
		c.FlushEvery = 2 * time.Second
	}
	if c.Window <= 0 {
		c.Window = 7 * 24 * time.Hour
	}
	return c
}

// Recorder queues events from vault listeners and writes them in batches
// from Run. Listen never blocks: a full queue drops the event
type Recorder struct {
	store domain.Storage
	clock ptime.Clock
	cfg   Config
	log   logger.Logger

	events  chan domain.Event
	dropped atomic.Int64
	newID   func() string
}

var _ domain.ServicePort = (*Recorder)(nil)

// New builds a Recorder over st
func New(st domain.Storage, clock ptime.Clock, cfg Config) *Recorder {
	cfg = cfg.withDefaults()
	return &Recorder{
		store:  st,
		clock:  ptime.Or(clock),
		cfg:    cfg,
		log:    *logger.Named("activity"),
		events: make(chan domain.Event, cfg.Buffer),
		newID:  uuid.NewString,
	}
}

// Listen is a vault listener
func (r *Recorder) Listen(_ context.Context, c vaultdom.Change) {
	at := c.At
	if at.IsZero() {
		at = r.clock.Now()
	}
	e := domain.Event{ID: r.newID(), Kind: c.Reason, Count: c.Count, At: at}
	select {
	case r.events <- e:
	default:
		n := r.dropped.Add(1)
		r.log.Warn().Str("kind", e.Kind).Int64("dropped", n).Msg("activity queue full, event dropped")
	}
}

// Dropped reports how many events were dropped on a full queue
func (r *Recorder) Dropped() int64 { return r.dropped.Load() }

// Run drains the queue until ctx is done, then flushes what is left
func (r *Recorder) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.FlushEvery)
	defer ticker.Stop()

	batch := make([]domain.Event, 0, r.cfg.BatchSize)
	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		if err := r.store.Insert(ctx, batch); err != nil {
			r.log.Warn().Err(err).Int("events", len(batch)).Msg("activity insert failed")
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
		drain:
			for {
				select {
				case e := <-r.events:
					batch = append(batch, e)
				default:
					break drain
				}
			}
			fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			flush(fctx)
			cancel()
			return ctx.Err()
		case e := <-r.events:
			batch = append(batch, e)
			if len(batch) >= r.cfg.BatchSize {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}

// Summary returns per kind counts since in.Since, or over the default window
func (r *Recorder) Summary(ctx context.Context, in domain.SummaryInput) ([]domain.KindCount, error) {
	since := r.clock.Now().Add(-r.cfg.Window)
	if s := strings.TrimSpace(in.Since); s != "" {
		t, ok := ptime.ParseISO(s)
		if !ok {
			return nil, perr.WithField(perr.InvalidArgf("since must be an ISO 8601 timestamp"), "since")
		}
		since = t
	}
	return r.store.Summary(ctx, since)
}
