// Package repo stores capture events in ClickHouse
package repo

import (
	"context"
	"time"

	perr "floaty/internal/platform/errors"
	"floaty/internal/platform/store"
	"floaty/internal/services/activity/domain"
)

// Table is the capture event table
const Table = "floaty_capture_events"

// Schema creates Table when missing
const Schema = `CREATE TABLE IF NOT EXISTS ` + Table + ` (
	event_id UUID,
	kind     LowCardinality(String),
	count    UInt32,
	at       DateTime64(3, 'UTC')
) ENGINE = MergeTree
ORDER BY (kind, at)`

const summarySQL = `SELECT kind, count() AS events, sum(count) AS items
FROM ` + Table + `
WHERE at >= ?
GROUP BY kind
ORDER BY kind`

type ch struct{ c store.Clickhouse }

// NewCH returns the ClickHouse storage. It panics on a nil client
func NewCH(c store.Clickhouse) domain.Storage {
	if c == nil {
		panic("activity: nil clickhouse")
	}
	return &ch{c: c}
}

// Migrate creates the event table
func Migrate(ctx context.Context, c store.Clickhouse) error {
	if err := c.Exec(ctx, Schema); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "activity: migrate")
	}
	return nil
}

func (s *ch) Insert(ctx context.Context, xs []domain.Event) error {
	if len(xs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, e := range xs {
		rows = append(rows, []any{e.ID, e.Kind, uint32(max(e.Count, 0)), e.At.UTC()})
	}
	if err := s.c.Insert(ctx, Table, rows); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDB, "activity: insert %d events", len(xs))
	}
	return nil
}

func (s *ch) Summary(ctx context.Context, since time.Time) ([]domain.KindCount, error) {
	rows, err := s.c.Query(ctx, summarySQL, since.UTC())
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "activity: summary")
	}
	defer rows.Close()

	out := []domain.KindCount{}
	for rows.Next() {
		var k domain.KindCount
		if err := rows.Scan(&k.Kind, &k.Events, &k.Items); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "activity: scan summary")
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "activity: summary rows")
	}
	return out, nil
}

// Noop drops events and reports nothing, used when ClickHouse is disabled
type Noop struct{}

// Insert implements domain.Storage
func (Noop) Insert(context.Context, []domain.Event) error { return nil }

// Summary implements domain.Storage
func (Noop) Summary(context.Context, time.Time) ([]domain.KindCount, error) {
	return []domain.KindCount{}, nil
}
