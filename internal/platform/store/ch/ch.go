// Package ch is the ClickHouse client behind the capture activity log
package ch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures the client. URL is a clickhouse:// DSN
type Config struct {
	URL         string
	Role        string
	Tag         string
	DialTimeout time.Duration
	MaxOpen     int
}

// Rows is the iteration surface the store adapts
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() []string
}

// conn is the part of driver.Conn the client uses
type conn interface {
	PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
	Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
	Exec(ctx context.Context, query string, args ...any) error
	Ping(ctx context.Context) error
	Close() error
}

// CH wraps a native protocol connection
type CH struct{ c conn }

var dial = func(o *clickhouse.Options) (conn, error) { return clickhouse.Open(o) } // seam

// Options turns cfg into driver options
func Options(cfg Config) (*clickhouse.Options, error) {
	if cfg.URL == "" {
		return nil, errors.New("ch: empty URL")
	}
	o, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("ch: parse dsn: %w", err)
	}
	if cfg.DialTimeout > 0 {
		o.DialTimeout = cfg.DialTimeout
	}
	if cfg.MaxOpen > 0 {
		o.MaxOpenConns = cfg.MaxOpen
	}
	o.ClientInfo = BuildClientInfo(cfg.Role, cfg.Tag)
	return o, nil
}

// Open dials ClickHouse. The connection is lazy, call Ping to verify it
func Open(_ context.Context, cfg Config) (*CH, error) {
	o, err := Options(cfg)
	if err != nil {
		return nil, err
	}
	c, err := dial(o)
	if err != nil {
		return nil, fmt.Errorf("ch: open: %w", err)
	}
	return &CH{c: c}, nil
}

// Insert appends rows to table in one batch. Columns follow the table order
func (c *CH) Insert(ctx context.Context, table string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	b, err := c.c.PrepareBatch(ctx, "INSERT INTO "+table)
	if err != nil {
		return fmt.Errorf("ch: prepare %s: %w", table, err)
	}
	for _, r := range rows {
		if err := b.Append(r...); err != nil {
			_ = b.Abort()
			return fmt.Errorf("ch: append %s: %w", table, err)
		}
	}
	if err := b.Send(); err != nil {
		return fmt.Errorf("ch: send %s: %w", table, err)
	}
	return nil
}

// Query runs a select
func (c *CH) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return c.c.Query(ctx, query, args...)
}

// Exec runs DDL and other statements without results
func (c *CH) Exec(ctx context.Context, query string, args ...any) error {
	return c.c.Exec(ctx, query, args...)
}

// Ping checks the server is reachable
func (c *CH) Ping(ctx context.Context) error { return c.c.Ping(ctx) }

// Close closes the connection pool
func (c *CH) Close() error { return c.c.Close() }
