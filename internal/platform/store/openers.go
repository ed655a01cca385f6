package store

import (
	"context"
	"fmt"
	"time"

	chx "floaty/internal/platform/store/ch"
	"floaty/internal/platform/store/pg"
)

var (
	sleep       = time.Sleep // seam
	openPGPool  = pg.Open    // seam
	openCHConn  = func(ctx context.Context, cfg chx.Config) (chClient, error) {
		c, err := chx.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	pingPGPool  = func(ctx context.Context, p *pg.PG) error { return p.Pool.Ping(ctx) }
	backoffBase = 150 * time.Millisecond
	backoffMax  = 2 * time.Second
)

// openPG opens the pool and pings it with exponential backoff before
// publishing the adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log, cfg.PG.LogArgs)
	}

	p, err := openPGPool(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = 1
	}
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	var lastErr error
	backoff := backoffBase
	for i := 0; i < attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = pingPGPool(pctx, p)
		cancel()
		if lastErr == nil {
			return newPGAdapter(p), nil
		}
		if ctx.Err() != nil {
			p.Close()
			return nil, ctx.Err()
		}
		s.Log.Warn().Err(lastErr).Int("attempt", i+1).Int("of", attempts).Msg("postgres not ready")
		if i < attempts-1 {
			sleep(backoff)
			backoff = min(backoff*2, backoffMax)
		}
	}

	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	c, err := openCHConn(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.CH.Role, Tag: cfg.CH.Tag})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
