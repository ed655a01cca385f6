//go:build integration_pg

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "floaty",
				"POSTGRES_PASSWORD": "floaty",
				"POSTGRES_DB":       "floaty",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, _ := c.Host(ctx)
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	return fmt.Sprintf("postgres://floaty:floaty@%s:%s/floaty?sslmode=disable", host, port.Port())
}

func TestSQLAdapter_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s := &Store{Log: zerolog.Nop()}
	q, err := openPG(ctx, Config{PG: PGConfig{URL: startPostgres(t), MaxConns: 2, ConnectRetries: 5, LogSQL: true}}, s)
	if err != nil {
		t.Fatalf("openPG: %v", err)
	}
	s.PG = q
	a := q.(*pgAdapter)
	t.Cleanup(func() { _ = a.Close() })

	if _, err := a.Exec(ctx, `CREATE TABLE kv_it (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := a.Tx(ctx, func(q RowQuerier) error {
		return ExecOne(ctx, q, `INSERT INTO kv_it (key, value) VALUES ($1, $2)`, "floaty_notes", "[]")
	}); err != nil {
		t.Fatalf("commit: %v", err)
	}

	rollback := errors.New("rollback")
	if err := a.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `INSERT INTO kv_it (key, value) VALUES ($1, $2)`, "floaty_tasks", "[]"); err != nil {
			return err
		}
		return rollback
	}); !errors.Is(err, rollback) {
		t.Fatalf("want rollback, got %v", err)
	}

	keys, err := Many(ctx, a, func(r Row) (string, error) {
		var k string
		return k, r.Scan(&k)
	}, `SELECT key FROM kv_it ORDER BY key`)
	if err != nil || len(keys) != 1 || keys[0] != "floaty_notes" {
		t.Fatalf("keys = %v err %v", keys, err)
	}

	if _, err := Scalar[string](ctx, a, `SELECT value FROM kv_it WHERE key = $1`, "missing"); err == nil {
		t.Fatalf("missing key should be not found")
	}
	if err := s.Guard(ctx); err != nil {
		t.Fatalf("Guard: %v", err)
	}
}
