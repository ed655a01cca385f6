// Package repo holds the vault key value stores: Postgres jsonb and in memory
package repo

import (
	"context"
	"encoding/json"

	"floaty/internal/modkit/repokit"
	perr "floaty/internal/platform/errors"
	"floaty/internal/platform/store"
	"floaty/internal/services/vault/domain"
)

// Schema creates the key value table
const Schema = `CREATE TABLE IF NOT EXISTS floaty_kv (
  key        text PRIMARY KEY,
  value      jsonb NOT NULL,
  updated_at timestamptz NOT NULL DEFAULT now()
)`

const (
	selectKV = `SELECT key, value::text FROM floaty_kv WHERE key = ANY($1)`
	upsertKV = `INSERT INTO floaty_kv (key, value, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

// PG is the Postgres KV
type PG struct {
	db     repokit.TxRunner
	binder repokit.Binder[queries]
}

var _ domain.KV = (*PG)(nil)

// NewPG binds the KV to db. Writes run with a short lock timeout
func NewPG(db repokit.TxRunner) *PG {
	if db == nil {
		panic("vault.PG requires a non nil TxRunner")
	}
	return &PG{
		db:     repokit.WithBeginHooks(db, repokit.SetLocal("lock_timeout", "2s")),
		binder: repokit.BindFunc[queries](func(q repokit.Queryer) queries { return queries{q: q} }),
	}
}

// queries runs the KV statements on the pool or inside a tx
type queries struct {
	q repokit.Queryer
}

func (x queries) read(ctx context.Context, keys []string) ([]kvRow, error) {
	return store.Many(ctx, x.q, scanKV, selectKV, keys)
}

func (x queries) upsert(ctx context.Context, key string, value json.RawMessage) error {
	return store.ExecOne(ctx, x.q, upsertKV, key, string(value))
}

// Migrate creates the table when missing
func (p *PG) Migrate(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, Schema); err != nil {
		return perr.FromPostgres(err, "vault: create floaty_kv")
	}
	return nil
}

type kvRow struct {
	key   string
	value string
}

func scanKV(r store.Row) (kvRow, error) {
	var kv kvRow
	err := r.Scan(&kv.key, &kv.value)
	return kv, err
}

// Get reads the keys of defaults, filling the missing ones from defaults
func (p *PG) Get(ctx context.Context, defaults domain.Bag) (domain.Bag, error) {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	rows, err := repokit.MustBind(p.binder, p.db).read(ctx, keys)
	if err != nil {
		return nil, perr.FromPostgres(err, "vault: read floaty_kv")
	}
	out := make(domain.Bag, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	for _, r := range rows {
		out[r.key] = json.RawMessage(r.value)
	}
	return out, nil
}

// Set upserts every key of bag in one transaction
func (p *PG) Set(ctx context.Context, bag domain.Bag) error {
	if len(bag) == 0 {
		return nil
	}
	for k, v := range bag {
		if !json.Valid(v) {
			return perr.Newf(perr.ErrorCodeJSON, "vault: value for %q is not valid JSON", k)
		}
	}
	err := repokit.WithTx(ctx, p.db, func(q repokit.Queryer) error {
		kv := repokit.MustBind(p.binder, q)
		for _, k := range sortedKeys(bag) {
			if err := kv.upsert(ctx, k, bag[k]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := perr.As(err); ok {
			return err
		}
		return perr.FromPostgres(err, "vault: write floaty_kv")
	}
	return nil
}
