package store

import (
	"context"
	"errors"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxRows is an in memory pgx.Rows
type pgxRows struct {
	pgx.Rows
	cols   []string
	data   [][]any
	idx    int
	err    error
	closed bool
}

func newPgxRows(cols []string, data ...[]any) *pgxRows {
	return &pgxRows{cols: cols, data: data, idx: -1}
}

func (r *pgxRows) Close()     { r.closed = true }
func (r *pgxRows) Err() error { return r.err }
func (r *pgxRows) FieldDescriptions() []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		out[i] = pgconn.FieldDescription{Name: c}
	}
	return out
}

func (r *pgxRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *pgxRows) Scan(dest ...any) error {
	if r.idx < 0 || r.idx >= len(r.data) {
		return errors.New("scan out of range")
	}
	return assignAll(r.data[r.idx], dest)
}

func assignAll(src []any, dest []any) error {
	if len(src) != len(dest) {
		return errors.New("dest len mismatch")
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i]).Elem()
		sv := reflect.ValueOf(src[i])
		if !sv.Type().ConvertibleTo(dv.Type()) {
			return errors.New("type mismatch")
		}
		dv.Set(sv.Convert(dv.Type()))
	}
	return nil
}

type pgxRow struct {
	vals []any
	err  error
}

func (r pgxRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignAll(r.vals, dest)
}

// pgxTx records statements and its outcome
type pgxTx struct {
	pgx.Tx
	execs      []string
	execErr    error
	row        pgxRow
	rows       *pgxRows
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *pgxTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *pgxTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	if f.rows == nil {
		return nil, errors.New("no rows configured")
	}
	return f.rows, nil
}

func (f *pgxTx) QueryRow(context.Context, string, ...any) pgx.Row { return f.row }

func (f *pgxTx) Commit(context.Context) error   { f.committed = true; return f.commitErr }
func (f *pgxTx) Rollback(context.Context) error { f.rolledBack = true; return nil }

// querier is a RowQuerier backed by the pgx fakes
type querier struct {
	traced
	tx *pgxTx
}

func newQuerier(tx *pgxTx) querier { return querier{traced: traced{q: tx}, tx: tx} }
