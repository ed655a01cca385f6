package store

import (
	"context"
	"errors"
	"testing"

	perr "floaty/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

type note struct {
	ID   int64
	Text string
}

func scanNote(r Row) (note, error) {
	var n note
	err := r.Scan(&n.ID, &n.Text)
	return n, err
}

func TestExecOne(t *testing.T) {
	ctx := context.Background()
	tx := &pgxTx{}
	if err := ExecOne(ctx, newQuerier(tx), "UPDATE floaty_kv SET value = $1"); err != nil {
		t.Fatalf("ExecOne: %v", err)
	}

	tx.execErr = errors.New("boom")
	if err := ExecOne(ctx, newQuerier(tx), "UPDATE x"); err == nil || err.Error() != "boom" {
		t.Fatalf("want exec error, got %v", err)
	}
}

type zeroTag struct{}

func (zeroTag) String() string      { return "UPDATE 0" }
func (zeroTag) RowsAffected() int64 { return 0 }

type zeroQuerier struct{ RowQuerier }

func (zeroQuerier) Exec(context.Context, string, ...any) (CommandTag, error) { return zeroTag{}, nil }

func TestExecOne_NoRowsAffected(t *testing.T) {
	err := ExecOne(context.Background(), zeroQuerier{}, "UPDATE x")
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("want DB error, got %v", err)
	}
}

func TestScalar(t *testing.T) {
	ctx := context.Background()

	got, err := Scalar[string](ctx, newQuerier(&pgxTx{row: pgxRow{vals: []any{`{"a":1}`}}}), "SELECT value")
	if err != nil || got != `{"a":1}` {
		t.Fatalf("got %q err %v", got, err)
	}

	_, err = Scalar[string](ctx, newQuerier(&pgxTx{row: pgxRow{err: pgx.ErrNoRows}}), "SELECT value")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("no rows should map to not found, got %v", err)
	}

	_, err = Scalar[string](ctx, newQuerier(&pgxTx{row: pgxRow{err: errors.New("conn reset")}}), "SELECT value")
	if err == nil || perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("other errors pass through, got %v", err)
	}
}

func TestMany(t *testing.T) {
	ctx := context.Background()
	rs := newPgxRows([]string{"id", "text"}, []any{int64(1), "a"}, []any{int64(2), "b"})
	got, err := Many(ctx, newQuerier(&pgxTx{rows: rs}), scanNote, "SELECT")
	if err != nil || len(got) != 2 || got[1].Text != "b" {
		t.Fatalf("got %+v err %v", got, err)
	}
	if !rs.closed {
		t.Fatalf("rows not closed")
	}

	got, err = Many(ctx, newQuerier(&pgxTx{rows: newPgxRows([]string{"id", "text"})}), scanNote, "SELECT")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("empty result should be a non nil empty slice, got %#v err %v", got, err)
	}

	bad := newPgxRows([]string{"id"}, []any{int64(1)})
	if _, err := Many(ctx, newQuerier(&pgxTx{rows: bad}), scanNote, "SELECT"); err == nil {
		t.Fatalf("scan error should propagate")
	}

	iterErr := newPgxRows([]string{"id", "text"})
	iterErr.err = errors.New("network")
	if _, err := Many(ctx, newQuerier(&pgxTx{rows: iterErr}), scanNote, "SELECT"); err == nil {
		t.Fatalf("rows.Err should propagate")
	}

	if _, err := Many(ctx, newQuerier(&pgxTx{}), scanNote, "SELECT"); err == nil {
		t.Fatalf("query error should propagate")
	}
}

func TestOne(t *testing.T) {
	ctx := context.Background()

	got, err := One(ctx, newQuerier(&pgxTx{rows: newPgxRows([]string{"id", "text"}, []any{int64(7), "x"})}), scanNote, "SELECT")
	if err != nil || got.ID != 7 {
		t.Fatalf("got %+v err %v", got, err)
	}

	_, err = One(ctx, newQuerier(&pgxTx{rows: newPgxRows([]string{"id", "text"})}), scanNote, "SELECT")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}

	two := newPgxRows([]string{"id", "text"}, []any{int64(1), "a"}, []any{int64(2), "b"})
	if _, err := One(ctx, newQuerier(&pgxTx{rows: two}), scanNote, "SELECT"); !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("want DB error for two rows, got %v", err)
	}
}
