// Package repokit provides the SQL seams and helpers repositories are written against
package repokit

import (
	"context"

	"floaty/internal/platform/store"
)

// Queryer is the read and write surface for SQL repos
type Queryer = store.RowQuerier

// TxRunner executes a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows is a query result set
	Rows = store.Rows
	// Row is a single row result
	Row = store.Row
	// CommandTag is the result of a write
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
