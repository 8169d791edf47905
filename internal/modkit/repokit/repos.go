// Package repokit is the glue between services and their SQL repos
package repokit

import (
	"context"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/store"
)

type (
	// Queryer is what a bound repo runs statements on
	Queryer = store.RowQuerier

	// TxRunner opens transactions
	TxRunner = store.TxRunner

	// Rows is a result set
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag reports what a write did
	CommandTag = store.CommandTag
)

// WithTx runs fn in a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
