package store

import (
	"context"

	perr "github.com/promptandpause/promptandpause-sub003/internal/platform/errors"
)

// ownerTxAttempts bounds RunAsOwner; a serialization failure or deadlock gets one more try
const ownerTxAttempts = 2

// RunAsOwner runs fn in a transaction on tx with ctx scoped to ownerID
// fn may run again after a retryable failure, the failed attempt is rolled back
func RunAsOwner(ctx context.Context, tx TxRunner, ownerID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithOwner(ctx, ownerID)
	var err error
	for attempt := 1; attempt <= ownerTxAttempts; attempt++ {
		err = tx.Tx(ctx, func(q RowQuerier) error { return fn(ctx, q) })
		if err == nil || !perr.IsRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}
