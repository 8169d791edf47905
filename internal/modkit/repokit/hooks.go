package repokit

import (
	"context"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/store"
)

// BeginHook runs first inside every transaction, on the transaction's Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks returns a TxRunner whose transactions run hooks before fn
// Statements outside a transaction go to inner untouched
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return hookedTx{TxRunner: inner, hooks: hooks}
}

type hookedTx struct {
	TxRunner
	hooks []BeginHook
}

func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// Ping forwards to inner when it can be pinged, so readiness checks see through the wrapper
func (h hookedTx) Ping(ctx context.Context) error {
	if p, ok := h.TxRunner.(store.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

const setOwnerSQL = `select set_config('app.owner_id', $1, true)`

// OwnerScope publishes the ctx owner to row level security as app.owner_id for the
// rest of the transaction; contexts without an owner are left alone
func OwnerScope(ctx context.Context, q Queryer) error {
	owner, ok := store.OwnerID(ctx)
	if !ok {
		return nil
	}
	_, err := q.Exec(ctx, setOwnerSQL, owner)
	return err
}
