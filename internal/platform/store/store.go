// Package store is the storage facade: the SQL seams repos depend on and the Postgres backend behind them
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
)

// Store holds the opened backends; a nil PG means Postgres is disabled
type Store struct {
	Log logger.Logger
	PG  TxRunner
}

// Row is a single row result
type Row interface {
	Scan(dest ...any) error
}

// Rows iterates a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the statement surface repos run against, inside or outside a transaction
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner runs fn in one transaction, committing when fn returns nil
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger reports backend readiness
type Pinger interface{ Ping(context.Context) error }

// Open builds a Store with the backends cfg enables
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: logger.Get().With().Logger()}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	if cfg.PG.Enabled {
		a, err := openPG(ctx, cfg, s.Log)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		s.PG = a
	}
	return s, nil
}

// Guard pings every opened backend that can be pinged
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if p, ok := s.PG.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("pg: %w", err)
		}
	}
	return nil
}

// Close releases every opened backend
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
