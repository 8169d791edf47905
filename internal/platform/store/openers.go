package store

import (
	"context"
	"fmt"
	"time"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/store/pg"
)

var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// pingFn is the boot-time ping, a seam for tests
var pingFn = func(ctx context.Context, p *pg.PG) error { return p.Pool.Ping(ctx) }

// openPG builds the pool and waits for Postgres with capped exponential backoff
func openPG(ctx context.Context, cfg Config, log logger.Logger) (*pgAdapter, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(log)
	}
	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectAttempts
	if attempts <= 0 {
		attempts = 20
	}
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	backoff := 150 * time.Millisecond
	var last error
	for i := 1; i <= attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		last = pingFn(pctx, p)
		cancel()
		if last == nil {
			return newPGAdapter(p), nil
		}
		log.Warn().Err(last).Int("attempt", i).Msg("postgres not ready")
		if i == attempts {
			break
		}
		if err := sleep(ctx, backoff); err != nil {
			p.Close()
			return nil, err
		}
		backoff = min(backoff*2, 2*time.Second)
	}
	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, last)
}
