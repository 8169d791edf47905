//go:build integration_pg

// Package pgtest starts a throwaway Postgres with the schema applied for integration tests
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/store"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/store/migrate"
)

// DB is a migrated database plus a Store opened on it
type DB struct {
	DSN   string
	Store *store.Store
}

// Start runs postgres:16-alpine, applies migrations and opens a Store
// everything is torn down through t.Cleanup
func Start(t *testing.T) *DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "pnp",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/pnp?sslmode=disable", host, port.Port())

	sqlDB, err := migrate.Open(dsn)
	if err != nil {
		t.Fatalf("migrate open: %v", err)
	}
	defer sqlDB.Close()
	if err := migrate.New(sqlDB, nil).Up(ctx); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	s, err := store.Open(ctx, store.Config{
		AppName: "pnp-integration",
		PG: store.PGConfig{
			Enabled:         true,
			URL:             dsn,
			MaxConns:        8,
			ConnectAttempts: 5,
			PingTimeout:     5 * time.Second,
		},
	})
	if err != nil {
		t.Fatalf("store open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return &DB{DSN: dsn, Store: s}
}

// Exec runs setup sql on the pool and fails the test on error
func (d *DB) Exec(t *testing.T, sql string, args ...any) {
	t.Helper()
	if _, err := d.Store.PG.Exec(context.Background(), sql, args...); err != nil {
		t.Fatalf("exec %q: %v", sql, err)
	}
}
