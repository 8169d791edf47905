// Package migrate applies the embedded goose migrations to Postgres
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver "pgx"
	"github.com/pressly/goose/v3"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
)

//go:embed sql/*.sql
var files embed.FS

const dir = "sql"

// goose keeps its dialect, filesystem and logger in package globals
var gooseMu sync.Mutex

// Open returns a database/sql handle on the pgx driver for dsn
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("migrate: open: %w", err)
	}
	return db, nil
}

// Runner applies migrations to one database
type Runner struct {
	db  *sql.DB
	log *logger.Logger
}

// New builds a Runner; a nil log uses the process logger
func New(db *sql.DB, log *logger.Logger) *Runner {
	if db == nil {
		panic("migrate: nil db")
	}
	if log == nil {
		log = logger.Named("migrate")
	}
	return &Runner{db: db, log: log}
}

func (r *Runner) with(fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(files)
	goose.SetLogger(gooseLogger{r.log})
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return fn()
}

// Up applies every pending migration
func (r *Runner) Up(ctx context.Context) error {
	return r.with(func() error { return goose.UpContext(ctx, r.db, dir) })
}

// Down rolls back the latest migration
func (r *Runner) Down(ctx context.Context) error {
	return r.with(func() error { return goose.DownContext(ctx, r.db, dir) })
}

// Status logs the state of every migration
func (r *Runner) Status(ctx context.Context) error {
	return r.with(func() error { return goose.StatusContext(ctx, r.db, dir) })
}

// Version returns the current schema version
func (r *Runner) Version(ctx context.Context) (int64, error) {
	var v int64
	err := r.with(func() error {
		var err error
		v, err = goose.GetDBVersionContext(ctx, r.db)
		return err
	})
	return v, err
}

// Run dispatches a command name as the migrate binary accepts it
func (r *Runner) Run(ctx context.Context, command string) error {
	switch command {
	case "up":
		return r.Up(ctx)
	case "down":
		return r.Down(ctx)
	case "status":
		return r.Status(ctx)
	case "version":
		v, err := r.Version(ctx)
		if err == nil {
			r.log.Info().Int64("version", v).Msg("schema version")
		}
		return err
	}
	return fmt.Errorf("migrate: unknown command %q", command)
}

// gooseLogger routes goose output through zerolog
type gooseLogger struct{ l *logger.Logger }

func (g gooseLogger) Printf(format string, v ...any) { g.l.Info().Msgf(format, v...) }
func (g gooseLogger) Fatalf(format string, v ...any) { g.l.Fatal().Msgf(format, v...) }
