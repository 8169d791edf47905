package pg

import (
	"bytes"
	"context"
	stderrs "errors"
	"strings"
	"testing"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func TestOpen_AppliesConfig(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = c
		return nil, nil
	})

	mutated := false
	p, err := Open(context.Background(), Config{
		URL:      "postgres://u:p@localhost:5432/pnp?sslmode=disable",
		AppName:  "pnp-test",
		MaxConns: 7,
		MinConns: 2,
		SlowMs:   250,
	}, nil, func(*pgxpool.Config) { mutated = true })
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if seen.MaxConns != 7 || seen.MinConns != 2 || !mutated {
		t.Fatalf("pool config = %d/%d mutated=%v", seen.MaxConns, seen.MinConns, mutated)
	}
	if seen.ConnConfig.RuntimeParams["application_name"] != "pnp-test" {
		t.Fatalf("application_name = %q", seen.ConnConfig.RuntimeParams["application_name"])
	}
	if p.SlowMs != 250 {
		t.Fatalf("SlowMs = %d", p.SlowMs)
	}
	p.Close()
}

func TestOpen_Errors(t *testing.T) {
	testkit.Serial(t)

	if _, err := Open(context.Background(), Config{URL: "::not a url::"}, nil, nil); err == nil {
		t.Fatalf("expected parse error")
	}

	boom := stderrs.New("pool failed")
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) { return nil, boom })
	if _, err := Open(context.Background(), Config{URL: "postgres://localhost/pnp"}, nil, nil); !stderrs.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}

	var nilPG *PG
	nilPG.Close()
}

func TestTracer_LevelsAndRedaction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	tr.OnQuery(context.Background(), QueryEvent{SQL: "select\n\t1", Args: []any{"secret body"}, ElapsedUS: 1500})
	tr.OnQuery(context.Background(), QueryEvent{SQL: "select 2", Slow: true})
	tr.OnQuery(context.Background(), QueryEvent{SQL: "select 3", Err: stderrs.New("bad")})

	out := buf.String()
	for _, want := range []string{`"sql":"select 1"`, `"level":"debug"`, `"level":"warn"`, `"level":"error"`, `"args":1`, `"elapsed_ms":1.5`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in %s", want, out)
		}
	}
	if strings.Contains(out, "secret body") {
		t.Fatalf("argument value leaked: %s", out)
	}
}

func TestCompact(t *testing.T) {
	t.Parallel()

	if got := Compact("  select id\n  from reflections\twhere x = $1  "); got != "select id from reflections where x = $1" {
		t.Fatalf("Compact = %q", got)
	}
}
