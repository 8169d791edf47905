package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) error {
	return &pgconn.PgError{Code: code, ConstraintName: "surfacing_events_owner_entry_key"}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	dup := fmt.Errorf("insert: %w", pgErr(SQLStateUniqueViolation))
	if !IsDuplicateKey(dup) {
		t.Fatalf("wrapped 23505 should be duplicate key")
	}
	if !IsDuplicateKey(Wrap(dup, ErrorCodeDB, "record event")) {
		t.Fatalf("perr wrapped 23505 should be duplicate key")
	}
	if IsDuplicateKey(stderrs.New("23505")) {
		t.Fatalf("text is not a PgError")
	}
	if !IsForeignKeyViolation(pgErr(SQLStateForeignKeyViolation)) || !IsCheckViolation(pgErr(SQLStateCheckViolation)) {
		t.Fatalf("fk/check predicates")
	}
	if Constraint(dup) != "surfacing_events_owner_entry_key" || Constraint(stderrs.New("x")) != "" {
		t.Fatalf("Constraint = %q", Constraint(dup))
	}
}

func TestFromPostgres(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"unique", pgErr(SQLStateUniqueViolation), ErrorCodeDuplicateKey},
		{"check", pgErr(SQLStateCheckViolation), ErrorCodeValidation},
		{"not null", pgErr(SQLStateNotNullViolation), ErrorCodeValidation},
		{"fk", pgErr(SQLStateForeignKeyViolation), ErrorCodeInvalidArgument},
		{"bad uuid", pgErr(SQLStateInvalidText), ErrorCodeInvalidArgument},
		{"starting up", pgErr(SQLStateCannotConnectNow), ErrorCodeUnavailable},
		{"deadlock", pgErr(SQLStateDeadlock), ErrorCodeDB},
		{"deadline", context.DeadlineExceeded, ErrorCodeUnavailable},
		{"foreign", stderrs.New("io"), ErrorCodeDB},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got := FromPostgres(c.err, "query")
			if CodeOf(got) != c.want {
				t.Fatalf("code = %s, want %s", CodeOf(got), c.want)
			}
			if !stderrs.Is(got, c.err) {
				t.Fatalf("cause lost")
			}
		})
	}

	if FromPostgres(nil, "x") != nil || FromPostgresf(nil, "x %d", 1) != nil {
		t.Fatalf("nil must stay nil")
	}
	if got := FromPostgresf(pgErr(SQLStateDeadlock), "load %s", "pool").Error(); got[:9] != "load pool" {
		t.Fatalf("FromPostgresf message = %q", got)
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{fmt.Errorf("q: %w", context.DeadlineExceeded), false},
		{pgErr(SQLStateSerialization), true},
		{pgErr(SQLStateDeadlock), true},
		{pgErr(SQLStateLockNotAvailable), true},
		{pgErr(SQLStateAdminShutdown), true},
		{pgErr(SQLStateUniqueViolation), false},
		{stderrs.New("commit unexpectedly resulted in rollback"), true},
		{stderrs.New("ERROR: could not serialize access due to concurrent update"), true},
		{stderrs.New("syntax error"), false},
	}
	for i, c := range cases {
		if got := IsRetryable(c.err); got != c.want {
			t.Fatalf("case %d (%v): got %v, want %v", i, c.err, got, c.want)
		}
	}
}
