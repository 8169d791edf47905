package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the services branch on
const (
	SQLStateUniqueViolation     = "23505"
	SQLStateForeignKeyViolation = "23503"
	SQLStateNotNullViolation    = "23502"
	SQLStateCheckViolation      = "23514"
	SQLStateInvalidText         = "22P02"
	SQLStateStringTooLong       = "22001"
	SQLStateSerialization       = "40001"
	SQLStateDeadlock            = "40P01"
	SQLStateLockNotAvailable    = "55P03"
	SQLStateQueryCanceled       = "57014"
	SQLStateCannotConnectNow    = "57P03"
	SQLStateAdminShutdown       = "57P01"
)

// PgError finds a *pgconn.PgError anywhere in the chain
func PgError(err error) (*pgconn.PgError, bool) {
	var pg *pgconn.PgError
	if stderrs.As(err, &pg) {
		return pg, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, state string) bool {
	pg, ok := PgError(err)
	return ok && pg.Code == state
}

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, SQLStateUniqueViolation) }

// IsForeignKeyViolation reports a dangling reference
func IsForeignKeyViolation(err error) bool { return IsSQLState(err, SQLStateForeignKeyViolation) }

// IsCheckViolation reports a failed CHECK constraint
func IsCheckViolation(err error) bool { return IsSQLState(err, SQLStateCheckViolation) }

// Constraint returns the violated constraint name, "" when unknown
func Constraint(err error) string {
	if pg, ok := PgError(err); ok {
		return pg.ConstraintName
	}
	return ""
}

// DBErrorCode classifies a Postgres error; ok is false for non Postgres errors
func DBErrorCode(err error) (ErrorCode, bool) {
	pg, ok := PgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pg.Code {
	case SQLStateUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case SQLStateNotNullViolation, SQLStateCheckViolation:
		return ErrorCodeValidation, true
	case SQLStateForeignKeyViolation, SQLStateInvalidText, SQLStateStringTooLong:
		return ErrorCodeInvalidArgument, true
	case SQLStateCannotConnectNow, SQLStateAdminShutdown:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with a code derived from its SQLSTATE
// Context cancellation maps to Unavailable; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresf is FromPostgres with formatting
func FromPostgresf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// IsRetryable reports contention or failover errors worth one more attempt
// Local cancellation is never retryable
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pg, ok := PgError(err); ok {
		switch pg.Code {
		case SQLStateSerialization, SQLStateDeadlock, SQLStateLockNotAvailable, SQLStateAdminShutdown:
			return true
		}
		return false
	}
	msg := strings.ToLower(Root(err).Error())
	return strings.Contains(msg, "commit unexpectedly resulted in rollback") ||
		strings.Contains(msg, "could not serialize access")
}
