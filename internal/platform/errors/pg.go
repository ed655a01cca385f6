package errors

// Postgres classification for the vault store

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the vault can run into
const (
	pgUniqueViolation       = "23505"
	pgForeignKeyViolation   = "23503"
	pgNotNullViolation      = "23502"
	pgCheckViolation        = "23514"
	pgStringTruncation      = "22001"
	pgInvalidTextRepr       = "22P02"
	pgInvalidJSONText       = "22032"
	pgSerializationFailure  = "40001"
	pgDeadlockDetected      = "40P01"
	pgLockNotAvailable      = "55P03"
	pgReadOnlyTransaction   = "25006"
	pgCannotConnectNow      = "57P03"
	pgUndefinedTable        = "42P01"
	pgInsufficientResources = "53000"
)

var sqlStateCodes = map[string]ErrorCode{
	pgUniqueViolation:       ErrorCodeDuplicateKey,
	pgForeignKeyViolation:   ErrorCodeInvalidArgument,
	pgNotNullViolation:      ErrorCodeValidation,
	pgCheckViolation:        ErrorCodeValidation,
	pgStringTruncation:      ErrorCodeInvalidArgument,
	pgInvalidTextRepr:       ErrorCodeInvalidArgument,
	pgInvalidJSONText:       ErrorCodeInvalidArgument,
	pgSerializationFailure:  ErrorCodeDB,
	pgDeadlockDetected:      ErrorCodeDB,
	pgLockNotAvailable:      ErrorCodeDB,
	pgReadOnlyTransaction:   ErrorCodeUnavailable,
	pgCannotConnectNow:      ErrorCodeUnavailable,
	pgInsufficientResources: ErrorCodeUnavailable,
}

// ExtractPgError returns the *pgconn.PgError at the root of err
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports a unique violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgUniqueViolation) }

// IsUndefinedTable reports a missing table, i.e. migrations have not run
func IsUndefinedTable(err error) bool { return IsSQLState(err, pgUndefinedTable) }

// DBErrorCode maps a Postgres error to an ErrorCode. ok is false when err is not a PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}
	if c, found := sqlStateCodes[pgErr.Code]; found {
		return c, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its mapped code. nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresf is FromPostgres with formatting
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

var retryableText = []string{
	"commit unexpectedly resulted in rollback",
	"deadlock detected",
	"could not serialize access",
	"serialization failure",
	"canceling statement due to lock timeout",
	"could not obtain lock on row",
	"terminating connection due to administrator command",
}

// IsRetryable reports transient contention worth another attempt. Context
// cancellation is never retryable
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := ExtractPgError(err); ok {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	for _, t := range retryableText {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
