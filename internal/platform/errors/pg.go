package errors

import (
	"context"
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the history store can hit
const (
	sqlUniqueViolation   = "23505"
	sqlNotNullViolation  = "23502"
	sqlCheckViolation    = "23514"
	sqlStringTruncation  = "22001"
	sqlQueryCanceled     = "57014"
	sqlCannotConnectNow  = "57P03"
	sqlAdminShutdown     = "57P01"
	sqlReadOnlyTx        = "25006"
	sqlTooManyConnection = "53300"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := stderrs.As(err, &pgErr)
	return pgErr, ok
}

// IsDuplicateKey reports a unique constraint violation anywhere in the chain
func IsDuplicateKey(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == sqlUniqueViolation
}

// pgCode classifies a driver error; non-Postgres errors are plain DB failures
func pgCode(err error) ErrorCode {
	if stderrs.Is(err, context.DeadlineExceeded) {
		return ErrorCodeUnavailable
	}
	pgErr, ok := pgError(err)
	if !ok {
		return ErrorCodeDB
	}
	switch pgErr.Code {
	case sqlUniqueViolation:
		return ErrorCodeDuplicateKey
	case sqlNotNullViolation, sqlCheckViolation, sqlStringTruncation:
		return ErrorCodeValidation
	case sqlQueryCanceled, sqlCannotConnectNow, sqlAdminShutdown, sqlReadOnlyTx, sqlTooManyConnection:
		return ErrorCodeUnavailable
	}
	return ErrorCodeDB
}

// FromPostgres wraps a store failure with a code derived from its SQLSTATE
// The violated column, when Postgres reports one, becomes the error field
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	out := Wrap(err, pgCode(err), msg)
	if pgErr, ok := pgError(err); ok && pgErr.ColumnName != "" {
		out = WithField(out, pgErr.ColumnName)
	}
	return out
}
