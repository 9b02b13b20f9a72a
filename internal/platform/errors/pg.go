package errors

import (
	"context"
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes that change how a corpus failure is reported
var sqlStateCodes = map[string]ErrorCode{
	"23505": ErrorCodeInvalidArgument, // unique_violation
	"23502": ErrorCodeValidation,      // not_null_violation
	"23514": ErrorCodeValidation,      // check_violation
	"42P01": ErrorCodeNotFound,        // undefined_table, schema never applied
	"25006": ErrorCodeUnavailable,     // read_only_sql_transaction, replica or failover
	"57P03": ErrorCodeUnavailable,     // cannot_connect_now
}

// FromPostgres wraps a pgx error under msg with the code its SQLSTATE maps to
// cancellations and deadlines become Unavailable; anything else is DB; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, postgresCode(err), msg)
}

func postgresCode(err error) ErrorCode {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) || stderrs.As(err, &pgErr) {
		if c, ok := sqlStateCodes[pgErr.Code]; ok {
			return c
		}
		return ErrorCodeDB
	}
	if stderrs.Is(err, context.DeadlineExceeded) || stderrs.Is(err, context.Canceled) {
		return ErrorCodeUnavailable
	}
	return ErrorCodeDB
}
