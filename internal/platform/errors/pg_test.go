package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestFromPostgres(t *testing.T) {
	pgErr := func(code string) error { return &pgconn.PgError{Code: code} }

	cases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"unique", pgErr("23505"), ErrorCodeInvalidArgument},
		{"not null", pgErr("23502"), ErrorCodeValidation},
		{"check", pgErr("23514"), ErrorCodeValidation},
		{"missing table", pgErr("42P01"), ErrorCodeNotFound},
		{"read only", pgErr("25006"), ErrorCodeUnavailable},
		{"starting up", pgErr("57P03"), ErrorCodeUnavailable},
		{"other sqlstate", pgErr("40001"), ErrorCodeDB},
		{"wrapped pg error", fmt.Errorf("tx: %w", pgErr("42P01")), ErrorCodeNotFound},
		{"deadline", context.DeadlineExceeded, ErrorCodeUnavailable},
		{"canceled", fmt.Errorf("query: %w", context.Canceled), ErrorCodeUnavailable},
		{"plain", stderrs.New("io"), ErrorCodeDB},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := FromPostgres(tc.err, "list faq entries")
			if got := CodeOf(err); got != tc.want {
				t.Fatalf("code = %v, want %v", got, tc.want)
			}
			if !stderrs.Is(err, Root(tc.err)) {
				t.Fatal("cause lost")
			}
			if WireFrom(err).Message != "list faq entries" {
				t.Fatalf("wire = %+v", WireFrom(err))
			}
		})
	}

	if FromPostgres(nil, "x") != nil {
		t.Fatal("nil should stay nil")
	}
}
