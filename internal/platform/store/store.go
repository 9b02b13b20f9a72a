// Package store provides a unified interface to the optional storage backends
package store

import (
	"context"
	"errors"

	"faqbridge/internal/platform/logger"
)

// Store holds the optional backends, the corpus database and the ask event sink
// the zero value has neither and closes cleanly
type Store struct {
	Log logger.Logger

	// PG holds the corpus when FAQ_CORPUS_SOURCE=pg, nil without SERVICE_PGSQL_DBURL
	PG TxRunner

	// CH receives ask events, nil without SERVICE_CLICKHOUSE_DBURL
	CH Clickhouse
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// Querier is the read surface shared by postgres and clickhouse
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Querier
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the seam for columnar appends and reads
// Insert takes rows in column order of the target table
type Clickhouse interface {
	Querier
	Insert(ctx context.Context, table string, rows [][]any) error
	Close() error
}

// Pinger is a backend that can answer a readiness probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// Option adjusts the Store before any backend is dialed
type Option func(*Store) error

// WithLogger sets the logger backends and the query tracer write to
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// Open dials the backends cfg enables; the rest stay nil
// a clickhouse failure closes an already opened postgres pool
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Logger()

	if cfg.PG.Enabled {
		p, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.PG = p
	}

	if cfg.CH.Enabled {
		c, err := openCH(ctx, cfg)
		if err != nil {
			if s.PG != nil {
				_ = s.Close(ctx)
			}
			return nil, err
		}
		s.CH = c
	}

	return s, nil
}

// Close releases whichever backends were opened
func (s *Store) Close(_ context.Context) error {
	var errs []error
	if s.CH != nil {
		if e := s.CH.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	return errors.Join(errs...)
}
