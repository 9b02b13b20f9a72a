package repo

import (
	"context"
	"errors"
	"strings"

	"faqbridge/internal/modkit/repokit"
)

var errBoom = errors.New("boom")

type stmt struct {
	sql  string
	args []any
}

type tag int64

func (t tag) String() string      { return "DELETE" }
func (t tag) RowsAffected() int64 { return int64(t) }

type memRows struct {
	data [][2]string
	i    int
	err  error
}

func (r *memRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *memRows) Scan(dst ...any) error {
	cur := r.data[r.i-1]
	*dst[0].(*string) = cur[0]
	*dst[1].(*string) = cur[1]
	return nil
}

func (r *memRows) Err() error        { return r.err }
func (r *memRows) Close()            {}
func (r *memRows) Columns() []string { return []string{"question", "answer"} }

// fakeDB is a TxRunner that records statements; Tx runs fn against itself
type fakeDB struct {
	execs    []stmt
	queries  []string
	rows     *memRows
	queryErr error
	failOn   string // Exec fails when sql contains it
	deleted  int64
	txs      int
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (repokit.CommandTag, error) {
	f.execs = append(f.execs, stmt{sql: sql, args: args})
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return nil, errBoom
	}
	if strings.HasPrefix(sql, "delete") {
		return tag(f.deleted), nil
	}
	return tag(0), nil
}

func (f *fakeDB) Query(_ context.Context, sql string, _ ...any) (repokit.Rows, error) {
	f.queries = append(f.queries, sql)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.rows == nil {
		return &memRows{}, nil
	}
	return f.rows, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) repokit.Row { return nil }

func (f *fakeDB) Tx(_ context.Context, fn func(q repokit.Queryer) error) error {
	f.txs++
	return fn(f)
}

type fakeCH struct {
	table string
	rows  [][]any
	err   error
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table = table
	f.rows = append(f.rows, rows...)
	return f.err
}

func (f *fakeCH) Query(context.Context, string, ...any) (repokit.Rows, error) { return nil, nil }
func (f *fakeCH) Close() error                                               { return nil }
