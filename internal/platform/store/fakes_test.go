package store

import (
	"context"
	"errors"
	"fmt"
)

// memRows is an in-memory Rows over fixed values
type memRows struct {
	cols   []string
	data   [][]any
	i      int
	err    error
	closed bool
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
	if len(dst) != len(cur) {
		return fmt.Errorf("scan: %d dst for %d cols", len(dst), len(cur))
	}
	for k := range dst {
		switch p := dst[k].(type) {
		case *string:
			*p = cur[k].(string)
		case *int:
			*p = cur[k].(int)
		default:
			return errors.New("scan: unsupported dst")
		}
	}
	return nil
}

func (r *memRows) Err() error        { return r.err }
func (r *memRows) Close()            { r.closed = true }
func (r *memRows) Columns() []string { return r.cols }

type memRow struct {
	v   any
	err error
}

func (r memRow) Scan(dst ...any) error {
	if r.err != nil {
		return r.err
	}
	switch p := dst[0].(type) {
	case *int:
		*p = r.v.(int)
	case *string:
		*p = r.v.(string)
	}
	return nil
}

// fakeQuerier records the last statement and returns canned results
type fakeQuerier struct {
	lastSQL  string
	rows     *memRows
	queryErr error
	row      memRow
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (CommandTag, error) {
	f.lastSQL = sql
	return nil, nil
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (Rows, error) {
	f.lastSQL = sql
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) Row {
	f.lastSQL = sql
	return f.row
}
