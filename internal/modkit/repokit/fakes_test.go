package repokit

import (
	"context"

	"faqbridge/internal/platform/store"
)

// fakeQ records the statements it receives
type fakeQ struct {
	sqls    []string
	args    [][]any
	execErr error
}

func (f *fakeQ) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.sqls = append(f.sqls, sql)
	f.args = append(f.args, append([]any(nil), args...))
	return nil, f.execErr
}

func (f *fakeQ) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.sqls = append(f.sqls, sql)
	f.args = append(f.args, append([]any(nil), args...))
	return nil, nil
}

func (f *fakeQ) QueryRow(_ context.Context, sql string, args ...any) store.Row {
	f.sqls = append(f.sqls, sql)
	f.args = append(f.args, append([]any(nil), args...))
	return nil
}

// fakeTx runs fn against its own queryer
type fakeTx struct {
	fakeQ
	inner   *fakeQ
	txCalls int
}

func (f *fakeTx) Tx(_ context.Context, fn func(Queryer) error) error {
	f.txCalls++
	return fn(f.inner)
}

var (
	_ Queryer  = (*fakeQ)(nil)
	_ TxRunner = (*fakeTx)(nil)
)

// fakePinger records the ctx it was invoked with and returns a preset error
type fakePinger struct {
	lastCtx context.Context
	calls   int
	err     error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.lastCtx = ctx
	f.calls++
	return f.err
}

type errBoom string

func (e errBoom) Error() string { return string(e) }
