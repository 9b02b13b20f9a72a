package repokit

import (
	"context"
	"fmt"
	"time"
)

// BeginHook runs first thing inside a tx, on the tx-bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks returns a TxRunner whose txs run hooks in order before fn
// a failing hook aborts the tx and fn never runs
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return hookedTx{inner: inner, hooks: hooks}
}

type hookedTx struct {
	inner TxRunner
	hooks []BeginHook
}

func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.inner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// statements outside a tx pass straight through
func (h hookedTx) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return h.inner.Exec(ctx, sql, args...)
}

func (h hookedTx) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return h.inner.Query(ctx, sql, args...)
}

func (h hookedTx) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return h.inner.QueryRow(ctx, sql, args...)
}

// StatementTimeout caps each statement in the tx, d <= 0 is a no-op hook
func StatementTimeout(d time.Duration) BeginHook { return setLocal("statement_timeout", d) }

// LockTimeout caps how long the tx waits on a row or table lock, d <= 0 is a no-op hook
func LockTimeout(d time.Duration) BeginHook { return setLocal("lock_timeout", d) }

// setLocal scopes a postgres setting to the current tx; the value is in milliseconds
func setLocal(name string, d time.Duration) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		if d <= 0 {
			return nil
		}
		_, err := q.Exec(ctx, fmt.Sprintf("set local %s = %d", name, d.Milliseconds()))
		return err
	}
}
