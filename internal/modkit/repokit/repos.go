// Package repokit is the storage seam repositories are written against
package repokit

import (
	"context"

	"faqbridge/internal/platform/store"
)

type (
	// Queryer runs statements on a pool or inside a tx
	Queryer = store.RowQuerier

	// TxRunner is a Queryer that can also open a tx
	TxRunner = store.TxRunner

	// Clickhouse is the columnar batch seam event sinks write through
	Clickhouse = store.Clickhouse

	// Rows is a result set
	Rows = store.Rows

	// Row is a single-row result
	Row = store.Row

	// CommandTag reports what a write touched
	CommandTag = store.CommandTag
)

// Binder builds a repo T over whichever Queryer is current, pool or tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// MustBind binds b to q and panics when q is nil, a wiring bug rather than a runtime failure
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: bind on nil Queryer")
	}
	return b.Bind(q)
}

// WithTx runs fn on the tx-bound Queryer of tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	if tx == nil {
		panic("repokit: nil TxRunner")
	}
	return tx.Tx(ctx, fn)
}
