// Package modkit provides module wiring and core deps
package modkit

import (
	"context"

	"faqbridge/internal/modkit/repokit"
	"faqbridge/internal/platform/config"
	"faqbridge/internal/platform/logger"
	"faqbridge/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// PG and CH are nil when the backend is not configured
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// Pingers returns the configured backends that can report readiness keyed by name
func (d Deps) Pingers() map[string]repokit.Pinger {
	out := map[string]repokit.Pinger{}
	if p, ok := d.PG.(repokit.Pinger); ok {
		out["pg"] = p
	}
	if p, ok := d.CH.(repokit.Pinger); ok {
		out["ch"] = p
	}
	return out
}

// Ready pings every configured backend
func (d Deps) Ready(ctx context.Context) error {
	return repokit.Check(ctx, d.Pingers())
}
