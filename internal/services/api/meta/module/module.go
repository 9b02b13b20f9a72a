// Package module mounts the health, readiness and version endpoints under /meta
package module

import (
	"time"

	modkit "faqbridge/internal/modkit"
	"faqbridge/internal/modkit/httpkit"
	"faqbridge/internal/modkit/repokit"

	metahttp "faqbridge/internal/services/api/meta/http"
)

// ServiceName is reported by /meta/health and /meta/version
const ServiceName = "faqbridge-api"

// Module exports no ports
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New wires the meta endpoints against the backends in deps
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	// pg and ch always appear in /ready, reported as skipped when not configured
	checks := map[string]repokit.Pinger{"pg": nil, "ch": nil}
	for name, p := range deps.Pingers() {
		checks[name] = p
	}

	m := &Module{startedAt: time.Now()}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Checks:      checks,
		})
	})
	return m
}
