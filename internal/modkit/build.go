package modkit

import (
	"slices"

	"faqbridge/internal/modkit/httpkit"
	str "faqbridge/internal/platform/strings"
)

// Built is the resolved option set for one module
type Built struct {
	Name     string
	Prefix   string
	Mw       []httpkit.Middleware
	Ports    any
	Register func(httpkit.Router)
}

// Build applies opts in order, later options win; nil options are skipped
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	b.Mw = slices.Clone(b.Mw)
	return b
}

// Base implements Module on top of a Built and the routes the module owns
// feature modules embed it and add their own collaborators
type Base struct {
	b      Built
	routes func(httpkit.Router)
}

// NewBase pairs resolved options with the module's route registration
func NewBase(b Built, routes func(httpkit.Router)) Base {
	return Base{b: b, routes: routes}
}

// Name panics on a blank name since the registry keys on it
func (m Base) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the normalized mount path
func (m Base) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Middlewares returns the per-module middleware in mount order
func (m Base) Middlewares() []httpkit.Middleware { return m.b.Mw }

// Ports returns the exported port bundle, nil when the module exports none
func (m Base) Ports() any { return m.b.Ports }

// MountRoutes opens the module prefix, applies its middleware, then registers routes
func (m Base) MountRoutes(r httpkit.Router) {
	r.Route(m.Prefix(), func(sub httpkit.Router) {
		if len(m.b.Mw) > 0 {
			sub.Use(m.b.Mw...)
		}
		if m.routes != nil {
			m.routes(sub)
		}
		if m.b.Register != nil {
			m.b.Register(sub)
		}
	})
}
