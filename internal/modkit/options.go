package modkit

import "faqbridge/internal/modkit/httpkit"

// Option adjusts how a module is named and mounted
type Option func(*Built)

// WithName overrides the module name used in logs and the port registry
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix overrides the path the module mounts under
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends middleware that wraps only this module's routes
func WithMiddlewares(mw ...httpkit.Middleware) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts replaces the port bundle the module exports
func WithPorts(p any) Option {
	return func(b *Built) { b.Ports = p }
}

// WithRegister adds routes after the module's own, inside its prefix
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Built) { b.Register = fn }
}
