// Package httpkit is the routing surface feature modules build on
// modules import this instead of internal/platform/net/http so the seam stays small
package httpkit

import (
	"net/http"
	"path"
	"strings"

	phttp "faqbridge/internal/platform/net/http"
	"faqbridge/internal/platform/net/http/bind"
)

type (
	// Envelope is the JSON body every endpoint answers with
	Envelope = phttp.Envelope

	// Response lets a handler pick its own status, e.g. 503 from /ready
	Response = phttp.Response

	// Handler is the plain handler func
	Handler = phttp.Handler

	// Router is the chi subset modules mount against
	Router = phttp.Router

	// Middleware wraps a handler
	Middleware = func(http.Handler) http.Handler
)

// Get mounts a body-less handler; a returned Response passes through untouched
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.NoBodyHandler(h))
}

// PostJSON mounts a handler whose body is decoded and validated into T first
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// Validate applies the struct tags to inputs assembled outside the JSON binder, such as query strings
func Validate(v any) error { return bind.Validate(v) }

// MountAPI opens /api/<version>, applies mw to that scope only, then hands it to mount
func MountAPI(r Router, version string, mw []Middleware, mount func(Router)) {
	r.Route(path.Join("/api", strings.Trim(version, "/")), func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 is MountAPI for the only version served today
func MountAPIV1(r Router, mw []Middleware, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
