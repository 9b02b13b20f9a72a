// Package middleware is the chi and go-chi/cors middleware the API stack is built from
// plus the access log and JSON panic recovery written for it
package middleware

import (
	"net/http"
	"time"

	pstrings "faqbridge/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware wraps a handler
type Middleware = func(http.Handler) http.Handler

func passthrough(next http.Handler) http.Handler { return next }

// RequestID reuses an incoming X-Request-ID or mints one
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Forwarded-For and X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

// NoCache forbids client and proxy caching; answers depend on the translator
func NoCache() Middleware { return chimw.NoCache }

// StripSlashes lets /faq/ask/ reach /faq/ask
func StripSlashes() Middleware { return chimw.StripSlashes }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// Timeout cancels the request context after d; translator calls see the cancellation
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress gzips and deflates responses at level
func Compress(level int) Middleware { return chimw.NewCompressor(level).Handler }

// Throttle caps in-flight requests at limit, limit <= 0 turns it off
func Throttle(limit int) Middleware {
	if limit <= 0 {
		return passthrough
	}
	return chimw.Throttle(limit)
}

// CORSOptions is the part of go-chi/cors the API exposes
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS fills empty lists with what the FAQ endpoints need
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
