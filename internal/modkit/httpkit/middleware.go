package httpkit

import (
	"compress/flate"
	"time"

	"faqbridge/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack, zero values pick the defaults
type StackOptions struct {
	// Timeout bounds each request, default 30s
	Timeout time.Duration
	// SlowRequest marks access log lines at warn, default 2s
	SlowRequest time.Duration
	// Origins allowed by CORS, default any
	Origins []string
	// Throttle caps in-flight requests, 0 disables
	Throttle int
}

// CommonStack returns the baseline middleware slice for the versioned api scope
func CommonStack(o StackOptions) []Middleware {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.SlowRequest <= 0 {
		o.SlowRequest = 2 * time.Second
	}
	return []Middleware{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Throttle(o.Throttle),
		middleware.Timeout(o.Timeout),
	}
}
