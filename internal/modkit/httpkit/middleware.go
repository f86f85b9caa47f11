package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "aidetect/internal/platform/net/http"
	"aidetect/internal/platform/net/middleware"
)

// StackOptions tunes the shared API middleware stack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowRequest time.Duration
}

// CommonStack returns the baseline middleware slice for the versioned API
// liveness heartbeats belong on the root router, not here
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 130 * time.Second
	}
	if o.SlowRequest <= 0 {
		o.SlowRequest = 5 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.Recover(phttp.JSON),
		middleware.NoCache(),

		// observability
		middleware.AccessLog(o.SlowRequest),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}

// RateLimit wires the per client limiter to the platform JSON writer
func RateLimit(o middleware.RateLimitOptions) func(http.Handler) http.Handler {
	return middleware.RateLimit(o, phttp.JSON)
}
