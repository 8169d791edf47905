// Package middleware adapts chi and go-chi/cors middleware and adds the in house ones
package middleware

import (
	"net/http"
	"time"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
	pnet "github.com/promptandpause/promptandpause-sub003/internal/platform/net"
	pstrings "github.com/promptandpause/promptandpause-sub003/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// RequestID takes X-Request-Id or mints one, echoes it back and seeds the request logger
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		seed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := pnet.RequestID(r.Context())
			w.Header().Set(chimw.RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(logger.WithRequest(r.Context(), id, "")))
		})
		return chimw.RequestID(seed)
	}
}

// RealIP trusts X-Forwarded-For and X-Real-IP from the load balancer
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// NoCache marks responses as uncacheable
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// Compress negotiates gzip or deflate at level
func Compress(level int) func(http.Handler) http.Handler {
	return chimw.NewCompressor(level, "application/json").Handler
}

// StripSlashes drops a trailing slash before routing
func StripSlashes() func(http.Handler) http.Handler { return chimw.StripSlashes }

// Heartbeat answers GET path with 200 before any routing
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// Throttle caps concurrent requests and queues up to backlog for at most wait
func Throttle(limit, backlog int, wait time.Duration) func(http.Handler) http.Handler {
	return chimw.ThrottleBacklog(limit, backlog, wait)
}

// CORSOptions is the part of go-chi/cors the service configures
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS applies o with defaults for methods and headers
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "POST", "PATCH", "OPTIONS"}),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"}),
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
