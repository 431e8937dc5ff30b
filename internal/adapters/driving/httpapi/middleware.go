// Package httpapi implements the designctx REST API using chi. Every
// endpoint answers with the uniform {success, data, error} envelope.
package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/designctx-cli/internal/logger"
)

// AuthMiddleware returns middleware that validates a Bearer token.
// With an empty token all requests pass through (open mode).
func AuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != token {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs each request's method, path, and duration through
// the verbose logger.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("http: %s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}
