package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/liquidswrds/csec3330-labs/pkg/logging"
)

// Context key for the authenticated session ID
type contextKey string

const sessionContextKey contextKey = "sessionID"

// loggingMiddleware logs each request with method, path, status, and latency.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &metricsResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(wrapper, r)

		s.logger.Info("request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", wrapper.statusCode),
			logging.Latency(time.Since(start)))
	})
}

// metricsMiddleware tracks HTTP request metrics
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		s.metricsRegistry.HTTPRequestsInFlight.Inc()
		defer s.metricsRegistry.HTTPRequestsInFlight.Dec()

		wrapper := &metricsResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)
		statusStr := strconv.Itoa(wrapper.statusCode)
		s.metricsRegistry.RecordHTTPRequest(r.Method, routePattern(r.URL.Path), statusStr, duration)
	})
}

// routePattern collapses session and connection IDs so the path label stays
// low-cardinality.
func routePattern(path string) string {
	if !strings.HasPrefix(path, "/sessions/") {
		return path
	}
	id, rest := splitSessionPath(path)
	if id == "" {
		return "/sessions"
	}
	pattern := "/sessions/{id}"
	if len(rest) > 0 {
		pattern += "/" + rest[0]
	}
	if len(rest) > 1 {
		pattern += "/{id}"
	}
	return pattern
}

// requireSession validates the bearer token for /sessions/{id}/... requests.
// When no token manager is configured the server runs open, which suits
// classroom deployments behind a course LMS.
func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _ := splitSessionPath(r.URL.Path)
		if sessionID == "" {
			s.respondError(w, http.StatusBadRequest, "missing session ID")
			return
		}

		if s.tokens != nil {
			authHeader := r.Header.Get("Authorization")
			if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
				s.respondError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			claims, err := s.tokens.ValidateToken(authHeader[7:])
			if err != nil {
				s.respondError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			if claims.SessionID != sessionID {
				s.respondError(w, http.StatusForbidden, "Token does not match session")
				return
			}
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// metricsResponseWriter wraps http.ResponseWriter to capture the status code
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *metricsResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
