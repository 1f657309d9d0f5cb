// Package middleware provides HTTP middleware for the energyx API.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestID carries the request ID on requests and responses.
const HeaderRequestID = "X-Request-ID"

type contextKey struct{}

// =============================================================================
// Request ID
// =============================================================================

// RequestID propagates the caller's X-Request-ID or generates one. The ID is
// set on the response, the request context, and the request header so that
// nested routers reuse it instead of minting their own.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = NewRequestID()
			r.Header.Set(HeaderRequestID, reqID)
		}
		w.Header().Set(HeaderRequestID, reqID)
		ctx := context.WithValue(r.Context(), contextKey{}, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// NewRequestID returns a short random request ID.
func NewRequestID() string {
	return "req_" + uuid.New().String()[:8]
}

// GetRequestID returns the request ID stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// =============================================================================
// Recovery
// =============================================================================

// Recover turns panics into a 500 JSON error.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"error", err,
						"path", r.URL.Path,
						"request_id", GetRequestID(r.Context()),
					)
					writeJSONError(w, http.StatusInternalServerError, "an unexpected error occurred", "internal_error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// =============================================================================
// Access Log
// =============================================================================

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// AccessLog logs one line per request at Info level.
func AccessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
				"request_id", GetRequestID(r.Context()),
			)
		})
	}
}

// =============================================================================
// Helpers
// =============================================================================

// writeJSONError writes an error body in the same shape as the convert API.
func writeJSONError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
		"code":  code,
	})
}
