package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/cors"

	"ekaraca/vakif-ledger/internal/logging"
)

// newCORS creates the CORS middleware with the given allowed origins.
func newCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// requestLogger logs each HTTP request with its status and duration.
func requestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	sanitize := strings.NewReplacer("\n", "", "\r", "").Replace
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			logger.Info("http request",
				logging.Field{Key: "method", Value: sanitize(r.Method)},
				logging.Field{Key: "path", Value: sanitize(r.URL.Path)},
				logging.Field{Key: "status", Value: wrapped.statusCode},
				logging.Field{Key: "duration", Value: time.Since(start).String()},
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
