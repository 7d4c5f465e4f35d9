package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/stellar/static-responder/internal/metrics"
)

// unmatchedEndpoint labels requests that never reached a route.
const unmatchedEndpoint = "unmatched"

// MetricsMiddleware creates a middleware that tracks HTTP request metrics
func MetricsMiddleware(metricsService metrics.MetricsService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			// Create a response wrapper to capture the status code and the body size
			rw := &responseWriter{ResponseWriter: w}

			next.ServeHTTP(rw, r)

			// Every path is served, so the raw path would make the label unbounded. Use the route pattern instead.
			endpoint := routePattern(r)

			duration := time.Since(startTime).Seconds()
			metricsService.ObserveRequestDuration(endpoint, r.Method, duration)
			metricsService.IncNumRequests(endpoint, r.Method, rw.status())
			metricsService.AddBytesServed(endpoint, rw.bytesWritten)
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedEndpoint
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedEndpoint
}

// responseWriter wraps http.ResponseWriter to capture the status code and the number of bytes written
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	// If WriteHeader hasn't been called yet, we assume it's a 200
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

func (rw *responseWriter) status() int {
	if rw.statusCode == 0 {
		return http.StatusOK
	}
	return rw.statusCode
}
