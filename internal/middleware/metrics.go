package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/proteinmeals/backend/pkg/metrics"
)

// Metrics middleware records request counts, latencies, and in-flight totals
func Metrics(collector *metrics.Collector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			collector.IncInFlight()
			defer collector.DecInFlight()

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			// The route pattern is only known after routing has run, and
			// keeps label cardinality bounded where raw paths would not.
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			collector.RecordRequest(r.Method, route, strconv.Itoa(ww.statusCode), time.Since(start))
		})
	}
}
