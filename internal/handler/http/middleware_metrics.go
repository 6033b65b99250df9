package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/storegate/gateway/internal/metrics"
)

// withMetrics counts finished requests by route pattern, method and status.
// The chi route pattern keeps the label cardinality bounded regardless of
// path parameter values.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.
			WithLabelValues(route, r.Method, strconv.Itoa(lw.status)).
			Inc()
	})
}
