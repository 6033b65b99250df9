// Package metrics defines and registers all custom Prometheus metrics for
// the gateway. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init via promauto; the handler package exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storegate"

// ── Gateway call metrics ─────────────────────────────────────────────────────

// GatewayCallsTotal counts gateway operations against the upstream provider.
// Labels:
//   - operation: the internal operation name (e.g. "list_products", "login")
//   - outcome: "success", "upstream_error" (non-2xx business status), or
//     "fatal" (transport/decode failure)
var GatewayCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_calls_total",
		Help:      "Total number of gateway operations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// GatewayCallDuration measures how long a single gateway operation takes
// end-to-end, including every dependent upstream fetch it performs.
// Label:
//   - operation: the internal operation name
var GatewayCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_call_duration_seconds",
		Help:      "Duration of gateway operations from invocation to result.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation"},
)

// ── HTTP metrics ─────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts inbound HTTP requests.
// Labels:
//   - route: the matched chi route pattern (e.g. "/product/{id}")
//   - method: the HTTP method
//   - status: the response status code as text
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of inbound HTTP requests, by route, method, and status.",
	},
	[]string{"route", "method", "status"},
)

// TokensIssuedTotal counts session tokens issued by successful logins.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued.",
	},
)
