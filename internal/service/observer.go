package service

import (
	"time"

	"github.com/storegate/gateway/internal/metrics"
)

// Observer receives notifications about completed gateway operations.
// Implementations must be safe for concurrent use.
type Observer interface {
	// ObserveCall records one finished upstream-backed operation with its
	// outcome ("success", "upstream_error" or "fatal") and duration.
	ObserveCall(operation, outcome string, elapsed time.Duration)
}

// PrometheusObserver reports operation outcomes to the process-wide
// Prometheus registry.
type PrometheusObserver struct{}

func (PrometheusObserver) ObserveCall(operation, outcome string, elapsed time.Duration) {
	metrics.GatewayCallsTotal.WithLabelValues(operation, outcome).Inc()
	metrics.GatewayCallDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// NopObserver discards all notifications. Used in tests.
type NopObserver struct{}

func (NopObserver) ObserveCall(string, string, time.Duration) {}

func outcomeOf(statusSuccess bool, err error) string {
	switch {
	case err != nil:
		return "fatal"
	case !statusSuccess:
		return "upstream_error"
	default:
		return "success"
	}
}
