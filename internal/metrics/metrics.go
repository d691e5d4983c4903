// Package metrics registers the service's prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal counts handled HTTP requests by method, path and status.
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zshield",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests handled, labeled by method, route and status code.",
	}, []string{"method", "path", "status"})

	// RateLimited counts requests rejected by the rate limiter.
	RateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zshield",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Total requests rejected with 429 by the fixed-window rate limiter.",
	})

	// QuotesCreated counts quotes issued by the swap service.
	QuotesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zshield",
		Subsystem: "swap",
		Name:      "quotes_created_total",
		Help:      "Total swap quotes issued.",
	})

	// SwapsExecuted counts swaps accepted for execution.
	SwapsExecuted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zshield",
		Subsystem: "swap",
		Name:      "swaps_executed_total",
		Help:      "Total swaps accepted for execution.",
	})

	// ActiveSessions tracks the number of live wallet sessions.
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "zshield",
		Subsystem: "auth",
		Name:      "active_sessions",
		Help:      "Point-in-time count of live wallet sessions.",
	})
)

// Register installs all collectors on the default registry. Call once at
// startup.
func Register() {
	prometheus.MustRegister(
		RequestsTotal,
		RateLimited,
		QuotesCreated,
		SwapsExecuted,
		ActiveSessions,
	)
}
