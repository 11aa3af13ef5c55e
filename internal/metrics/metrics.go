// Package metrics exposes prometheus instrumentation for the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts handled HTTP requests by method, path and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spendlog_http_requests_total",
		Help: "Handled HTTP requests.",
	}, []string{"method", "path", "status"})

	// ExpenseOps counts store mutations by operation (add, remove, clear).
	ExpenseOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spendlog_expense_operations_total",
		Help: "Store mutations by operation.",
	}, []string{"op"})

	// SnapshotSaveFailures counts snapshot writes the backend rejected.
	SnapshotSaveFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spendlog_snapshot_save_failures_total",
		Help: "Snapshot writes rejected by the persistence backend.",
	})

	// RateLimitHits counts requests rejected by the rate limiter.
	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spendlog_rate_limit_hits_total",
		Help: "Requests rejected by the per-client rate limiter.",
	})
)

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
