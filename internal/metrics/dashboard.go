package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dashboardBuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workernode_dashboard",
		Subsystem: "dashboard",
		Name:      "operations_total",
		Help:      "Count of dashboard view operations.",
	}, []string{"operation", "status"})
	dashboardBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "workernode_dashboard",
		Subsystem: "dashboard",
		Name:      "operation_duration_seconds",
		Help:      "Duration of dashboard view operations.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"operation", "status"})
)

// Dashboard tracks metrics for dashboard view assembly.
type Dashboard struct{}

// NewDashboard constructs a Dashboard metrics collector.
func NewDashboard() *Dashboard {
	return &Dashboard{}
}

// Observe records one view operation.
func (m Dashboard) Observe(operation string, err error, started time.Time) {
	s := status(err)
	dashboardBuildsTotal.WithLabelValues(operation, s).Inc()
	dashboardBuildDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}
