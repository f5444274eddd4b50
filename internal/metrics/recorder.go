package metrics

import (
	"time"

	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recorderIterationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workernode_dashboard",
		Subsystem: "snapshot_recorder",
		Name:      "iterations_total",
		Help:      "Count of recorder iterations by outcome.",
	}, []string{"namespace", "status"})

	recorderIterationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "workernode_dashboard",
		Subsystem: "snapshot_recorder",
		Name:      "iteration_duration_seconds",
		Help:      "Duration of a recorder iteration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"namespace", "status"})

	recorderRowsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workernode_dashboard",
		Subsystem: "snapshot_recorder",
		Name:      "rows_written_total",
		Help:      "Number of submission snapshots written.",
	}, []string{"namespace"})

	recorderLastBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "workernode_dashboard",
		Subsystem: "snapshot_recorder",
		Name:      "last_recorded_block",
		Help:      "Chain head of the latest written snapshot.",
	}, []string{"namespace"})
)

// Recorder tracks metrics for the snapshot recorder loop.
type Recorder struct {
	namespace string
}

// NewRecorder constructs a Recorder for namespace.
func NewRecorder(namespace model.Namespace) *Recorder {
	return &Recorder{namespace: orUnknown(string(namespace))}
}

// ObserveIteration records one loop iteration that tried to write snapshots.
func (m Recorder) ObserveIteration(err error, rows int, block uint64, started time.Time) {
	s := status(err)
	recorderIterationsTotal.WithLabelValues(m.namespace, s).Inc()
	recorderIterationDuration.WithLabelValues(m.namespace, s).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	recorderRowsWritten.WithLabelValues(m.namespace).Add(float64(rows))
	recorderLastBlock.WithLabelValues(m.namespace).Set(float64(block))
}

// ObserveSkip records an iteration where the chain head had not advanced.
func (m Recorder) ObserveSkip() {
	recorderIterationsTotal.WithLabelValues(m.namespace, "skipped").Inc()
}
