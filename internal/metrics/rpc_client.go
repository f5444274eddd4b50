package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workernode_dashboard",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of substrate node RPC operations.",
	}, []string{"operation", "chain", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "workernode_dashboard",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of substrate node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "status"})
)

// RPCClient tracks metrics for RPC calls to the substrate node.
type RPCClient struct {
	chain string
}

// NewRPCClient constructs a metrics collector for RPC calls against chain.
func NewRPCClient(chain string) *RPCClient {
	return &RPCClient{chain: orUnknown(chain)}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	rpcRequestsTotal.WithLabelValues(operation, m.chain, s).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.chain, s).Observe(time.Since(started).Seconds())
}
