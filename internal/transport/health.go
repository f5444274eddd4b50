package transport

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService is the service name reported alongside the overall status.
const HealthService = "workernode.dashboard"

// DefaultHealthInterval is used when WatchHealth gets a non-positive interval.
const DefaultHealthInterval = 30 * time.Second

// WatchHealth probes the chain every interval and mirrors the outcome into
// srv until ctx is done, when it marks everything as not serving.
func WatchHealth(ctx context.Context, srv *health.Server, probe func(context.Context) error, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		probeCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if err := probe(probeCtx); err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			logger.Warn("health probe failed", zap.Error(err))
		}
		srv.SetServingStatus("", status)
		srv.SetServingStatus(HealthService, status)
	}

	check()
	for {
		select {
		case <-ctx.Done():
			srv.Shutdown()
			return
		case <-ticker.C:
			check()
		}
	}
}
