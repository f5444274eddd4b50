package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/workernode-dashboard/internal/metrics"
	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
	"github.com/goodnatureofminers/workernode-dashboard/internal/recorder"
	"github.com/goodnatureofminers/workernode-dashboard/internal/repository/clickhouse"
	"github.com/goodnatureofminers/workernode-dashboard/internal/substrate"
	"github.com/goodnatureofminers/workernode-dashboard/internal/workernode"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	ClickhouseDSN string          `long:"clickhouse-dsn" env:"RECORDER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	RPCEndpoint   string          `long:"rpc-endpoint" env:"RECORDER_RPC_ENDPOINT" description:"substrate node ws(s) or http(s) endpoint" default:"wss://public-rpc.mainnet.energywebx.com"`
	Chain         string          `long:"chain" env:"RECORDER_CHAIN" description:"chain label for metrics" default:"energywebx"`
	RPCTimeout    time.Duration   `long:"rpc-timeout" env:"RECORDER_RPC_TIMEOUT" description:"timeout for connecting to the node" default:"30s"`
	Namespace     model.Namespace `long:"namespace" env:"RECORDER_NAMESPACE" description:"solution group namespace" default:"smartflow.y24q2"`
	Threshold     uint32          `long:"threshold" env:"RECORDER_THRESHOLD" description:"votes required per reward period" default:"60"`
	BlockInterval uint64          `long:"block-interval" env:"RECORDER_BLOCK_INTERVAL" description:"blocks between two recordings" default:"75"`
	PollInterval  time.Duration   `long:"poll-interval" env:"RECORDER_POLL_INTERVAL" description:"interval between chain head polls" default:"1m"`
	FlushSize     int             `long:"flush-size" env:"RECORDER_FLUSH_SIZE" description:"snapshots per ClickHouse insert" default:"1000"`
	FlushRPS      int             `long:"flush-rps" env:"RECORDER_FLUSH_RPS" description:"max ClickHouse inserts per second" default:"10"`
	MetricsAddr   string          `long:"metrics-addr" env:"RECORDER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("snapshot recorder failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	dialCtx, cancel := context.WithTimeout(ctx, cfg.RPCTimeout)
	client, err := substrate.Dial(dialCtx, cfg.RPCEndpoint)
	cancel()
	if err != nil {
		return err
	}
	defer client.Close()

	source, err := workernode.NewSource(substrate.NewRPCClient(client, metrics.NewRPCClient(cfg.Chain)), workernode.DefaultTokenDecimals)
	if err != nil {
		return fmt.Errorf("init source: %w", err)
	}
	info, err := source.ChainInfo(ctx)
	if err != nil {
		return fmt.Errorf("chain info: %w", err)
	}
	logger.Info("connected to node", zap.String("chain", info.Chain), zap.String("version", info.NodeVersion))

	svc, err := recorder.NewService(source, repo, metrics.NewRecorder(cfg.Namespace), recorder.Config{
		Namespace:     cfg.Namespace,
		Threshold:     cfg.Threshold,
		BlockInterval: cfg.BlockInterval,
		PollInterval:  cfg.PollInterval,
		FlushSize:     cfg.FlushSize,
		FlushRPS:      cfg.FlushRPS,
	}, logger)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
