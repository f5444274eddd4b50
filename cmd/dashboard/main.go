package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/workernode-dashboard/internal/dashboard"
	"github.com/goodnatureofminers/workernode-dashboard/internal/metrics"
	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
	"github.com/goodnatureofminers/workernode-dashboard/internal/preferences"
	"github.com/goodnatureofminers/workernode-dashboard/internal/repository/clickhouse"
	"github.com/goodnatureofminers/workernode-dashboard/internal/substrate"
	"github.com/goodnatureofminers/workernode-dashboard/internal/transport"
	"github.com/goodnatureofminers/workernode-dashboard/internal/workernode"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type config struct {
	Addr            string          `long:"addr" env:"DASHBOARD_ADDR" description:"gRPC health addr" default:":8000"`
	RestAddr        string          `long:"rest-addr" env:"DASHBOARD_REST_ADDR" description:"HTTP addr" default:":8001"`
	RPCEndpoint     string          `long:"rpc-endpoint" env:"DASHBOARD_RPC_ENDPOINT" description:"substrate node ws(s) or http(s) endpoint" default:"wss://public-rpc.mainnet.energywebx.com"`
	Chain           string          `long:"chain" env:"DASHBOARD_CHAIN" description:"chain label for metrics" default:"energywebx"`
	RPCTimeout      time.Duration   `long:"rpc-timeout" env:"DASHBOARD_RPC_TIMEOUT" description:"timeout for connecting to the node" default:"30s"`
	Namespace       model.Namespace `long:"namespace" env:"DASHBOARD_NAMESPACE" description:"solution group namespace" default:"smartflow.y24q2"`
	Threshold       uint32          `long:"threshold" env:"DASHBOARD_THRESHOLD" description:"votes required per reward period" default:"60"`
	MaxVotes        uint32          `long:"max-votes" env:"DASHBOARD_MAX_VOTES" description:"votes possible per reward period" default:"96"`
	SS58Prefix      uint16          `long:"ss58-prefix" env:"DASHBOARD_SS58_PREFIX" description:"SS58 network prefix for addresses" default:"42"`
	Decimals        int32           `long:"decimals" env:"DASHBOARD_DECIMALS" description:"native token decimals" default:"18"`
	PreferencesFile string          `long:"preferences-file" env:"DASHBOARD_PREFERENCES_FILE" description:"YAML file for favorites and column settings; in-memory when empty"`
	ClickhouseDSN   string          `long:"clickhouse-dsn" env:"DASHBOARD_CLICKHOUSE_DSN" description:"ClickHouse DSN for submission history; disabled when empty"`
	HistoryLimit    int             `long:"history-limit" env:"DASHBOARD_HISTORY_LIMIT" description:"default number of history snapshots returned" default:"500"`
	HealthInterval  time.Duration   `long:"health-interval" env:"DASHBOARD_HEALTH_INTERVAL" description:"interval between chain health probes" default:"30s"`
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
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("dashboard failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	dialCtx, cancel := context.WithTimeout(ctx, cfg.RPCTimeout)
	client, err := substrate.Dial(dialCtx, cfg.RPCEndpoint)
	cancel()
	if err != nil {
		return err
	}
	defer client.Close()

	source, err := workernode.NewSource(substrate.NewRPCClient(client, metrics.NewRPCClient(cfg.Chain)), cfg.Decimals)
	if err != nil {
		return fmt.Errorf("init source: %w", err)
	}
	info, err := source.ChainInfo(ctx)
	if err != nil {
		return fmt.Errorf("chain info: %w", err)
	}
	logger.Info("connected to node",
		zap.String("endpoint", cfg.RPCEndpoint),
		zap.String("chain", info.Chain),
		zap.String("node", info.NodeName),
		zap.String("version", info.NodeVersion),
	)

	store, err := newPreferencesStore(cfg.PreferencesFile)
	if err != nil {
		return err
	}
	prefs := preferences.New(store)

	svc := dashboard.NewService(source, prefs, metrics.NewDashboard(), dashboard.Config{
		Namespace:  cfg.Namespace,
		Threshold:  cfg.Threshold,
		MaxVotes:   cfg.MaxVotes,
		SS58Prefix: cfg.SS58Prefix,
	}, logger)

	var history transport.History
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		history = repo
	} else {
		logger.Info("ClickHouse DSN not set, submission history disabled")
	}

	handler, err := transport.NewHandler(svc, prefs, history, transport.Options{
		Namespace:    cfg.Namespace,
		SS58Prefix:   cfg.SS58Prefix,
		HistoryLimit: cfg.HistoryLimit,
	}, logger)
	if err != nil {
		return err
	}

	healthServer := health.NewServer()
	go transport.WatchHealth(ctx, healthServer, func(ctx context.Context) error {
		_, err := source.CurrentBlock(ctx)
		return err
	}, cfg.HealthInterval, logger)

	if err := startGRPCServer(ctx, cfg.Addr, healthServer, logger); err != nil {
		return err
	}

	gw := gwruntime.NewServeMux()
	if err := handler.Register(gw); err != nil {
		return err
	}

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(transport.Routes(gw, promhttp.Handler())),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func newPreferencesStore(path string) (preferences.Store, error) {
	if path == "" {
		return preferences.NewMemoryStore(), nil
	}
	store, err := preferences.NewFileStore(path)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}
	return store, nil
}

func startGRPCServer(ctx context.Context, addr string, healthServer *health.Server, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("GRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()
	return nil
}
