package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/angeloszaimis/edge-worker/config"
	"github.com/angeloszaimis/edge-worker/internal/health"
	"github.com/angeloszaimis/edge-worker/internal/httpserver"
	"github.com/angeloszaimis/edge-worker/internal/metrics"
	"github.com/angeloszaimis/edge-worker/internal/worker"
	"github.com/angeloszaimis/edge-worker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, true, cfg.Server.Environment, worker.ServiceName)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	metricsCollector := metrics.NewCollector(cfg.Metrics.BufferSize, log)
	metricsCollector.Start(ctx)

	workerHandler := worker.NewHandler(log, metricsCollector)
	healthHandler := health.NewHandler(worker.ServiceName)

	router := setupRouter(workerHandler, healthHandler, metricsCollector)

	srv, err := httpserver.New(cfg.Server.Address, router)
	if err != nil {
		log.Error("Failed to create server", slog.Any("err", err))
		os.Exit(1)
	}

	log.Info("Edge worker listening", slog.String("addr", srv.Addr()))

	srvErrCh := make(chan error, 1)

	go func() {
		srvErrCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
		}
	case err := <-srvErrCh:
		if err != nil {
			log.Error("Error starting edge worker", slog.Any("err", err))
			os.Exit(1)
		}
	}
}
