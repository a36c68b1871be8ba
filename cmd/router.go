package main

import (
	"net/http"

	"github.com/angeloszaimis/edge-worker/internal/health"
	"github.com/angeloszaimis/edge-worker/internal/metrics"
	"github.com/angeloszaimis/edge-worker/internal/middleware"
	"github.com/angeloszaimis/edge-worker/internal/worker"
)

func setupRouter(workerHandler *worker.Handler, healthHandler *health.Handler, metricsCollector *metrics.Collector) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", workerHandler)
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/metrics", metricsCollector.Handler(worker.ServiceName))

	return middleware.RequestID(mux)
}
