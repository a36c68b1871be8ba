// Package metrics provides real-time request metrics for the edge worker.
//
// It uses a channel-based event pipeline: handlers emit events with
// non-blocking sends, and a dedicated collector goroutine folds them into
// per-route counters, response-time percentiles (P50, P95, P99), and
// status-code distributions. Remaining events are drained on shutdown.
//
// Example usage:
//
//	collector := metrics.NewCollector(1024, logger)
//	collector.Start(ctx)
//
//	collector.EventChannel() <- metrics.MetricEvent{
//		Type:       metrics.EventResponseCompleted,
//		Route:      "/",
//		Duration:   2 * time.Millisecond,
//		StatusCode: 200,
//	}
//
//	snapshot := collector.Snapshot("rust-worker-template")
package metrics
