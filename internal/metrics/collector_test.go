package metrics_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/edge-worker/internal/metrics"
)

var _ = Describe("Collector", func() {
	var (
		collector *metrics.Collector
		ctx       context.Context
		cancel    context.CancelFunc
	)

	BeforeEach(func() {
		log := slog.New(slog.NewTextHandler(os.Stdout, nil))
		collector = metrics.NewCollector(16, log)
		ctx, cancel = context.WithCancel(context.Background())
		collector.Start(ctx)
	})

	AfterEach(func() {
		cancel()
	})

	It("should process request events asynchronously", func() {
		collector.EventChannel() <- metrics.MetricEvent{
			Type:      metrics.EventRequestReceived,
			Timestamp: time.Now(),
			Route:     "/",
			Method:    http.MethodGet,
		}

		Eventually(func() int64 {
			return collector.Snapshot("rust-worker-template").TotalRequests
		}).Should(Equal(int64(1)))
	})

	It("should fold completed responses into route metrics", func() {
		collector.EventChannel() <- metrics.MetricEvent{
			Type:       metrics.EventResponseCompleted,
			Timestamp:  time.Now(),
			Route:      "/",
			Method:     http.MethodGet,
			Duration:   5 * time.Millisecond,
			StatusCode: http.StatusOK,
		}

		Eventually(func() int64 {
			return collector.Snapshot("rust-worker-template").Routes["/"].StatusCodes[http.StatusOK]
		}).Should(Equal(int64(1)))
	})

	Describe("Handler", func() {
		It("should serve the snapshot as JSON", func() {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			w := httptest.NewRecorder()

			collector.Handler("rust-worker-template")(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(w.Body.String()).To(ContainSubstring(`"service":"rust-worker-template"`))
		})
	})
})
