package worker

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/angeloszaimis/edge-worker/internal/metrics"
	"github.com/angeloszaimis/edge-worker/internal/middleware"
)

const (
	// Message and ServiceName are part of the response contract and never
	// change between requests.
	Message     = "Hello from Rust Worker!"
	ServiceName = "rust-worker-template"
)

// timestampLayout renders UTC times with an explicit +00:00 offset,
// e.g. 2024-06-01T12:00:00+00:00.
const timestampLayout = "2006-01-02T15:04:05-07:00"

// Payload is the JSON body returned for every handled request.
type Payload struct {
	Message   string `json:"message"`
	Service   string `json:"service"`
	URL       string `json:"url"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	logger           *slog.Logger
	metricsCollector *metrics.Collector
	now              func() time.Time
}

type Option func(*Handler)

// WithClock overrides the wall clock used for the timestamp field.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func NewHandler(logger *slog.Logger, collector *metrics.Collector, opts ...Option) *Handler {
	h := &Handler{
		logger:           logger,
		metricsCollector: collector,
		now:              time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Handle builds the response payload for a single request. It fails only
// when the request's URL cannot be reconstructed; no default is substituted.
func (h *Handler) Handle(r *http.Request) (*Payload, error) {
	u, err := RequestURL(r)
	if err != nil {
		return nil, fmt.Errorf("extract request url: %w", err)
	}

	return &Payload{
		Message:   Message,
		Service:   ServiceName,
		URL:       u,
		Timestamp: h.now().UTC().Format(timestampLayout),
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clientIP := extractClientIP(r)
	requestID, _ := middleware.RequestIDFromContext(r.Context())

	h.logger.Info("Received request",
		slog.String("from", clientIP),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("proto", r.Proto),
		slog.String("host", r.Host),
		slog.String("request_id", requestID),
		slog.String("user_agent", r.UserAgent()))

	h.emitEvent(metrics.MetricEvent{
		Type:      metrics.EventRequestReceived,
		Timestamp: time.Now(),
		Route:     r.URL.Path,
		Method:    r.Method,
	})

	start := time.Now()

	payload, err := h.Handle(r)
	if err != nil {
		h.fail(w, r, start, "Failed to extract request URL", err, requestID)
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		h.fail(w, r, start, "Failed to encode payload", err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)

	h.emitEvent(metrics.MetricEvent{
		Type:       metrics.EventResponseCompleted,
		Timestamp:  time.Now(),
		Route:      r.URL.Path,
		Method:     r.Method,
		Duration:   time.Since(start),
		StatusCode: http.StatusOK,
	})
}

// fail surfaces a handler failure as the runtime's generic error response.
// No partial payload is written.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, start time.Time, msg string, err error, requestID string) {
	h.logger.Error(msg,
		slog.String("path", r.URL.Path),
		slog.String("request_id", requestID),
		slog.Any("err", err))

	http.Error(w, "Internal Server Error", http.StatusInternalServerError)

	h.emitEvent(metrics.MetricEvent{
		Type:       metrics.EventResponseCompleted,
		Timestamp:  time.Now(),
		Route:      r.URL.Path,
		Method:     r.Method,
		Duration:   time.Since(start),
		StatusCode: http.StatusInternalServerError,
	})
}

func (h *Handler) emitEvent(event metrics.MetricEvent) {
	if h.metricsCollector == nil {
		return
	}

	select {
	case h.metricsCollector.EventChannel() <- event:
	default:
	}
}

func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	host, _, _ := net.SplitHostPort(r.RemoteAddr)
	return host
}
