package health

import (
	"encoding/json"
	"net/http"
	"time"
)

// Status is the JSON body served on the liveness endpoint.
type Status struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	service string
	started time.Time
	now     func() time.Time
}

func NewHandler(service string) *Handler {
	return &Handler{
		service: service,
		started: time.Now(),
		now:     time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	status := Status{
		Status:    "ok",
		Service:   h.service,
		Uptime:    now.Sub(h.started).Round(time.Second).String(),
		Timestamp: now.UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
