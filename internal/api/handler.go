// Package api provides the HTTP handlers for the iocscope service
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/theopenlane/iocscope/internal/lookup"
	"github.com/theopenlane/iocscope/internal/slack"
)

// serviceName is reported by the health endpoint
const serviceName = "iocscope"

// Notifier delivers shared indicators to a chat channel
type Notifier interface {
	Send(ctx context.Context, msg slack.Message) error
}

// Handler manages API endpoints
type Handler struct {
	planner       *lookup.Planner
	notifier      Notifier
	validate      *validator.Validate
	maxBodySize   int64
	maxShareLinks int
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Service   string `json:"service" example:"iocscope"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// newHandler builds a Handler from the router configuration
func newHandler(cfg RouterConfig) *Handler {
	planner := cfg.Planner
	if planner == nil {
		planner = lookup.New()
	}

	h := &Handler{
		planner:       planner,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		maxBodySize:   cfg.MaxBodySize,
		maxShareLinks: cfg.MaxShareLinks,
		notifier:      cfg.Notifier,
	}

	return h
}

// handleHealth returns service health status
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// limitBody applies the configured request body limit
func (h *Handler) limitBody(w http.ResponseWriter, r *http.Request) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}
}
