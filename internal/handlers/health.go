package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/proteinmeals/backend/internal/repository"
)

// Version is the service version reported by health checks.
const Version = "1.0.0"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	store  *repository.Store
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store *repository.Store, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Store     string    `json:"store"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// ServeHTTP handles health check requests. The process is healthy even
// without a store; the store field reports which mode it is running in.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	store := "unavailable"
	if h.store.Available() {
		store = "connected"
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Store:     store,
		Timestamp: time.Now().UTC(),
		Version:   Version,
	}, h.logger)
}
