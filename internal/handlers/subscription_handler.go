package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/proteinmeals/backend/internal/models"
	"github.com/proteinmeals/backend/internal/service"
)

// SubscriptionHandler handles HTTP requests for meal subscriptions
type SubscriptionHandler struct {
	service *service.SubscriptionService
	log     *slog.Logger
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(service *service.SubscriptionService, log *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
		log:     log,
	}
}

// CreateSubscription handles POST /subscriptions
func (h *SubscriptionHandler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	var sub models.Subscription
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.log.Error("failed to decode subscription request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	id, err := h.service.Create(r.Context(), sub)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			WriteValidationError(w, verr, h.log)
			return
		}
		h.log.Error("failed to create subscription", "email", sub.Email, "error", err)
		WriteStoreError(w, err, h.log)
		return
	}

	h.log.Info("subscription created", "subscription_id", id, "items", len(sub.Items))
	WriteJSON(w, http.StatusOK, map[string]string{"id": id}, h.log)
}
