package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/proteinmeals/backend/internal/models"
	"github.com/proteinmeals/backend/internal/service"
)

// PreferenceHandler handles HTTP requests for customer preferences
type PreferenceHandler struct {
	service *service.PreferenceService
	log     *slog.Logger
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(service *service.PreferenceService, log *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		service: service,
		log:     log,
	}
}

// UpsertPreference handles POST /preferences
func (h *PreferenceHandler) UpsertPreference(w http.ResponseWriter, r *http.Request) {
	var pref models.Preference
	if err := json.NewDecoder(r.Body).Decode(&pref); err != nil {
		h.log.Error("failed to decode preference request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.service.Upsert(r.Context(), pref); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			WriteValidationError(w, verr, h.log)
			return
		}
		h.log.Error("failed to save preferences", "email", pref.Email, "error", err)
		WriteStoreError(w, err, h.log)
		return
	}

	h.log.Info("preferences saved", "email", pref.Email)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.log)
}
