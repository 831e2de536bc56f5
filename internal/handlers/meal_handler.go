package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/proteinmeals/backend/internal/models"
	"github.com/proteinmeals/backend/internal/repository"
	"github.com/proteinmeals/backend/internal/service"
)

// MealHandler handles HTTP requests for the meal catalog
type MealHandler struct {
	service *service.MealService
	log     *slog.Logger
}

// NewMealHandler creates a new meal handler
func NewMealHandler(service *service.MealService, log *slog.Logger) *MealHandler {
	return &MealHandler{
		service: service,
		log:     log,
	}
}

// ListMeals handles GET /meals
func (h *MealHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.MealFilter{
		Category: query.Get("category"),
		Diet:     query.Get("diet"),
	}

	// Unknown category or diet values simply match nothing; only min_protein
	// carries a numeric constraint worth rejecting up front.
	if raw := query.Get("min_protein"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			h.log.Warn("rejected min_protein filter", "min_protein", raw)
			WriteValidationError(w, &models.ValidationError{Fields: map[string]string{
				"min_protein": "must be a number greater than or equal to 0",
			}}, h.log)
			return
		}
		filter.MinProtein = &value
	}

	meals, err := h.service.ListMeals(r.Context(), filter)
	if err != nil {
		h.log.Error("failed to list meals", "error", err)
		WriteStoreError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, models.MealList{Items: meals}, h.log)
}

// PortionMacros handles POST /meals/portion
func (h *MealHandler) PortionMacros(w http.ResponseWriter, r *http.Request) {
	var req models.PortionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode portion request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	portion, err := h.service.PortionMacros(r.Context(), req)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			WriteValidationError(w, verr, h.log)
		case errors.Is(err, repository.ErrMealNotFound):
			h.log.Info("portion request for unknown meal", "meal_id", req.MealID)
			WriteError(w, http.StatusNotFound, "Meal not found", h.log)
		default:
			h.log.Error("failed to scale portion", "meal_id", req.MealID, "error", err)
			WriteStoreError(w, err, h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, portion, h.log)
}

// SeedCatalog handles POST /seed
func (h *MealHandler) SeedCatalog(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SeedCatalog(r.Context())
	if err != nil {
		h.log.Error("failed to seed meal catalog", "error", err)
		WriteStoreError(w, err, h.log)
		return
	}

	if result.Seeded {
		h.log.Info("meal catalog seeded", "count", result.Count)
	}
	WriteJSON(w, http.StatusOK, result, h.log)
}
