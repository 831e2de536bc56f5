package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/proteinmeals/backend/internal/models"
)

// maxErrorMessageLen caps the detail carried by 5xx responses. Store errors
// can be long and clients never need the full text.
const maxErrorMessageLen = 200

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("failed to encode error response", "error", err)
	}
}

// WriteStoreError writes the 500 for a failed store interaction, carrying a
// truncated message rather than the raw error.
func WriteStoreError(w http.ResponseWriter, err error, logger *slog.Logger) {
	WriteError(w, http.StatusInternalServerError, truncate(err.Error(), maxErrorMessageLen), logger)
}

// validationResponse carries a schema rejection with per-field detail.
type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// WriteValidationError writes the 422 rejection for a payload that failed
// schema validation, identifying every offending field.
func WriteValidationError(w http.ResponseWriter, verr *models.ValidationError, logger *slog.Logger) {
	WriteJSON(w, http.StatusUnprocessableEntity, validationResponse{
		Error:  "validation failed",
		Fields: verr.Fields,
	}, logger)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
