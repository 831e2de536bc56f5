package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/proteinmeals/backend/internal/repository"
	"github.com/proteinmeals/backend/pkg/logger"
)

func TestHealth(t *testing.T) {
	handler := NewHealthHandler(repository.NewUnavailable(), logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// The process is healthy even when the store is not there.
	if response.Status != "healthy" {
		t.Errorf("expected status 'healthy', got %q", response.Status)
	}
	if response.Store != "unavailable" {
		t.Errorf("expected store 'unavailable', got %q", response.Store)
	}
	if response.Version != Version {
		t.Errorf("expected version %q, got %q", Version, response.Version)
	}
	if response.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}
