package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/proteinmeals/backend/internal/models"
	"github.com/proteinmeals/backend/internal/repository"
	"github.com/proteinmeals/backend/internal/service"
	"github.com/proteinmeals/backend/pkg/logger"
)

type stubPreferenceRepo struct {
	saved []models.Preference
	err   error
}

func (s *stubPreferenceRepo) Upsert(ctx context.Context, pref models.Preference) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, pref)
	return nil
}

func newTestPreferenceHandler(repo *stubPreferenceRepo) *PreferenceHandler {
	return NewPreferenceHandler(service.NewPreferenceService(repo), logger.New("error"))
}

func TestUpsertPreference(t *testing.T) {
	repo := &stubPreferenceRepo{}
	handler := newTestPreferenceHandler(repo)

	body := `{"email": "jamie@example.com", "target_protein_g_per_day": 150, "diet_filters": ["vegan", "gluten-free"]}`
	req := httptest.NewRequest(http.MethodPost, "/preferences", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.UpsertPreference(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", response["status"])
	}

	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved preference, got %d", len(repo.saved))
	}
	if *repo.saved[0].TargetProteinPerDay != 150 {
		t.Errorf("expected target 150, got %v", *repo.saved[0].TargetProteinPerDay)
	}
	if len(repo.saved[0].DietFilters) != 2 {
		t.Errorf("expected 2 diet filters, got %v", repo.saved[0].DietFilters)
	}
}

func TestUpsertPreference_AppliesDefaults(t *testing.T) {
	repo := &stubPreferenceRepo{}
	handler := newTestPreferenceHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/preferences", strings.NewReader(`{"email": "jamie@example.com"}`))
	w := httptest.NewRecorder()

	handler.UpsertPreference(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	saved := repo.saved[0]
	if saved.TargetProteinPerDay == nil || *saved.TargetProteinPerDay != 120.0 {
		t.Errorf("expected default target 120.0, got %v", saved.TargetProteinPerDay)
	}
	if saved.DietFilters == nil || len(saved.DietFilters) != 0 {
		t.Errorf("expected empty diet filters, got %v", saved.DietFilters)
	}
}

func TestUpsertPreference_InvalidBody(t *testing.T) {
	repo := &stubPreferenceRepo{}
	handler := newTestPreferenceHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/preferences", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.UpsertPreference(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestUpsertPreference_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing email",
			body:      `{"target_protein_g_per_day": 150}`,
			wantField: "email",
		},
		{
			name:      "malformed email",
			body:      `{"email": "nope"}`,
			wantField: "email",
		},
		{
			name:      "target protein out of range",
			body:      `{"email": "a@b.com", "target_protein_g_per_day": 500}`,
			wantField: "target_protein_g_per_day",
		},
		{
			name:      "unknown diet filter",
			body:      `{"email": "a@b.com", "diet_filters": ["paleo"]}`,
			wantField: "diet_filters[0]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubPreferenceRepo{}
			handler := newTestPreferenceHandler(repo)

			req := httptest.NewRequest(http.MethodPost, "/preferences", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			handler.UpsertPreference(w, req)

			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected status 422, got %d: %s", w.Code, w.Body.String())
			}

			var response validationResponse
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if response.Fields[tc.wantField] == "" {
				t.Errorf("expected %q to be flagged, got %v", tc.wantField, response.Fields)
			}
			if len(repo.saved) != 0 {
				t.Errorf("expected nothing saved, got %d", len(repo.saved))
			}
		})
	}
}

func TestUpsertPreference_StoreUnavailable(t *testing.T) {
	repo := &stubPreferenceRepo{err: repository.ErrUnavailable}
	handler := newTestPreferenceHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/preferences", strings.NewReader(`{"email": "a@b.com"}`))
	w := httptest.NewRecorder()

	handler.UpsertPreference(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}
