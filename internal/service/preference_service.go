package service

import (
	"context"

	"github.com/proteinmeals/backend/internal/models"
	"github.com/proteinmeals/backend/internal/repository"
)

// PreferenceService handles preference upserts.
type PreferenceService struct {
	repo repository.PreferenceRepository
}

// NewPreferenceService creates a new preference service.
func NewPreferenceService(repo repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

// Upsert validates a preference and writes it keyed by email, replacing any
// existing document for that email in full. Defaults are applied before the
// write, so the stored document always carries every field.
func (s *PreferenceService) Upsert(ctx context.Context, pref models.Preference) error {
	pref.Normalize()
	if err := models.Validate(&pref); err != nil {
		return err
	}

	return s.repo.Upsert(ctx, pref)
}
