package service

import (
	"context"

	"github.com/proteinmeals/backend/internal/models"
	"github.com/proteinmeals/backend/internal/repository"
)

// SubscriptionService handles subscription creation.
type SubscriptionService struct {
	repo repository.SubscriptionRepository
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(repo repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{repo: repo}
}

// Create validates and stores a subscription, returning the store-assigned
// identity. The meal IDs referenced by the items are not checked against the
// catalog; a subscription can reference meals that no longer (or never did)
// exist.
func (s *SubscriptionService) Create(ctx context.Context, sub models.Subscription) (string, error) {
	sub.Normalize()
	if err := models.Validate(&sub); err != nil {
		return "", err
	}

	return s.repo.Insert(ctx, sub)
}
