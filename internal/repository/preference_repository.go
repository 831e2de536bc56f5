package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/proteinmeals/backend/internal/models"
)

// PreferenceRepository defines the interface for preference data access
type PreferenceRepository interface {
	Upsert(ctx context.Context, pref models.Preference) error
}

// MongoPreferenceRepository implements PreferenceRepository on the
// "preference" collection.
type MongoPreferenceRepository struct {
	store *Store
}

// NewPreferenceRepository creates a preference repository backed by the given
// store.
func NewPreferenceRepository(store *Store) *MongoPreferenceRepository {
	return &MongoPreferenceRepository{store: store}
}

// Upsert replaces the preference document matching the email exactly, or
// inserts it if none exists. The replacement covers the full document; fields
// from an earlier write never survive a later one.
func (r *MongoPreferenceRepository) Upsert(ctx context.Context, pref models.Preference) error {
	if !r.store.Available() {
		return ErrUnavailable
	}

	_, err := r.store.Collection(PreferenceCollection).ReplaceOne(
		ctx,
		bson.M{"email": pref.Email},
		pref,
		options.Replace().SetUpsert(true),
	)
	return err
}
