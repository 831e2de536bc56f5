package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proteinmeals/backend/internal/models"
)

// SubscriptionRepository defines the interface for subscription data access
type SubscriptionRepository interface {
	Insert(ctx context.Context, sub models.Subscription) (string, error)
}

// MongoSubscriptionRepository implements SubscriptionRepository on the
// "subscription" collection.
type MongoSubscriptionRepository struct {
	store *Store
}

// NewSubscriptionRepository creates a subscription repository backed by the
// given store.
func NewSubscriptionRepository(store *Store) *MongoSubscriptionRepository {
	return &MongoSubscriptionRepository{store: store}
}

type subscriptionDocument struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	models.Subscription `bson:",inline"`
}

// Insert stores the subscription and returns the store-assigned identity as a
// string.
func (r *MongoSubscriptionRepository) Insert(ctx context.Context, sub models.Subscription) (string, error) {
	if !r.store.Available() {
		return "", ErrUnavailable
	}

	sub.ID = ""
	res, err := r.store.Collection(SubscriptionCollection).InsertOne(ctx, subscriptionDocument{Subscription: sub})
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
