package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names are the lowercase of the record type they hold.
const (
	MealCollection         = "meal"
	SubscriptionCollection = "subscription"
	PreferenceCollection   = "preference"
)

var (
	// ErrUnavailable is returned when no document store connection is configured
	// or the configured store could not be reached at startup.
	ErrUnavailable = errors.New("document store unavailable")

	// ErrMealNotFound is returned when a meal identity does not exist in the store.
	ErrMealNotFound = errors.New("meal not found")

	// ErrInvalidID is returned when a caller-supplied identity is not a valid
	// store identity string.
	ErrInvalidID = errors.New("invalid document id")
)

// Store wraps the MongoDB database handle shared by the repositories.
//
// A Store without a database is still valid: it reports itself unavailable and
// every operation on it fails fast with ErrUnavailable. That lets the service
// start, serve its info and diagnostic endpoints, and describe the missing
// store instead of crashing.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB at uri, verifies the connection with a ping, and
// returns a Store bound to the named database. The caller controls the
// deadline through ctx.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging document store: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(database),
	}, nil
}

// NewUnavailable returns a Store that has no backing database. Every
// repository operation against it fails with ErrUnavailable.
func NewUnavailable() *Store {
	return &Store{}
}

// Available reports whether the store has a backing database.
func (s *Store) Available() bool {
	return s.db != nil
}

// Name returns the bound database name, or an empty string when unavailable.
func (s *Store) Name() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

// CollectionNames lists the collections present in the bound database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// Collection returns a handle for the named collection. Callers must check
// Available first; repositories do so on every operation.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Close releases the underlying client connection, if one was established.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
