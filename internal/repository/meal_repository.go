package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/proteinmeals/backend/internal/models"
)

// MealRepository defines the interface for meal data access
type MealRepository interface {
	List(ctx context.Context, filter models.MealFilter) ([]models.Meal, error)
	GetByID(ctx context.Context, id string) (*models.Meal, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, meals []models.Meal) error
}

// MongoMealRepository implements MealRepository on the "meal" collection.
type MongoMealRepository struct {
	store *Store
}

// NewMealRepository creates a meal repository backed by the given store.
func NewMealRepository(store *Store) *MongoMealRepository {
	return &MongoMealRepository{store: store}
}

// mealDocument is the persisted shape of a meal: the domain model plus the
// store-assigned ObjectID, which stays inside this package.
type mealDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	models.Meal `bson:",inline"`
}

func newMealDocument(m models.Meal) mealDocument {
	m.ID = ""
	return mealDocument{Meal: m}
}

func (d mealDocument) toModel() models.Meal {
	m := d.Meal
	m.ID = d.ID.Hex()
	return m
}

// List returns the meals matching the filter's category and diet predicates.
// The MinProtein filter is not pushed down here; the service applies it after
// retrieval. No ordering is requested from the store.
func (r *MongoMealRepository) List(ctx context.Context, filter models.MealFilter) ([]models.Meal, error) {
	if !r.store.Available() {
		return nil, ErrUnavailable
	}

	cursor, err := r.store.Collection(MealCollection).Find(ctx, buildMealFilter(filter))
	if err != nil {
		return nil, err
	}

	var docs []mealDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	meals := make([]models.Meal, 0, len(docs))
	for _, doc := range docs {
		meals = append(meals, doc.toModel())
	}
	return meals, nil
}

// buildMealFilter translates the domain filter into a store query.
func buildMealFilter(filter models.MealFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Diet != "" {
		query["diet_tags"] = bson.M{"$in": bson.A{filter.Diet}}
	}
	return query
}

// GetByID returns the meal with the given identity string, ErrInvalidID if the
// string is not a well-formed identity, or ErrMealNotFound if no meal has it.
func (r *MongoMealRepository) GetByID(ctx context.Context, id string) (*models.Meal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	if !r.store.Available() {
		return nil, ErrUnavailable
	}

	var doc mealDocument
	err = r.store.Collection(MealCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}

	meal := doc.toModel()
	return &meal, nil
}

// Count returns the number of meals in the collection.
func (r *MongoMealRepository) Count(ctx context.Context) (int64, error) {
	if !r.store.Available() {
		return 0, ErrUnavailable
	}
	return r.store.Collection(MealCollection).CountDocuments(ctx, bson.M{})
}

// InsertMany stores the given meals, letting the store assign each identity.
func (r *MongoMealRepository) InsertMany(ctx context.Context, meals []models.Meal) error {
	if !r.store.Available() {
		return ErrUnavailable
	}

	docs := make([]interface{}, 0, len(meals))
	for _, m := range meals {
		docs = append(docs, newMealDocument(m))
	}

	_, err := r.store.Collection(MealCollection).InsertMany(ctx, docs)
	return err
}
