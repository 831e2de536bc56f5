package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proteinmeals/backend/internal/models"
)

func TestBuildMealFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter models.MealFilter
		want   bson.M
	}{
		{
			name:   "no filters",
			filter: models.MealFilter{},
			want:   bson.M{},
		},
		{
			name:   "category only",
			filter: models.MealFilter{Category: "Breakfasts"},
			want:   bson.M{"category": "Breakfasts"},
		},
		{
			name:   "diet only",
			filter: models.MealFilter{Diet: "vegan"},
			want:   bson.M{"diet_tags": bson.M{"$in": bson.A{"vegan"}}},
		},
		{
			name:   "category and diet",
			filter: models.MealFilter{Category: "Main Meals", Diet: "keto"},
			want: bson.M{
				"category":  "Main Meals",
				"diet_tags": bson.M{"$in": bson.A{"keto"}},
			},
		},
		{
			// MinProtein is applied after retrieval, never in the store query.
			name: "min protein not pushed down",
			filter: func() models.MealFilter {
				min := 30.0
				return models.MealFilter{MinProtein: &min}
			}(),
			want: bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildMealFilter(tt.filter)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildMealFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMealDocument_RoundTrip(t *testing.T) {
	desc := "Egg whites, spinach, feta."
	meal := models.Meal{
		ID:          "stale-identity",
		Title:       "Spinach Omelette",
		Description: &desc,
		Category:    models.CategoryBreakfasts,
		DietTags:    []models.DietTag{models.DietKeto},
		Price:       8.50,
		Macros:      models.Macros{Protein: 32, Carbs: 6, Fats: 14, Calories: 290},
	}

	doc := newMealDocument(meal)
	if !doc.ID.IsZero() {
		t.Errorf("newMealDocument() kept object id %v, want zero so the store assigns it", doc.ID)
	}
	if doc.Meal.ID != "" {
		t.Errorf("newMealDocument() kept identity string %q, want empty", doc.Meal.ID)
	}

	doc.ID = primitive.NewObjectID()
	got := doc.toModel()

	if got.ID != doc.ID.Hex() {
		t.Errorf("toModel() id = %q, want %q", got.ID, doc.ID.Hex())
	}
	if got.Title != meal.Title {
		t.Errorf("toModel() title = %q, want %q", got.Title, meal.Title)
	}
	if got.Macros != meal.Macros {
		t.Errorf("toModel() macros = %+v, want %+v", got.Macros, meal.Macros)
	}
}

func TestMealRepository_GetByID_MalformedID(t *testing.T) {
	// The identity parse precedes the availability check, so even a store-less
	// repository classifies malformed identities.
	repo := NewMealRepository(NewUnavailable())

	tests := []string{"", "short", "zzzzzzzzzzzzzzzzzzzzzzzz", "meal-1"}
	for _, id := range tests {
		if _, err := repo.GetByID(context.Background(), id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("GetByID(%q) error = %v, want ErrInvalidID", id, err)
		}
	}
}
