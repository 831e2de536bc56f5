package service

import (
	"context"
	"math"

	"github.com/proteinmeals/backend/internal/models"
	"github.com/proteinmeals/backend/internal/repository"
)

// minServingsFactor is the lower clamp for portion scaling. Zero or negative
// servings are raised to it so a request can never produce all-zero macros.
// There is no matching upper clamp; arbitrarily large servings pass through.
const minServingsFactor = 0.25

// MealService handles catalog reads, portion scaling, and seeding.
type MealService struct {
	repo repository.MealRepository
}

// NewMealService creates a new meal service.
func NewMealService(repo repository.MealRepository) *MealService {
	return &MealService{repo: repo}
}

// ListMeals returns the catalog entries matching the filter. Category and diet
// are evaluated by the store; the minimum-protein threshold compares against a
// nested field the store query does not express in this design, so it is
// applied here after retrieval.
func (s *MealService) ListMeals(ctx context.Context, filter models.MealFilter) ([]models.Meal, error) {
	meals, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.MinProtein == nil {
		return meals, nil
	}

	filtered := make([]models.Meal, 0, len(meals))
	for _, meal := range meals {
		if meal.Macros.Protein >= *filter.MinProtein {
			filtered = append(filtered, meal)
		}
	}
	return filtered, nil
}

// PortionMacros looks up a meal and scales its macros by the requested
// servings count. Omitted servings default to 1.0, and the effective factor is
// clamped to at least minServingsFactor. Every scaled value is rounded to one
// decimal place.
func (s *MealService) PortionMacros(ctx context.Context, req models.PortionRequest) (*models.Portion, error) {
	if err := models.Validate(&req); err != nil {
		return nil, err
	}

	meal, err := s.repo.GetByID(ctx, req.MealID)
	if err != nil {
		return nil, err
	}

	servings := defaultServingsFactor
	if req.Servings != nil {
		servings = *req.Servings
	}
	factor := math.Max(minServingsFactor, servings)

	return &models.Portion{
		Servings: factor,
		Macros: models.Macros{
			Protein:  round1(meal.Macros.Protein * factor),
			Carbs:    round1(meal.Macros.Carbs * factor),
			Fats:     round1(meal.Macros.Fats * factor),
			Calories: round1(meal.Macros.Calories * factor),
		},
	}, nil
}

const defaultServingsFactor = 1.0

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SeedCatalog inserts the built-in catalog if the meal collection is empty and
// reports how many meals the collection holds afterwards. The count check and
// the insert are two separate store calls: two concurrent first calls can both
// observe an empty collection and both insert. Accepted for a one-time
// bootstrap.
func (s *MealService) SeedCatalog(ctx context.Context) (*models.SeedResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &models.SeedResult{Seeded: false, Count: int(count)}, nil
	}

	catalog := initialCatalog()
	for i := range catalog {
		if err := models.Validate(&catalog[i]); err != nil {
			return nil, err
		}
	}

	if err := s.repo.InsertMany(ctx, catalog); err != nil {
		return nil, err
	}
	return &models.SeedResult{Seeded: true, Count: len(catalog)}, nil
}

// initialCatalog returns the built-in example meals used to bootstrap an empty
// store: three breakfasts, two mains, and one customizable smoothie.
func initialCatalog() []models.Meal {
	return []models.Meal{
		{
			Title:       "Protein Pancakes",
			Description: ptr("Fluffy oat-banana pancakes with whey."),
			Category:    models.CategoryBreakfasts,
			DietTags:    []models.DietTag{models.DietVegetarian},
			Price:       9.99,
			Macros:      models.Macros{Protein: 35, Carbs: 45, Fats: 8, Calories: 420},
		},
		{
			Title:       "Spinach Omelette",
			Description: ptr("Egg whites, spinach, feta."),
			Category:    models.CategoryBreakfasts,
			DietTags:    []models.DietTag{models.DietKeto},
			Price:       8.50,
			Macros:      models.Macros{Protein: 32, Carbs: 6, Fats: 14, Calories: 290},
		},
		{
			Title:       "Greek Yogurt Bowl",
			Description: ptr("Greek yogurt, berries, almonds."),
			Category:    models.CategoryBreakfasts,
			DietTags:    []models.DietTag{models.DietLowCarb},
			Price:       7.90,
			Macros:      models.Macros{Protein: 28, Carbs: 22, Fats: 10, Calories: 320},
		},
		{
			Title:       "Chicken Power Bowl",
			Description: ptr("Grilled chicken, quinoa, veggies."),
			Category:    models.CategoryMainMeals,
			DietTags:    []models.DietTag{},
			Price:       12.99,
			Macros:      models.Macros{Protein: 50, Carbs: 40, Fats: 12, Calories: 520},
		},
		{
			Title:       "Tofu Teriyaki Bowl",
			Description: ptr("High-protein tofu, brown rice, broccoli."),
			Category:    models.CategoryMainMeals,
			DietTags:    []models.DietTag{models.DietVegan},
			Price:       11.50,
			Macros:      models.Macros{Protein: 35, Carbs: 55, Fats: 14, Calories: 540},
		},
		{
			Title:           "Custom Protein Smoothie",
			Description:     ptr("Build your own shake."),
			Category:        models.CategorySmoothies,
			DietTags:        []models.DietTag{models.DietVegan},
			Price:           6.99,
			Macros:          models.Macros{Protein: 25, Carbs: 30, Fats: 6, Calories: 310},
			IsCustomizable:  true,
			AvailableAddOns: []string{"whey", "vegan protein", "creatine", "peanut butter", "chia seeds"},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
