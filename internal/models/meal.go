package models

// DietTag labels a meal with a dietary property. Only the values below are
// accepted; anything else is rejected at the validation boundary.
type DietTag string

const (
	DietVegan      DietTag = "vegan"
	DietVegetarian DietTag = "vegetarian"
	DietKeto       DietTag = "keto"
	DietLowCarb    DietTag = "low-carb"
	DietGlutenFree DietTag = "gluten-free"
	DietDairyFree  DietTag = "dairy-free"
)

// Category is the fixed set of menu sections a meal can belong to.
type Category string

const (
	CategoryBreakfasts Category = "Breakfasts"
	CategoryMainMeals  Category = "Main Meals"
	CategorySmoothies  Category = "Smoothies & Shakes"
)

// Macros holds the nutrition values for one serving of a meal.
// All values are grams except Calories (kcal); none may be negative.
type Macros struct {
	Protein  float64 `json:"protein" bson:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" bson:"carbs" validate:"gte=0"`
	Fats     float64 `json:"fats" bson:"fats" validate:"gte=0"`
	Calories float64 `json:"calories" bson:"calories" validate:"gte=0"`
}

// Meal represents a catalog entry persisted in the "meal" collection.
// ID is the store-assigned identity as a hex string; the store's native
// representation never leaves the repository layer. AvailableAddOns is only
// meaningful when IsCustomizable is set (documented contract, not enforced).
type Meal struct {
	ID              string    `json:"id,omitempty" bson:"-"`
	Title           string    `json:"title" bson:"title" validate:"required"`
	Description     *string   `json:"description" bson:"description"`
	Category        Category  `json:"category" bson:"category" validate:"required,oneof=Breakfasts 'Main Meals' 'Smoothies & Shakes'"`
	DietTags        []DietTag `json:"diet_tags" bson:"diet_tags" validate:"omitempty,dive,oneof=vegan vegetarian keto low-carb gluten-free dairy-free"`
	Price           float64   `json:"price" bson:"price" validate:"gte=0"`
	Macros          Macros    `json:"macros" bson:"macros"`
	ImageURL        *string   `json:"image_url" bson:"image_url"`
	IsCustomizable  bool      `json:"is_customizable" bson:"is_customizable"`
	AvailableAddOns []string  `json:"available_add_ons" bson:"available_add_ons"`
}

// MealFilter carries the optional query filters for listing meals.
// Category and Diet are pushed down to the store; MinProtein is applied by the
// service after retrieval.
type MealFilter struct {
	Category   string
	Diet       string
	MinProtein *float64
}

// MealList is the response envelope for meal listings.
type MealList struct {
	Items []Meal `json:"items"`
}

// SeedResult reports the outcome of a seed request: whether the built-in
// catalog was inserted, and how many meals the collection holds as a result.
type SeedResult struct {
	Seeded bool `json:"seeded"`
	Count  int  `json:"count"`
}
