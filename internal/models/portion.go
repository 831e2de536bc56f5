package models

// PortionRequest asks for the nutrition of a meal scaled to a servings count.
// Servings is optional and defaults to 1.0; it is deliberately unconstrained
// here because the service clamps the effective factor instead of rejecting.
type PortionRequest struct {
	MealID   string   `json:"meal_id" validate:"required"`
	Servings *float64 `json:"servings"`
}

// Portion is the portion-scaled nutrition for a meal. Servings is the
// effective factor that was applied, after clamping.
type Portion struct {
	Servings float64 `json:"servings"`
	Macros   Macros  `json:"macros"`
}
