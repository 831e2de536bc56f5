package models

// Frequency is the fixed set of delivery cadences for a subscription.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// SubscriptionItem references a meal by its identity string together with a
// portion multiplier per delivery. Servings is a pointer so an omitted value
// (defaulted to 1.0) can be told apart from an explicit out-of-range zero.
type SubscriptionItem struct {
	MealID   string   `json:"meal_id" bson:"meal_id" validate:"required"`
	Servings *float64 `json:"servings" bson:"servings" validate:"omitempty,gte=0.5,lte=5"`
}

// Subscription represents a recurring meal delivery plan persisted in the
// "subscription" collection. Referenced meal IDs are not checked against the
// catalog on creation; that gap is part of the documented contract.
type Subscription struct {
	ID                  string             `json:"id,omitempty" bson:"-"`
	Email               string             `json:"email" bson:"email" validate:"required,email"`
	Frequency           Frequency          `json:"frequency" bson:"frequency" validate:"required,oneof=weekly biweekly monthly"`
	TargetProteinPerDay float64            `json:"target_protein_g_per_day" bson:"target_protein_g_per_day" validate:"gte=20,lte=400"`
	Items               []SubscriptionItem `json:"items" bson:"items" validate:"required,min=1,dive"`
	Notes               *string            `json:"notes" bson:"notes"`
}

// Normalize applies the documented defaults for omitted optional fields.
func (s *Subscription) Normalize() {
	for i := range s.Items {
		if s.Items[i].Servings == nil {
			servings := defaultServings
			s.Items[i].Servings = &servings
		}
	}
}

const defaultServings = 1.0
