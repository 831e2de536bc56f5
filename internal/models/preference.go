package models

// Preference stores a customer's dietary defaults, keyed by email. There is
// one document per email: writes are full-document replacements, never merges.
type Preference struct {
	Email               string    `json:"email" bson:"email" validate:"required,email"`
	TargetProteinPerDay *float64  `json:"target_protein_g_per_day" bson:"target_protein_g_per_day" validate:"omitempty,gte=20,lte=400"`
	DietFilters         []DietTag `json:"diet_filters" bson:"diet_filters" validate:"omitempty,dive,oneof=vegan vegetarian keto low-carb gluten-free dairy-free"`
}

// Normalize applies the documented defaults for omitted optional fields.
func (p *Preference) Normalize() {
	if p.TargetProteinPerDay == nil {
		target := defaultTargetProtein
		p.TargetProteinPerDay = &target
	}
	if p.DietFilters == nil {
		p.DietFilters = []DietTag{}
	}
}

const defaultTargetProtein = 120.0
