package models

// Canonical nutrient keys. Values are per the reference mass (100 g) unless
// a profile has already been normalized to a portion.
const (
	NutrientEnergyKcal = "energy_kcal"
	NutrientEnergyKJ   = "energy_kj"
	NutrientCarbs      = "carbohydrates"
	NutrientProtein    = "proteins"
	NutrientFat        = "fat"
	NutrientFiber      = "fiber"
	NutrientSugars     = "sugars"
	NutrientSodiumMg   = "sodium_mg"
)

// NutrientProfile maps nutrient key → value. A missing key means the value
// is unknown, which is not the same as zero.
type NutrientProfile map[string]float64

// Clone returns an independent copy. Safe on nil.
func (p NutrientProfile) Clone() NutrientProfile {
	if p == nil {
		return nil
	}
	out := make(NutrientProfile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// FoodSource tells downstream consumers whether a resolved item came from
// the curated TACO table or from a TBCA remote estimate.
type FoodSource string

const (
	SourceLocal  FoodSource = "local"
	SourceRemote FoodSource = "remote"
)

// FoodItem is the uniform shape every resolved food takes, regardless of
// which source produced it.
type FoodItem struct {
	ID               string          `json:"id"`
	Source           FoodSource      `json:"source"`
	Name             string          `json:"name"`
	Category         string          `json:"category,omitempty"`
	NutrientsPer100g NutrientProfile `json:"nutrients_per_100g"`
	GlycemicIndex    *float64        `json:"glycemic_index,omitempty"`
}
