// Package model defines domain types for gizi food logging.
package model

// FoodEntry is one logged food item. Nutrient fields are already scaled to
// the logged portion; per-100g reference values are not kept.
type FoodEntry struct {
	ID           string
	Name         string
	PortionGrams float64
	Calories     float64 // kcal, whole units
	Protein      float64 // grams, one decimal
	Carbs        float64 // grams, one decimal
	Fat          float64 // grams, one decimal
}

// Per100g holds reference nutrient values for 100 grams of a food.
type Per100g struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Totals is the sum of every entry's nutrients.
type Totals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Targets holds daily goal quantities per nutrient.
type Targets struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// DefaultTargets returns the built-in daily goals.
func DefaultTargets() Targets {
	return Targets{
		Calories: 2000,
		Protein:  150,
		Carbs:    250,
		Fat:      65,
	}
}

// MacroCalories is the energy contributed by each macro, used for the
// proportional chart. It is derived from grams and does not have to agree
// with Totals.Calories.
type MacroCalories struct {
	ProteinKcal float64
	CarbsKcal   float64
	FatKcal     float64
}

// Sum returns the combined macro energy.
func (m MacroCalories) Sum() float64 {
	return m.ProteinKcal + m.CarbsKcal + m.FatKcal
}
