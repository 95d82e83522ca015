// Package presenter derives display values (progress percentages, macro
// energy split) from ledger totals and daily targets.
package presenter

import (
	"math"

	"github.com/theirongolddev/gizi/internal/model"
)

// Energy per gram of each macro.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// ProgressPercent returns current as a percentage of target, capped at 100.
// A non-positive target yields 0.
func ProgressPercent(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(current/target*100, 100)
}

// Remaining returns how much of target is left, never negative.
func Remaining(current, target float64) float64 {
	return math.Max(target-current, 0)
}

// MacroCalorieBreakdown converts macro grams to kcal for the proportional
// chart. It ignores t.Calories.
func MacroCalorieBreakdown(t model.Totals) model.MacroCalories {
	return model.MacroCalories{
		ProteinKcal: t.Protein * KcalPerGramProtein,
		CarbsKcal:   t.Carbs * KcalPerGramCarbs,
		FatKcal:     t.Fat * KcalPerGramFat,
	}
}

// Row is one nutrient line of the dashboard.
type Row struct {
	Nutrient model.Nutrient
	Current  float64 // rounded for display
	Target   float64
	Percent  float64 // 0..100
}

// Label returns the nutrient's display name.
func (r Row) Label() string { return r.Nutrient.Label() }

// Unit returns the nutrient's display unit.
func (r Row) Unit() string { return r.Nutrient.Unit() }

// Remaining returns the amount left to reach the target.
func (r Row) Remaining() float64 { return Remaining(r.Current, r.Target) }

// Share is one macro's slice of the macro energy chart.
type Share struct {
	Nutrient model.Nutrient
	Kcal     float64
	Fraction float64 // 0..1 of the macro energy sum
}

// View is everything a renderer needs after a ledger change.
type View struct {
	Rows      []Row
	Breakdown model.MacroCalories
	Shares    []Share
}

// Derive builds the view for totals against targets.
func Derive(totals model.Totals, targets model.Targets) View {
	rows := make([]Row, 0, len(model.Nutrients))
	for _, n := range model.Nutrients {
		current := n.Value(totals)
		target := n.Target(targets)
		rows = append(rows, Row{
			Nutrient: n,
			Current:  displayRound(n, current),
			Target:   target,
			// Percent uses the unrounded total, matching the bar widths.
			Percent: ProgressPercent(current, target),
		})
	}

	bd := MacroCalorieBreakdown(totals)
	sum := bd.Sum()
	shares := []Share{
		{Nutrient: model.Protein, Kcal: bd.ProteinKcal},
		{Nutrient: model.Carbs, Kcal: bd.CarbsKcal},
		{Nutrient: model.Fat, Kcal: bd.FatKcal},
	}
	if sum > 0 {
		for i := range shares {
			shares[i].Fraction = shares[i].Kcal / sum
		}
	}

	return View{Rows: rows, Breakdown: bd, Shares: shares}
}

func displayRound(n model.Nutrient, v float64) float64 {
	if n == model.Calories {
		return math.Round(v)
	}
	return math.Round(v*10) / 10
}
