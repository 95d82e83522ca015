package presenter

import (
	"math"
	"testing"

	"github.com/theirongolddev/gizi/internal/model"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		current, target, want float64
	}{
		{1000, 2000, 50},
		{2500, 2000, 100},
		{2000, 2000, 100},
		{0, 2000, 0},
		{75, 150, 50},
		{10, 0, 0},
		{0, 0, 0},
		{10, -5, 0},
	}
	for _, tt := range tests {
		if got := ProgressPercent(tt.current, tt.target); got != tt.want {
			t.Errorf("ProgressPercent(%v, %v) = %v, want %v", tt.current, tt.target, got, tt.want)
		}
	}
}

func TestProgressPercent_MonotonicAndCapped(t *testing.T) {
	const target = 65.0
	prev := -1.0
	for current := 0.0; current <= 200; current += 0.5 {
		got := ProgressPercent(current, target)
		if got < prev {
			t.Fatalf("ProgressPercent decreased at current=%v: %v < %v", current, got, prev)
		}
		if got > 100 {
			t.Fatalf("ProgressPercent(%v, %v) = %v, exceeds 100", current, target, got)
		}
		if current >= target && got != 100 {
			t.Fatalf("ProgressPercent(%v, %v) = %v, want 100 at or past target", current, target, got)
		}
		prev = got
	}
}

func TestMacroCalorieBreakdown(t *testing.T) {
	got := MacroCalorieBreakdown(model.Totals{Protein: 150, Carbs: 250, Fat: 65})
	want := model.MacroCalories{ProteinKcal: 600, CarbsKcal: 1000, FatKcal: 585}
	if got != want {
		t.Errorf("MacroCalorieBreakdown = %+v, want %+v", got, want)
	}
}

func TestMacroCalorieBreakdown_IgnoresStoredCalories(t *testing.T) {
	a := MacroCalorieBreakdown(model.Totals{Calories: 10, Protein: 1, Carbs: 1, Fat: 1})
	b := MacroCalorieBreakdown(model.Totals{Calories: 5000, Protein: 1, Carbs: 1, Fat: 1})
	if a != b {
		t.Errorf("breakdown depends on Calories: %+v vs %+v", a, b)
	}
	if a.Sum() != 17 {
		t.Errorf("Sum() = %v, want 17", a.Sum())
	}
}

func TestRemaining(t *testing.T) {
	if got := Remaining(1500, 2000); got != 500 {
		t.Errorf("Remaining(1500, 2000) = %v, want 500", got)
	}
	if got := Remaining(2500, 2000); got != 0 {
		t.Errorf("Remaining(2500, 2000) = %v, want 0", got)
	}
}

func TestDerive(t *testing.T) {
	totals := model.Totals{Calories: 1000, Protein: 75, Carbs: 300, Fat: 20.04}
	v := Derive(totals, model.DefaultTargets())

	if len(v.Rows) != 4 {
		t.Fatalf("len(Rows) = %d, want 4", len(v.Rows))
	}
	wantPct := map[model.Nutrient]float64{
		model.Calories: 50,
		model.Protein:  50,
		model.Carbs:    100,
	}
	for _, r := range v.Rows {
		want, ok := wantPct[r.Nutrient]
		if !ok {
			continue
		}
		if r.Percent != want {
			t.Errorf("%s Percent = %v, want %v", r.Label(), r.Percent, want)
		}
	}
	if fat := v.Rows[3]; fat.Current != 20 {
		t.Errorf("Fat Current = %v, want 20 (display rounding)", fat.Current)
	}

	var sum float64
	for _, s := range v.Shares {
		sum += s.Fraction
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("share fractions sum to %v, want 1", sum)
	}
}

func TestDerive_EmptyTotals(t *testing.T) {
	v := Derive(model.Totals{}, model.DefaultTargets())
	for _, r := range v.Rows {
		if r.Percent != 0 || r.Current != 0 {
			t.Errorf("%s row = %+v, want zero", r.Label(), r)
		}
	}
	for _, s := range v.Shares {
		if s.Fraction != 0 {
			t.Errorf("%s share = %v, want 0 for empty breakdown", s.Nutrient.Label(), s.Fraction)
		}
	}
}

func TestDerive_Idempotent(t *testing.T) {
	totals := model.Totals{Calories: 812, Protein: 40.2, Carbs: 90.1, Fat: 30.3}
	a := Derive(totals, model.DefaultTargets())
	b := Derive(totals, model.DefaultTargets())
	for i := range a.Rows {
		if a.Rows[i] != b.Rows[i] {
			t.Errorf("row %d differs between calls: %+v vs %+v", i, a.Rows[i], b.Rows[i])
		}
	}
	if a.Breakdown != b.Breakdown {
		t.Errorf("breakdown differs between calls")
	}
}
