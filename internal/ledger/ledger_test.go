package ledger

import (
	"errors"
	"strconv"
	"testing"

	"github.com/theirongolddev/gizi/internal/model"
)

// counterIDs returns an ID func producing "e1", "e2", ...
func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return "e" + strconv.Itoa(n)
	}
}

func TestAdd_ScalesAndRounds(t *testing.T) {
	l := New()
	e := l.Add("Rice", 150, model.Per100g{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3})

	if e.Calories != 195 {
		t.Errorf("Calories = %v, want 195", e.Calories)
	}
	if e.Protein != 4.1 {
		t.Errorf("Protein = %v, want 4.1", e.Protein)
	}
	if e.Carbs != 42 {
		t.Errorf("Carbs = %v, want 42", e.Carbs)
	}
	if e.Fat != 0.5 {
		t.Errorf("Fat = %v, want 0.5", e.Fat)
	}
	if e.PortionGrams != 150 || e.Name != "Rice" {
		t.Errorf("entry = %+v, want Rice/150g", e)
	}
	if e.ID == "" {
		t.Error("entry has empty ID")
	}
}

func TestAdd_CaloriesRoundToWholeUnits(t *testing.T) {
	l := New()
	// 52 * 1.18 = 61.36 -> 61
	e := l.Add("Apple", 118, model.Per100g{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2})
	if e.Calories != 61 {
		t.Errorf("Calories = %v, want 61", e.Calories)
	}
	// 14 * 1.18 = 16.52 -> 16.5
	if e.Carbs != 16.5 {
		t.Errorf("Carbs = %v, want 16.5", e.Carbs)
	}
}

func TestAdd_UniqueIDs(t *testing.T) {
	l := New()
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		e := l.Add("Egg", 50, model.Per100g{Calories: 155})
		if _, dup := seen[e.ID]; dup {
			t.Fatalf("duplicate ID %q after %d adds", e.ID, i)
		}
		seen[e.ID] = struct{}{}
	}
}

func TestTotals_SumOfEntries(t *testing.T) {
	l := New()
	foods := []struct {
		portion float64
		per100  model.Per100g
	}{
		{150, model.Per100g{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}},
		{100, model.Per100g{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6}},
		{55, model.Per100g{Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11}},
	}

	var want model.Totals
	for _, f := range foods {
		e := l.Add("food", f.portion, f.per100)
		want.Calories += e.Calories
		want.Protein += e.Protein
		want.Carbs += e.Carbs
		want.Fat += e.Fat
	}

	if got := l.Totals(); got != want {
		t.Errorf("Totals() = %+v, want %+v", got, want)
	}
	if got := l.Totals(); got != l.Totals() {
		t.Errorf("Totals() not stable across calls: %+v", got)
	}
}

func TestTotals_Empty(t *testing.T) {
	if got := New().Totals(); got != (model.Totals{}) {
		t.Errorf("Totals() on empty ledger = %+v, want zero", got)
	}
}

func TestRemove(t *testing.T) {
	l := New(WithIDFunc(counterIDs()))
	l.Add("A", 100, model.Per100g{Calories: 100})
	l.Add("B", 100, model.Per100g{Calories: 200})
	l.Add("C", 100, model.Per100g{Calories: 300})

	if !l.Remove("e2") {
		t.Fatal("Remove(e2) = false, want true")
	}
	entries := l.Entries()
	if len(entries) != 2 || entries[0].Name != "A" || entries[1].Name != "C" {
		t.Fatalf("entries after remove = %+v, want [A C]", entries)
	}
	if got := l.Totals().Calories; got != 400 {
		t.Errorf("Totals().Calories = %v, want 400", got)
	}
}

func TestRemove_UnknownIDIsNoop(t *testing.T) {
	l := New(WithIDFunc(counterIDs()))
	l.Add("A", 100, model.Per100g{Calories: 100, Protein: 1})
	before := l.Totals()

	if l.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if l.Totals() != before {
		t.Errorf("Totals changed after no-op remove: %+v -> %+v", before, l.Totals())
	}
}

func TestClear(t *testing.T) {
	l := New()
	l.Add("A", 100, model.Per100g{Calories: 100, Protein: 5, Carbs: 5, Fat: 5})
	l.Add("B", 80, model.Per100g{Calories: 50})

	l.Clear()

	if l.Len() != 0 || len(l.Entries()) != 0 {
		t.Errorf("entries after Clear = %d, want 0", l.Len())
	}
	if got := l.Totals(); got != (model.Totals{}) {
		t.Errorf("Totals() after Clear = %+v, want zero", got)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	l := New()
	l.Add("A", 100, model.Per100g{Calories: 100})

	entries := l.Entries()
	entries[0].Calories = 9999

	if got := l.Totals().Calories; got != 100 {
		t.Errorf("mutating Entries() leaked into ledger: Calories = %v", got)
	}
}

func TestIndependentLedgers(t *testing.T) {
	a, b := New(), New()
	a.Add("A", 100, model.Per100g{Calories: 100})

	if b.Len() != 0 {
		t.Errorf("second ledger saw %d entries, want 0", b.Len())
	}
}

func TestResolve(t *testing.T) {
	ids := []string{"abc111", "abc222", "def333"}
	i := 0
	l := New(WithIDFunc(func() string {
		id := ids[i]
		i++
		return id
	}))
	for range ids {
		l.Add("x", 100, model.Per100g{})
	}

	tests := []struct {
		prefix  string
		wantID  string
		wantErr error
	}{
		{"def", "def333", nil},
		{"abc2", "abc222", nil},
		{"abc111", "abc111", nil},
		{"abc", "", ErrAmbiguous},
		{"zzz", "", ErrNotFound},
		{"", "", ErrNotFound},
	}
	for _, tt := range tests {
		e, err := l.Resolve(tt.prefix)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Resolve(%q) err = %v, want %v", tt.prefix, err, tt.wantErr)
			continue
		}
		if e.ID != tt.wantID {
			t.Errorf("Resolve(%q) = %q, want %q", tt.prefix, e.ID, tt.wantID)
		}
	}
}

func TestRestore_KeepsEntriesAsGiven(t *testing.T) {
	l := New()
	l.Restore([]model.FoodEntry{
		{ID: "x1", Name: "Rice", PortionGrams: 150, Calories: 195, Protein: 4.1, Carbs: 42, Fat: 0.5},
		{ID: "x2", Name: "Egg", PortionGrams: 50, Calories: 78, Protein: 6.5, Carbs: 0.6, Fat: 5.5},
	})

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if got := l.Totals().Calories; got != 273 {
		t.Errorf("Totals().Calories = %v, want 273", got)
	}
	if !l.Remove("x1") {
		t.Error("Remove(x1) after Restore = false, want true")
	}
}
