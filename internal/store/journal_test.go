package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/gizi/internal/model"
)

func openTemp(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestJournal_SaveLoadOrder(t *testing.T) {
	ctx := context.Background()
	j := openTemp(t)

	entries := []model.FoodEntry{
		{ID: "b", Name: "Rice", PortionGrams: 150, Calories: 195, Protein: 4.1, Carbs: 42, Fat: 0.5},
		{ID: "a", Name: "Egg", PortionGrams: 50, Calories: 78, Protein: 6.5, Carbs: 0.6, Fat: 5.5},
		{ID: "c", Name: "Tofu", PortionGrams: 100, Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8},
	}
	for i, e := range entries {
		if err := j.SaveEntry(ctx, "2025-06-01", i, e); err != nil {
			t.Fatalf("SaveEntry(%s) error: %v", e.ID, err)
		}
	}
	if err := j.SaveEntry(ctx, "2025-06-02", 0, model.FoodEntry{ID: "d", Name: "Milk"}); err != nil {
		t.Fatal(err)
	}

	got, err := j.LoadDay(ctx, "2025-06-01")
	if err != nil {
		t.Fatalf("LoadDay() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("LoadDay() returned %d entries, want 3", len(got))
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}

	seq, err := j.NextSeq(ctx, "2025-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if seq != 3 {
		t.Errorf("NextSeq() = %d, want 3", seq)
	}
	if seq, _ := j.NextSeq(ctx, "2030-01-01"); seq != 0 {
		t.Errorf("NextSeq() on empty day = %d, want 0", seq)
	}
}

func TestJournal_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	j := openTemp(t)

	for i, id := range []string{"x", "y", "z"} {
		if err := j.SaveEntry(ctx, "2025-06-01", i, model.FoodEntry{ID: id, Name: id}); err != nil {
			t.Fatal(err)
		}
	}
	if err := j.SaveEntry(ctx, "2025-06-02", 0, model.FoodEntry{ID: "w", Name: "w"}); err != nil {
		t.Fatal(err)
	}

	if err := j.DeleteEntry(ctx, "y"); err != nil {
		t.Fatalf("DeleteEntry() error: %v", err)
	}
	if err := j.DeleteEntry(ctx, "missing"); err != nil {
		t.Fatalf("DeleteEntry(missing) error: %v", err)
	}
	got, _ := j.LoadDay(ctx, "2025-06-01")
	if len(got) != 2 || got[0].ID != "x" || got[1].ID != "z" {
		t.Fatalf("after delete = %+v, want [x z]", got)
	}

	if err := j.ClearDay(ctx, "2025-06-01"); err != nil {
		t.Fatalf("ClearDay() error: %v", err)
	}
	if got, _ := j.LoadDay(ctx, "2025-06-01"); len(got) != 0 {
		t.Errorf("after clear = %d entries, want 0", len(got))
	}

	days, err := j.Days(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 1 || days[0] != "2025-06-02" {
		t.Errorf("Days() = %v, want [2025-06-02]", days)
	}
}

func TestDayKey(t *testing.T) {
	d := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	if got := DayKey(d); got != "2025-06-01" {
		t.Errorf("DayKey() = %q", got)
	}
}
