package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/gizi/internal/config"
	"github.com/theirongolddev/gizi/internal/model"
	"github.com/theirongolddev/gizi/internal/store"
	"github.com/theirongolddev/gizi/internal/tracker"
)

func TestSelectedDay(t *testing.T) {
	defer func() { flagDate = "" }()

	flagDate = "2025-06-01"
	day, err := selectedDay()
	if err != nil || day != "2025-06-01" {
		t.Errorf("selectedDay() = %q, %v", day, err)
	}

	flagDate = "01/06/2025"
	if _, err := selectedDay(); err == nil {
		t.Error("expected error for a non-ISO date")
	}
}

func TestRenderSummary(t *testing.T) {
	ctx := context.Background()
	tr := tracker.New(model.DefaultTargets())
	if err := tr.Open(ctx, "2025-06-01"); err != nil {
		t.Fatal(err)
	}

	empty := renderSummary(tr.Snapshot())
	if !strings.Contains(empty, "No foods added yet") {
		t.Errorf("empty summary missing hint:\n%s", empty)
	}

	tr.Add(ctx, "Nasi Putih", 150, model.Per100g{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3})
	out := renderSummary(tr.Snapshot())
	for _, want := range []string{"NUTRITION  2025-06-01", "195 kcal", "1,805 kcal", "1 food logged"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEntryTable(t *testing.T) {
	ctx := context.Background()
	tr := tracker.New(model.DefaultTargets())
	tr.Add(ctx, "Telur", 50, model.Per100g{Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11})
	tr.Add(ctx, "Tahu", 100, model.Per100g{Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8})

	out := renderEntryTable(tr.Snapshot())
	telur := strings.Index(out, "Telur")
	tahu := strings.Index(out, "Tahu")
	if telur < 0 || tahu < 0 || telur > tahu {
		t.Errorf("entries should appear in insertion order:\n%s", out)
	}
	// 78 + 76
	if !strings.Contains(out, "154 kcal") {
		t.Errorf("totals row missing:\n%s", out)
	}
}

func TestAddWritesJournal(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	db := filepath.Join(t.TempDir(), "journal.db")

	rootCmd.SetArgs([]string{
		"--db", db, "--date", "2025-06-01", "--quiet",
		"add", "Nasi", "Putih",
		"--portion", "150", "--kcal", "130", "--protein", "2.7", "--carbs", "28", "--fat", "0.3",
	})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("gizi add: %v", err)
	}

	j, err := store.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	entries, err := j.LoadDay(context.Background(), "2025-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("journal entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Name != "Nasi Putih" || e.Calories != 195 || e.Protein != 4.1 || e.Carbs != 42 || e.Fat != 0.5 {
		t.Errorf("entry = %+v", e)
	}
}

// runGizi executes the root command with args and returns what it printed.
func runGizi(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seedJournal(t *testing.T, db, day string, entries ...model.FoodEntry) {
	t.Helper()
	j, err := store.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()
	for i, e := range entries {
		if err := j.SaveEntry(context.Background(), day, i, e); err != nil {
			t.Fatal(err)
		}
	}
}

func loadJournal(t *testing.T, db, day string) []model.FoodEntry {
	t.Helper()
	j, err := store.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()
	entries, err := j.LoadDay(context.Background(), day)
	if err != nil {
		t.Fatal(err)
	}
	return entries
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	db := filepath.Join(t.TempDir(), "journal.db")
	seedJournal(t, db, "2025-06-01",
		model.FoodEntry{ID: "a1b2c3d4", Name: "Telur", PortionGrams: 50, Calories: 78, Protein: 6.5, Carbs: 0.6, Fat: 5.5})

	out, err := runGizi(t, "--db", db, "--date", "2025-06-01", "--quiet", "rm", "ffff")
	if err != nil {
		t.Fatalf("gizi rm ffff: %v", err)
	}
	if !strings.Contains(out, `No entry matches "ffff"`) {
		t.Errorf("output = %q, want not-found notice", out)
	}
	if got := loadJournal(t, db, "2025-06-01"); len(got) != 1 {
		t.Errorf("journal entries = %d, want 1", len(got))
	}

	out, err = runGizi(t, "--db", db, "--date", "2025-06-01", "--quiet", "rm", "a1b2")
	if err != nil {
		t.Fatalf("gizi rm a1b2: %v", err)
	}
	if !strings.Contains(out, "Telur removed") {
		t.Errorf("output = %q", out)
	}
	if got := loadJournal(t, db, "2025-06-01"); len(got) != 0 {
		t.Errorf("journal entries = %d after rm, want 0", len(got))
	}
}

func TestClearYesEmptiesJournal(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	defer func() { flagYes = false }()
	db := filepath.Join(t.TempDir(), "journal.db")
	seedJournal(t, db, "2025-06-01",
		model.FoodEntry{ID: "e1", Name: "Telur", PortionGrams: 50, Calories: 78},
		model.FoodEntry{ID: "e2", Name: "Tahu", PortionGrams: 100, Calories: 76})
	seedJournal(t, db, "2025-06-02",
		model.FoodEntry{ID: "e3", Name: "Susu", PortionGrams: 250, Calories: 105})

	out, err := runGizi(t, "--db", db, "--date", "2025-06-01", "--quiet", "clear", "--yes")
	if err != nil {
		t.Fatalf("gizi clear --yes: %v", err)
	}
	if !strings.Contains(out, "All foods cleared") {
		t.Errorf("output = %q", out)
	}
	if got := loadJournal(t, db, "2025-06-01"); len(got) != 0 {
		t.Errorf("cleared day still has %d entries", len(got))
	}
	if got := loadJournal(t, db, "2025-06-02"); len(got) != 1 {
		t.Errorf("other day has %d entries, want 1", len(got))
	}
}

func TestAddRejectsNonFiniteValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	db := filepath.Join(t.TempDir(), "journal.db")

	_, err := runGizi(t, "--db", db, "--date", "2025-06-01", "--quiet",
		"add", "Broken",
		"--portion", "100", "--kcal", "NaN", "--protein", "1", "--carbs", "1", "--fat", "1")
	if err == nil {
		t.Fatal("gizi add --kcal NaN should fail")
	}
	if got := loadJournal(t, db, "2025-06-01"); len(got) != 0 {
		t.Errorf("journal entries = %d, want 0", len(got))
	}
}

func TestTUIConfigFallsBackOnCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	defer func() { flagQuiet = false }()
	flagQuiet = true

	if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(config.Path(), []byte("[targets\ncalories = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(); err == nil {
		t.Fatal("corrupt config should fail to load")
	}

	cfg := tuiConfig()
	if cfg.ModelTargets() != model.DefaultTargets() {
		t.Errorf("targets = %+v, want defaults", cfg.ModelTargets())
	}
}
