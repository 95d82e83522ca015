// Package tracker ties the ledger, the daily targets and an optional journal
// together. Every mutation returns a freshly derived Snapshot for rendering.
package tracker

import (
	"context"
	"fmt"

	"github.com/theirongolddev/gizi/internal/ledger"
	"github.com/theirongolddev/gizi/internal/model"
	"github.com/theirongolddev/gizi/internal/presenter"
	"github.com/theirongolddev/gizi/internal/presets"
)

// Journal persists entries per day. *store.Journal satisfies it.
type Journal interface {
	SaveEntry(ctx context.Context, day string, seq int, e model.FoodEntry) error
	DeleteEntry(ctx context.Context, id string) error
	ClearDay(ctx context.Context, day string) error
	LoadDay(ctx context.Context, day string) ([]model.FoodEntry, error)
	NextSeq(ctx context.Context, day string) (int, error)
}

// Snapshot is the state handed to renderers after each change.
type Snapshot struct {
	Day     string
	Entries []model.FoodEntry
	Totals  model.Totals
	Targets model.Targets
	View    presenter.View
}

// Tracker is driven from a single goroutine; it does no locking.
type Tracker struct {
	ledger  *ledger.Ledger
	targets model.Targets
	journal Journal
	day     string
	nextSeq int
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithJournal writes every mutation through to j.
func WithJournal(j Journal) Option {
	return func(t *Tracker) {
		t.journal = j
	}
}

// WithLedger uses l instead of a fresh ledger.
func WithLedger(l *ledger.Ledger) Option {
	return func(t *Tracker) {
		t.ledger = l
	}
}

// New returns a tracker with an empty ledger.
func New(targets model.Targets, opts ...Option) *Tracker {
	t := &Tracker{targets: targets}
	for _, opt := range opts {
		opt(t)
	}
	if t.ledger == nil {
		t.ledger = ledger.New()
	}
	return t
}

// Open selects day and restores its entries from the journal. Without a
// journal the day starts empty.
func (t *Tracker) Open(ctx context.Context, day string) error {
	t.day = day
	t.nextSeq = 0
	if t.journal == nil {
		t.ledger.Clear()
		return nil
	}

	entries, err := t.journal.LoadDay(ctx, day)
	if err != nil {
		return fmt.Errorf("restoring %s: %w", day, err)
	}
	seq, err := t.journal.NextSeq(ctx, day)
	if err != nil {
		return fmt.Errorf("restoring %s: %w", day, err)
	}
	t.ledger.Restore(entries)
	t.nextSeq = seq
	return nil
}

// Day returns the day currently open.
func (t *Tracker) Day() string {
	return t.day
}

// SetTargets replaces the daily targets used by later snapshots.
func (t *Tracker) SetTargets(targets model.Targets) {
	t.targets = targets
}

// Ledger exposes the underlying ledger.
func (t *Tracker) Ledger() *ledger.Ledger {
	return t.ledger
}

// Add logs a food. If the journal rejects the entry the ledger is rolled
// back and the error returned.
func (t *Tracker) Add(ctx context.Context, name string, portionGrams float64, per100 model.Per100g) (model.FoodEntry, Snapshot, error) {
	e := t.ledger.Add(name, portionGrams, per100)
	if t.journal != nil {
		if err := t.journal.SaveEntry(ctx, t.day, t.nextSeq, e); err != nil {
			t.ledger.Remove(e.ID)
			return model.FoodEntry{}, t.Snapshot(), err
		}
	}
	t.nextSeq++
	return e, t.Snapshot(), nil
}

// AddPreset logs a preset food. A zero portion uses the preset's default.
func (t *Tracker) AddPreset(ctx context.Context, p presets.Preset, portionGrams float64) (model.FoodEntry, Snapshot, error) {
	if portionGrams <= 0 {
		portionGrams = p.Portion
	}
	if !(portionGrams > 0) {
		return model.FoodEntry{}, t.Snapshot(), fmt.Errorf("preset %s has no portion", p.Slug)
	}
	return t.Add(ctx, p.Name, portionGrams, p.Per100)
}

// Remove deletes the entry with id. An unknown id reports false without
// error.
func (t *Tracker) Remove(ctx context.Context, id string) (bool, Snapshot, error) {
	e, ok := t.ledger.Get(id)
	if !ok {
		return false, t.Snapshot(), nil
	}
	if t.journal != nil {
		if err := t.journal.DeleteEntry(ctx, id); err != nil {
			return false, t.Snapshot(), err
		}
	}
	t.ledger.Remove(e.ID)
	return true, t.Snapshot(), nil
}

// Clear removes every entry of the open day.
func (t *Tracker) Clear(ctx context.Context) (Snapshot, error) {
	if t.journal != nil {
		if err := t.journal.ClearDay(ctx, t.day); err != nil {
			return t.Snapshot(), err
		}
	}
	t.ledger.Clear()
	t.nextSeq = 0
	return t.Snapshot(), nil
}

// Snapshot derives the current display state.
func (t *Tracker) Snapshot() Snapshot {
	totals := t.ledger.Totals()
	return Snapshot{
		Day:     t.day,
		Entries: t.ledger.Entries(),
		Totals:  totals,
		Targets: t.targets,
		View:    presenter.Derive(totals, t.targets),
	}
}
