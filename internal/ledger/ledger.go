// Package ledger holds the in-memory list of logged food entries and folds
// them into daily totals.
package ledger

import (
	"errors"
	"math"
	"strings"

	"github.com/theirongolddev/gizi/internal/model"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by Resolve when no entry matches.
	ErrNotFound = errors.New("entry not found")
	// ErrAmbiguous is returned by Resolve when a prefix matches several entries.
	ErrAmbiguous = errors.New("id prefix matches more than one entry")
)

// Ledger is an ordered collection of food entries. Insertion order is
// display order. A Ledger is not safe for concurrent use; callers drive it
// from a single event loop.
type Ledger struct {
	entries []model.FoodEntry
	newID   func() string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDFunc overrides entry ID generation. IDs must be unique within the
// ledger.
func WithIDFunc(fn func() string) Option {
	return func(l *Ledger) {
		l.newID = fn
	}
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{newID: uuid.NewString}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add scales per-100g values to portionGrams, appends the resulting entry
// and returns it. Inputs are assumed already validated as non-negative.
func (l *Ledger) Add(name string, portionGrams float64, per100 model.Per100g) model.FoodEntry {
	multiplier := portionGrams / 100
	e := model.FoodEntry{
		ID:           l.newID(),
		Name:         name,
		PortionGrams: portionGrams,
		Calories:     math.Round(per100.Calories * multiplier),
		Protein:      roundTenth(per100.Protein * multiplier),
		Carbs:        roundTenth(per100.Carbs * multiplier),
		Fat:          roundTenth(per100.Fat * multiplier),
	}
	l.entries = append(l.entries, e)
	return e
}

// Remove deletes the entry with the given id. It reports whether anything
// was removed; an unknown id is a no-op.
func (l *Ledger) Remove(id string) bool {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every entry.
func (l *Ledger) Clear() {
	l.entries = nil
}

// Totals sums every nutrient across the current entries.
func (l *Ledger) Totals() model.Totals {
	var t model.Totals
	for _, e := range l.entries {
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fat += e.Fat
	}
	return t
}

// Entries returns a copy of the entries in insertion order.
func (l *Ledger) Entries() []model.FoodEntry {
	out := make([]model.FoodEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Get returns the entry with the exact id.
func (l *Ledger) Get(id string) (model.FoodEntry, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.FoodEntry{}, false
}

// Resolve finds the single entry whose id equals or starts with prefix.
func (l *Ledger) Resolve(prefix string) (model.FoodEntry, error) {
	if prefix == "" {
		return model.FoodEntry{}, ErrNotFound
	}
	if e, ok := l.Get(prefix); ok {
		return e, nil
	}

	var (
		match model.FoodEntry
		n     int
	)
	for _, e := range l.entries {
		if strings.HasPrefix(e.ID, prefix) {
			match = e
			n++
		}
	}
	switch n {
	case 0:
		return model.FoodEntry{}, ErrNotFound
	case 1:
		return match, nil
	default:
		return model.FoodEntry{}, ErrAmbiguous
	}
}

// Restore replaces the contents with entries that were scaled earlier,
// typically loaded back from the journal. Entries are kept as given.
func (l *Ledger) Restore(entries []model.FoodEntry) {
	l.entries = make([]model.FoodEntry, len(entries))
	copy(l.entries, entries)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
