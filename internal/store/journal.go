// Package store provides a SQLite-backed journal of logged food entries so
// separate CLI invocations can work on the same day.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/gizi/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DayFormat is the layout of the day key.
const DayFormat = "2006-01-02"

// Journal persists entries grouped by calendar day.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal database at the given path.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// DayKey formats t as a journal day key in its own location.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// SaveEntry stores e under day at position seq.
func (j *Journal) SaveEntry(ctx context.Context, day string, seq int, e model.FoodEntry) error {
	_, err := j.db.ExecContext(ctx, `INSERT OR REPLACE INTO entries
		(id, day, seq, name, portion_grams, calories, protein, carbs, fat, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, day, seq, e.Name, e.PortionGrams,
		e.Calories, e.Protein, e.Carbs, e.Fat,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving entry %s: %w", e.ID, err)
	}
	return nil
}

// DeleteEntry removes one entry. Deleting an unknown id is not an error.
func (j *Journal) DeleteEntry(ctx context.Context, id string) error {
	if _, err := j.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting entry %s: %w", id, err)
	}
	return nil
}

// ClearDay removes every entry logged on day.
func (j *Journal) ClearDay(ctx context.Context, day string) error {
	if _, err := j.db.ExecContext(ctx, "DELETE FROM entries WHERE day = ?", day); err != nil {
		return fmt.Errorf("clearing %s: %w", day, err)
	}
	return nil
}

// LoadDay returns the entries of day in insertion order.
func (j *Journal) LoadDay(ctx context.Context, day string) ([]model.FoodEntry, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT
		id, name, portion_grams, calories, protein, carbs, fat
		FROM entries WHERE day = ? ORDER BY seq, created_at`, day)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", day, err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.FoodEntry
	for rows.Next() {
		var e model.FoodEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.PortionGrams,
			&e.Calories, &e.Protein, &e.Carbs, &e.Fat); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// NextSeq returns the position after the last entry of day.
func (j *Journal) NextSeq(ctx context.Context, day string) (int, error) {
	var seq sql.NullInt64
	err := j.db.QueryRowContext(ctx, "SELECT MAX(seq) FROM entries WHERE day = ?", day).Scan(&seq)
	if err != nil {
		return 0, err
	}
	if !seq.Valid {
		return 0, nil
	}
	return int(seq.Int64) + 1, nil
}

// Days returns every day with at least one entry, newest first.
func (j *Journal) Days(ctx context.Context) ([]string, error) {
	rows, err := j.db.QueryContext(ctx, "SELECT DISTINCT day FROM entries ORDER BY day DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var days []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
