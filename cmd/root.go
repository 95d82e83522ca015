// Package cmd implements the gizi CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/gizi/internal/config"
	"github.com/theirongolddev/gizi/internal/store"
	"github.com/theirongolddev/gizi/internal/tracker"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagDB        string
	flagEphemeral bool
	flagDate      string
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "gizi",
	Short: "Daily nutrition tracker",
	Long:  "Log what you eat and follow calories, protein, carbs and fat against your daily targets.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Journal database path (default: $XDG_DATA_HOME/gizi/journal.db)")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep entries in memory only; nothing is saved")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Day to work on, YYYY-MM-DD (default: today)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// session is the state shared by commands that touch the day's log.
type session struct {
	cfg     config.Config
	day     string
	tracker *tracker.Tracker
	journal *store.Journal // nil when ephemeral
}

// Close releases the journal, if any.
func (s *session) Close() {
	if s.journal != nil {
		_ = s.journal.Close()
	}
}

// openSession loads config, opens the journal and, when restore is set,
// restores the selected day. A journal that cannot be opened downgrades
// the session to ephemeral with a warning.
func openSession(ctx context.Context, restore bool) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return newSession(ctx, cfg, restore)
}

// newSession is openSession with an already loaded config.
func newSession(ctx context.Context, cfg config.Config, restore bool) (*session, error) {
	day, err := selectedDay()
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, day: day}
	var opts []tracker.Option
	if !flagEphemeral {
		path := flagDB
		if path == "" {
			path = cfg.JournalPath()
		}
		j, err := store.Open(path)
		if err != nil {
			warnf("Journal unavailable (%s), changes will not be kept\n", err)
		} else {
			s.journal = j
			opts = append(opts, tracker.WithJournal(j))
		}
	}

	s.tracker = tracker.New(cfg.ModelTargets(), opts...)
	if restore {
		if err := s.tracker.Open(ctx, day); err != nil {
			s.Close()
			return nil, err
		}
	}
	return s, nil
}

// selectedDay returns the --date value or today's key.
func selectedDay() (string, error) {
	if flagDate == "" {
		return store.DayKey(time.Now()), nil
	}
	t, err := time.Parse(store.DayFormat, flagDate)
	if err != nil {
		return "", fmt.Errorf("invalid --date %q: want YYYY-MM-DD", flagDate)
	}
	return store.DayKey(t), nil
}

// warnf prints a progress or warning line to stderr unless --quiet.
func warnf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format, args...)
}

// interactive reports whether stdin is a terminal that can drive a form.
func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
