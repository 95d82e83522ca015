package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/gizi/internal/cli"
	"github.com/theirongolddev/gizi/internal/ledger"
	"github.com/theirongolddev/gizi/internal/presenter"
	"github.com/theirongolddev/gizi/internal/store"

	"github.com/spf13/cobra"
)

var flagHistoryDays int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Daily totals from the journal",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryDays, "days", "n", 14, "Number of logged days to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if flagEphemeral {
		return errors.New("history reads the journal; drop --ephemeral")
	}
	s, err := openSession(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer s.Close()
	if s.journal == nil {
		return errors.New("journal unavailable")
	}

	days, err := s.journal.Days(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing days: %w", err)
	}
	if len(days) == 0 {
		fmt.Println("\n  No days logged yet.")
		return nil
	}
	if flagHistoryDays > 0 && len(days) > flagHistoryDays {
		days = days[:flagHistoryDays]
	}

	targets := s.cfg.ModelTargets()
	rows := make([][]string, 0, len(days))
	for _, day := range days {
		entries, err := s.journal.LoadDay(cmd.Context(), day)
		if err != nil {
			return err
		}
		l := ledger.New()
		l.Restore(entries)
		t := l.Totals()

		weekday := ""
		if d, err := time.Parse(store.DayFormat, day); err == nil {
			weekday = d.Weekday().String()[:3]
		}
		rows = append(rows, []string{
			day,
			weekday,
			cli.FormatNumber(int64(len(entries))),
			cli.FormatKcal(t.Calories),
			cli.FormatPercent(presenter.ProgressPercent(t.Calories, targets.Calories)),
			cli.FormatGrams(t.Protein),
			cli.FormatGrams(t.Carbs),
			cli.FormatGrams(t.Fat),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HISTORY  Last %d logged days", len(days))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Foods", "Calories", "Target", "Protein", "Carbs", "Fat"},
		Rows:    rows,
	}))
	return nil
}
