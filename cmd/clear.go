package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/gizi/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every food logged on the day",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer s.Close()
	out := cmd.OutOrStdout()

	if s.tracker.Ledger().Len() == 0 {
		fmt.Fprintln(out, "  Nothing to clear.")
		return nil
	}

	if !flagYes {
		if !interactive() {
			return errors.New("refusing to clear without confirmation; pass --yes")
		}
		var confirm bool
		if err := tui.NewClearForm(&confirm).Run(); err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return err
		}
		if !confirm {
			fmt.Fprintln(out, "  Cancelled.")
			return nil
		}
	}

	if _, err := s.tracker.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing %s: %w", s.day, err)
	}
	fmt.Fprintln(out, "  ✓ All foods cleared")
	return nil
}
