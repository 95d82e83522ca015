package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/gizi/internal/ledger"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"remove"},
	Short:   "Remove a logged food by ID or ID prefix",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer s.Close()
	out := cmd.OutOrStdout()

	e, err := s.tracker.Ledger().Resolve(args[0])
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		// Removing an absent entry is a no-op.
		fmt.Fprintf(out, "  No entry matches %q, nothing removed\n", args[0])
		return nil
	case err != nil:
		return err
	}

	if _, _, err := s.tracker.Remove(cmd.Context(), e.ID); err != nil {
		return fmt.Errorf("removing %s: %w", e.Name, err)
	}
	fmt.Fprintf(out, "  ✓ %s removed\n", e.Name)
	return nil
}
