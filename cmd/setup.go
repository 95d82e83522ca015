package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/gizi/internal/config"
	"github.com/theirongolddev/gizi/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set daily targets and theme",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	if !interactive() {
		return fmt.Errorf("setup needs a terminal; edit %s instead", config.Path())
	}

	// Load existing config or defaults
	cfg, err := config.Load()
	if err != nil {
		warnf("Ignoring unreadable config: %s\n", err)
		cfg = config.DefaultConfig()
	}

	in := tui.NewSetupInput(cfg)
	if err := tui.NewSetupForm(in).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Cancelled, nothing saved.")
			return nil
		}
		return err
	}
	if err := in.Apply(&cfg); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `gizi setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
