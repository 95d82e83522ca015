package cmd

import (
	"fmt"

	"github.com/theirongolddev/gizi/internal/cli"
	"github.com/theirongolddev/gizi/internal/config"
	"github.com/theirongolddev/gizi/internal/model"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Targets]")
	targets := cfg.ModelTargets()
	for _, n := range model.Nutrients {
		fmt.Printf("    %-9s %s\n", n.Label()+":", cli.FormatAmount(n.Target(targets), n.Unit()))
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Store]")
	switch {
	case flagEphemeral:
		fmt.Println("    Journal: disabled (--ephemeral)")
	case flagDB != "":
		fmt.Printf("    Journal: %s (--db)\n", flagDB)
	default:
		fmt.Printf("    Journal: %s\n", cfg.JournalPath())
	}
	fmt.Println()

	fmt.Println("  [Presets]")
	if len(cfg.Presets) == 0 {
		fmt.Println("    Custom presets: none")
	} else {
		fmt.Printf("    Custom presets: %d\n", len(cfg.Presets))
	}
	fmt.Println()

	fmt.Println("  Environment overrides use the GIZI_ prefix (GIZI_THEME, GIZI_DB_PATH, GIZI_TARGET_CALORIES, ...).")
	fmt.Println("  Run `gizi setup` to reconfigure.")
	return nil
}
