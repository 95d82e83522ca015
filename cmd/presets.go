package cmd

import (
	"fmt"

	"github.com/theirongolddev/gizi/internal/cli"
	"github.com/theirongolddev/gizi/internal/config"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Common foods available to `add --preset`",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	all := cfg.PresetSet().All()
	rows := make([][]string, 0, len(all))
	for _, p := range all {
		rows = append(rows, []string{
			p.Slug,
			p.Name,
			cli.FormatGrams(p.Portion),
			cli.FormatKcal(p.Per100.Calories),
			cli.FormatGrams(p.Per100.Protein),
			cli.FormatGrams(p.Per100.Carbs),
			cli.FormatGrams(p.Per100.Fat),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("COMMON FOODS  per 100 g"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Preset", "Food", "Portion", "Calories", "Protein", "Carbs", "Fat"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Add your own with [[presets]] in %s\n", config.Path())
	return nil
}
