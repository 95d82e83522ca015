package cmd

import (
	"fmt"

	"github.com/theirongolddev/gizi/internal/config"
	"github.com/theirongolddev/gizi/internal/tui"
	"github.com/theirongolddev/gizi/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// The dashboard restores the day itself, behind a spinner.
	s, err := newSession(cmd.Context(), tuiConfig(), false)
	if err != nil {
		return err
	}
	defer s.Close()

	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cmd.Context(), s.tracker, s.cfg.PresetSet(), s.day)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// tuiConfig loads config for the dashboard. An unreadable or invalid file
// is reported and replaced by the defaults.
func tuiConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		warnf("Config unusable (%s), using defaults\n", err)
		return config.DefaultConfig()
	}
	return cfg
}
