package tui

import (
	"github.com/theirongolddev/gizi/internal/config"
	"github.com/theirongolddev/gizi/internal/tui/theme"
)

// saveSetupConfig writes the wizard answers and applies them to the
// running dashboard. Targets and theme apply even if the save fails.
func (a App) saveSetupConfig() error {
	cfg := loadConfigOrDefault()
	if err := a.setupVals.Apply(&cfg); err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)
	a.tracker.SetTargets(cfg.ModelTargets())
	return config.Save(cfg)
}
