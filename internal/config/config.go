// Package config loads and saves gizi settings (daily targets, theme,
// journal location, custom presets).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/theirongolddev/gizi/internal/model"
	"github.com/theirongolddev/gizi/internal/presets"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

var (
	// ErrInvalidTarget is returned when a daily target is negative or not
	// a finite number.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrInvalidPreset is returned when a custom preset cannot be logged.
	ErrInvalidPreset = errors.New("invalid preset")
)

// Config holds all gizi configuration.
type Config struct {
	Targets    TargetsConfig    `toml:"targets"`
	Appearance AppearanceConfig `toml:"appearance"`
	Store      StoreConfig      `toml:"store"`
	Presets    []PresetConfig   `toml:"presets,omitempty"`
}

// TargetsConfig holds the daily goals.
type TargetsConfig struct {
	Calories float64 `toml:"calories"`
	Protein  float64 `toml:"protein"`
	Carbs    float64 `toml:"carbs"`
	Fat      float64 `toml:"fat"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// StoreConfig holds journal settings.
type StoreConfig struct {
	Path string `toml:"path,omitempty"`
}

// PresetConfig is a user-defined common food. Nutrient values are per 100 g.
type PresetConfig struct {
	Slug     string  `toml:"slug"`
	Name     string  `toml:"name"`
	Portion  float64 `toml:"portion"`
	Calories float64 `toml:"kcal"`
	Protein  float64 `toml:"protein"`
	Carbs    float64 `toml:"carbs"`
	Fat      float64 `toml:"fat"`
}

// envOverrides mirrors the settings that may be overridden from the
// environment. Unset variables leave the seeded values alone.
type envOverrides struct {
	DBPath   string  `env:"DB_PATH"`
	Theme    string  `env:"THEME"`
	Calories float64 `env:"TARGET_CALORIES"`
	Protein  float64 `env:"TARGET_PROTEIN"`
	Carbs    float64 `env:"TARGET_CARBS"`
	Fat      float64 `env:"TARGET_FAT"`
}

const envPrefix = "GIZI_"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	t := model.DefaultTargets()
	return Config{
		Targets: TargetsConfig{
			Calories: t.Calories,
			Protein:  t.Protein,
			Carbs:    t.Carbs,
			Fat:      t.Fat,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gizi")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gizi")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the journal.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "gizi")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "gizi")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	o := envOverrides{
		DBPath:   cfg.Store.Path,
		Theme:    cfg.Appearance.Theme,
		Calories: cfg.Targets.Calories,
		Protein:  cfg.Targets.Protein,
		Carbs:    cfg.Targets.Carbs,
		Fat:      cfg.Targets.Fat,
	}
	if err := env.ParseWithOptions(&o, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	cfg.Store.Path = o.DBPath
	cfg.Appearance.Theme = o.Theme
	cfg.Targets = TargetsConfig{
		Calories: o.Calories,
		Protein:  o.Protein,
		Carbs:    o.Carbs,
		Fat:      o.Fat,
	}
	return nil
}

// Validate checks that every target is a finite, non-negative number and
// that custom presets carry a slug, a positive portion and valid nutrients.
func (c Config) Validate() error {
	t := c.ModelTargets()
	for _, n := range model.Nutrients {
		if v := n.Target(t); !validAmount(v) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidTarget, n, v)
		}
	}

	for i, p := range c.Presets {
		slug := presets.Normalize(p.Slug)
		if slug == "" {
			return fmt.Errorf("%w: presets[%d] has no slug", ErrInvalidPreset, i)
		}
		if !validAmount(p.Portion) || p.Portion == 0 {
			return fmt.Errorf("%w: %s portion = %v, want grams > 0", ErrInvalidPreset, slug, p.Portion)
		}
		for _, f := range []struct {
			label string
			v     float64
		}{
			{"kcal", p.Calories},
			{"protein", p.Protein},
			{"carbs", p.Carbs},
			{"fat", p.Fat},
		} {
			if !validAmount(f.v) {
				return fmt.Errorf("%w: %s %s = %v", ErrInvalidPreset, slug, f.label, f.v)
			}
		}
	}
	return nil
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// ModelTargets converts the configured goals to the domain type.
func (c Config) ModelTargets() model.Targets {
	return model.Targets{
		Calories: c.Targets.Calories,
		Protein:  c.Targets.Protein,
		Carbs:    c.Targets.Carbs,
		Fat:      c.Targets.Fat,
	}
}

// JournalPath returns the configured journal path or the default one.
func (c Config) JournalPath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return filepath.Join(DataDir(), "journal.db")
}

// PresetSet returns the built-in presets merged with the user's.
func (c Config) PresetSet() *presets.Set {
	if len(c.Presets) == 0 {
		return presets.Builtin()
	}
	overrides := make([]presets.Preset, 0, len(c.Presets))
	for _, p := range c.Presets {
		overrides = append(overrides, presets.Preset{
			Slug:    p.Slug,
			Name:    p.Name,
			Portion: p.Portion,
			Per100: model.Per100g{
				Calories: p.Calories,
				Protein:  p.Protein,
				Carbs:    p.Carbs,
				Fat:      p.Fat,
			},
		})
	}
	return presets.Builtin().Merge(overrides)
}
