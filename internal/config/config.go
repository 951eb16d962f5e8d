// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/daygrid/internal/plan"
	"github.com/javiermolinar/daygrid/internal/tui/theme"
)

// maxActivities keeps the activity panel and legend readable.
const maxActivities = 12

// Config holds the application configuration.
type Config struct {
	Plan    PlanConfig    `toml:"plan"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// PlanConfig holds the day layout settings.
type PlanConfig struct {
	Activities   []string `toml:"activities"`    // declared order decides cell ownership
	SmallestUnit int      `toml:"smallest_unit"` // 15, 30 or 60 minutes
	Colors       string   `toml:"colors"`        // "random" or "stable"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Plan: PlanConfig{
			Activities:   append([]string(nil), plan.DefaultActivities...),
			SmallestUnit: int(plan.DefaultGranularity),
			Colors:       string(plan.ColorsRandom),
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "daygrid.db"
	}
	return filepath.Join(home, ".local", "share", "daygrid", "daygrid.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "daygrid", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DAYGRID_ACTIVITIES"); v != "" {
		cfg.Plan.Activities = SplitList(v)
	}
	if v := os.Getenv("DAYGRID_SMALLEST_UNIT"); v != "" {
		unit, err := strconv.Atoi(strings.TrimSuffix(v, "m"))
		if err != nil {
			return fmt.Errorf("DAYGRID_SMALLEST_UNIT: %w", err)
		}
		cfg.Plan.SmallestUnit = unit
	}
	if v := os.Getenv("DAYGRID_COLORS"); v != "" {
		cfg.Plan.Colors = v
	}
	if v := os.Getenv("DAYGRID_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("DAYGRID_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// SplitList splits a comma-separated list, trimming blanks.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Plan.Activities) == 0 {
		return errors.New("at least one activity must be configured")
	}
	if len(c.Plan.Activities) > maxActivities {
		return fmt.Errorf("at most %d activities are supported, got %d", maxActivities, len(c.Plan.Activities))
	}
	seen := make(map[string]bool, len(c.Plan.Activities))
	for _, name := range c.Plan.Activities {
		if strings.TrimSpace(name) == "" {
			return errors.New("activity names cannot be empty")
		}
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("duplicate activity: %s", name)
		}
		seen[key] = true
	}
	if _, err := plan.ParseGranularity(c.Plan.SmallestUnit); err != nil {
		return fmt.Errorf("smallest_unit: %w", err)
	}
	if !plan.ColorMode(c.Plan.Colors).Valid() {
		return fmt.Errorf("colors must be %q or %q, got %q", plan.ColorsRandom, plan.ColorsStable, c.Plan.Colors)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	return nil
}

// Granularity returns the configured smallest unit.
// Validate guarantees it is one of the supported values.
func (c *Config) Granularity() plan.Granularity {
	return plan.Granularity(c.Plan.SmallestUnit)
}

// ColorMode returns the configured color mode.
func (c *Config) ColorMode() plan.ColorMode {
	return plan.ColorMode(c.Plan.Colors)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
