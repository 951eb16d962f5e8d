package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/daygrid/internal/plan"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Plan.Activities) != 7 {
		t.Errorf("expected 7 activities, got %d", len(cfg.Plan.Activities))
	}
	if cfg.Plan.Activities[0] != "Sleep" {
		t.Errorf("expected Sleep first, got %s", cfg.Plan.Activities[0])
	}
	if cfg.Plan.SmallestUnit != 60 {
		t.Errorf("expected smallest_unit 60, got %d", cfg.Plan.SmallestUnit)
	}
	if cfg.Plan.Colors != "random" {
		t.Errorf("expected colors random, got %s", cfg.Plan.Colors)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDefault_DoesNotAliasPlanDefaults(t *testing.T) {
	cfg := Default()
	cfg.Plan.Activities[0] = "Nap"
	if plan.DefaultActivities[0] != "Sleep" {
		t.Error("Default() shares the activity slice with plan.DefaultActivities")
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Plan.SmallestUnit != 60 {
		t.Errorf("expected default smallest_unit, got %d", cfg.Plan.SmallestUnit)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[plan]
activities = ["Sleep", "Sports", "Music"]
smallest_unit = 15
colors = "stable"

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Plan.Activities) != 3 || cfg.Plan.Activities[2] != "Music" {
		t.Errorf("expected [Sleep Sports Music], got %v", cfg.Plan.Activities)
	}
	if cfg.Granularity() != plan.Unit15 {
		t.Errorf("expected 15m, got %v", cfg.Granularity())
	}
	if cfg.ColorMode() != plan.ColorsStable {
		t.Errorf("expected stable colors, got %s", cfg.ColorMode())
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[plan\nactivities = 3"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[plan]
smallest_unit = 30

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("DAYGRID_ACTIVITIES", "Read, Write ,Run")
	t.Setenv("DAYGRID_COLORS", "stable")
	t.Setenv("DAYGRID_UI_THEME", "frappe")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Plan.Activities) != 3 || cfg.Plan.Activities[1] != "Write" {
		t.Errorf("expected activities from env, got %v", cfg.Plan.Activities)
	}
	// File value should be kept when no env override
	if cfg.Plan.SmallestUnit != 30 {
		t.Errorf("expected smallest_unit 30 from file, got %d", cfg.Plan.SmallestUnit)
	}
	if cfg.Plan.Colors != "stable" {
		t.Errorf("expected colors stable from env, got %s", cfg.Plan.Colors)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe from env, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_EnvSmallestUnit(t *testing.T) {
	t.Setenv("DAYGRID_SMALLEST_UNIT", "15m")
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Plan.SmallestUnit != 15 {
		t.Errorf("expected 15, got %d", cfg.Plan.SmallestUnit)
	}

	t.Setenv("DAYGRID_SMALLEST_UNIT", "quarter")
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for non-numeric DAYGRID_SMALLEST_UNIT")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no activities", mutate: func(c *Config) { c.Plan.Activities = nil }},
		{name: "blank activity", mutate: func(c *Config) { c.Plan.Activities = []string{"Sleep", ""} }},
		{name: "duplicate activity", mutate: func(c *Config) { c.Plan.Activities = []string{"Sleep", "sleep"} }},
		{name: "too many activities", mutate: func(c *Config) {
			c.Plan.Activities = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m"}
		}},
		{name: "bad unit", mutate: func(c *Config) { c.Plan.SmallestUnit = 45 }},
		{name: "bad color mode", mutate: func(c *Config) { c.Plan.Colors = "rainbow" }},
		{name: "empty db path", mutate: func(c *Config) { c.Storage.DBPath = "" }},
		{name: "unknown theme", mutate: func(c *Config) { c.UI.Theme = "dracula" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" a, ,b ,c,")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("SplitList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SplitList[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Plan.Activities = []string{"Sleep", "Work"}
	cfg.Plan.SmallestUnit = 30
	cfg.UI.Theme = "light"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if len(loaded.Plan.Activities) != 2 || loaded.Plan.Activities[1] != "Work" {
		t.Errorf("expected [Sleep Work], got %v", loaded.Plan.Activities)
	}
	if loaded.Plan.SmallestUnit != 30 {
		t.Errorf("expected smallest_unit 30, got %d", loaded.Plan.SmallestUnit)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("expected theme light, got %s", loaded.UI.Theme)
	}
}
