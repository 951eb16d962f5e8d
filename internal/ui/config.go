package ui

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/daygrid/internal/config"
	"github.com/javiermolinar/daygrid/internal/plan"
	"github.com/javiermolinar/daygrid/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  daygrid config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(cfg)

	// Ask if user wants to edit
	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(os.Stdin)

	cfg.Plan.Activities = promptSlice(reader, "Activities in fill order (comma-separated)", cfg.Plan.Activities)
	cfg.Plan.SmallestUnit = promptUnit(reader, cfg.Plan.SmallestUnit)
	cfg.Plan.Colors = promptChoice(reader, "Colors", cfg.Plan.Colors, []string{string(plan.ColorsRandom), string(plan.ColorsStable)})
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptChoice(reader, "UI theme", cfg.UI.Theme, theme.Available())

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[plan]")
	fmt.Printf("  activities    = %s\n", strings.Join(cfg.Plan.Activities, ", "))
	fmt.Printf("  smallest_unit = %d\n", cfg.Plan.SmallestUnit)
	fmt.Printf("  colors        = %s\n", cfg.Plan.Colors)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path       = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme         = %s\n", cfg.UI.Theme)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptSlice(reader *bufio.Reader, label string, current []string) []string {
	currentStr := strings.Join(current, ", ")
	fmt.Printf("  %s [%s]: ", label, currentStr)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return config.SplitList(input)
}

func promptUnit(reader *bufio.Reader, current int) int {
	for {
		value := promptValue(reader, "Smallest unit in minutes (15, 30, 60)", strconv.Itoa(current))
		g, err := plan.ParseGranularityString(value)
		if err == nil {
			return int(g)
		}
		fmt.Printf("  %v\n", err)
	}
}

func promptChoice(reader *bufio.Reader, label, current string, choices []string) string {
	options := strings.Join(choices, ", ")
	label = fmt.Sprintf("%s (%s)", label, options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if slices.Contains(choices, value) {
			return value
		}
		fmt.Printf("  Invalid value %q. Available: %s\n", value, options)
	}
}
