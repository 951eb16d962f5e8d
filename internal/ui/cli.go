package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/daygrid/internal/config"
	"github.com/javiermolinar/daygrid/internal/db"
	"github.com/javiermolinar/daygrid/internal/debuglog"
	"github.com/javiermolinar/daygrid/internal/plan"
	"github.com/javiermolinar/daygrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   plan.Repository
	owned  bool // repo was opened by the app and must be closed
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application. A nil repo is opened lazily from
// the configured database path.
func NewApp(repo plan.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "daygrid",
		Short: "Plan your 24 hours as a grid of colored cells",
		Long: `Daygrid splits your day into 15, 30 or 60 minute cells and lets you
allocate hours to a fixed list of activities. Each activity gets a pastel
color and fills the grid in the order the activities are declared.

Run without arguments to open the interactive grid.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return debuglog.Init(a.debug)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.Run(a.repo, a.config)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+debuglog.DefaultPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.statusCmd())
	a.root.AddCommand(a.setCmd())
	a.root.AddCommand(a.incCmd())
	a.root.AddCommand(a.decCmd())
	a.root.AddCommand(a.unitCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.resetCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "daygrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database opened by the app and ends the debug log.
func (a *App) Close() error {
	debuglog.Close()
	if a.repo == nil || !a.owned {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	return err
}

// ensureRepo opens the configured database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	repo, err := db.New(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	a.owned = true
	return nil
}

// loadStore builds the allocation store and restores the saved state.
// Unreadable saved data is reported on errOut and the day starts empty.
func (a *App) loadStore(ctx context.Context, errOut io.Writer) (*plan.Store, error) {
	if err := a.ensureRepo(); err != nil {
		return nil, err
	}

	store, err := plan.NewStore(
		a.config.Plan.Activities,
		plan.WithColorMode(a.config.ColorMode()),
		plan.WithGranularity(a.config.Granularity()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating plan: %w", err)
	}

	state, err := plan.LoadState(ctx, a.repo, store.Activities())
	if err != nil {
		return nil, err
	}
	if state.Notice != nil {
		debuglog.LoadFallback(state.Notice)
		_, _ = fmt.Fprintf(errOut, "%s saved data could not be read, starting from an empty day: %v\n",
			formatWarning("warning:"), state.Notice)
	}

	warn, err := store.Apply(state)
	if err != nil {
		return nil, fmt.Errorf("restoring saved data: %w", err)
	}
	printOverAllocation(errOut, warn)

	return store, nil
}

// persist saves the store and records the attempt in the debug log.
func (a *App) persist(ctx context.Context, store *plan.Store) error {
	err := plan.SaveState(ctx, a.repo, store.Snapshot(), store.Granularity())
	debuglog.Persist(store.TotalAllocated(), int(store.Granularity()), err)
	return err
}

func printOverAllocation(w io.Writer, warn *plan.OverAllocationWarning) {
	if warn == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "%s %v\n", formatWarning("warning:"), warn)
}
