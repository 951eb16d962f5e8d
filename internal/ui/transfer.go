package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/daygrid/internal/debuglog"
	"github.com/javiermolinar/daygrid/internal/plan"
)

func (a *App) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export the plan to a JSON file",
		Long: `Write the current allocations and smallest unit to a JSON file.

The default file is ` + plan.ExportFileName + ` in the current directory.
Use "-" to write to stdout.

Example:
  daygrid export
  daygrid export ~/backup/day.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, err := a.loadStore(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			target := plan.ExportFileName
			if len(args) == 1 {
				target = args[0]
			}

			if target == "-" {
				return plan.EncodeExport(cmd.OutOrStdout(), store.Snapshot(), store.Granularity())
			}

			path, err := resolvePath(target)
			if err != nil {
				return err
			}
			err = ExportFile(path, store)
			debuglog.Export(path, err)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}
}

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Replace the plan with one from a JSON file",
		Long: `Replace every allocation and the smallest unit with the contents of
an exported JSON file. Activities missing from the file become zero;
unknown activities make the import fail and nothing changes.

Example:
  daygrid import ` + plan.ExportFileName,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, err := a.loadStore(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}

			warn, err := ImportFile(path, store)
			debuglog.Import(path, err)
			if err != nil {
				return err
			}

			if err := a.persist(ctx, store); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%s h, %s)\n",
				path, plan.FormatHours(store.TotalAllocated()), store.Granularity())
			printOverAllocation(cmd.ErrOrStderr(), warn)
			return nil
		},
	}
}

// ExportFile writes the store's export document to path.
func ExportFile(path string, store *plan.Store) error {
	return plan.WriteExportFile(path, store.Snapshot(), store.Granularity())
}

// ImportFile replaces the store's allocations and unit with the document
// at path. On error the store is unchanged.
func ImportFile(path string, store *plan.Store) (*plan.OverAllocationWarning, error) {
	snap, g, err := plan.ReadExportFile(path, store.Activities())
	if err != nil {
		return nil, err
	}

	warn, err := store.Replace(snap)
	if err != nil {
		return nil, &plan.DeserializationError{Source: path, Err: err}
	}
	if err := store.SetGranularity(g); err != nil {
		return nil, err
	}
	return warn, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
