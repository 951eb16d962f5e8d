package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool
	var width int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the day grid",
		Long: `Print the day as a grid of cells at the current smallest unit.

Cells are filled in the order the activities are declared. Empty cells
are unallocated time.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyColorMode(noColor)

			store, err := a.loadStore(context.Background(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if width <= 0 {
				width = termWidth()
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s  %s\n\n",
				formatHeader("Day grid"),
				formatMuted(fmt.Sprintf("%d cells of %s", store.Granularity().CellsPerDay(), store.Granularity())))
			PrintGrid(out, store, width)
			_, _ = fmt.Fprintln(out)
			PrintLegend(out, store)
			_, _ = fmt.Fprintln(out)
			PrintSummary(out, store.Summary())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Grid width in columns (default: terminal width)")
	return cmd
}
