package ui

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/daygrid/internal/plan"
)

func (a *App) statusCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show allocated and free hours",
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyColorMode(noColor)

			ctx := context.Background()
			store, err := a.loadStore(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			PrintLegend(out, store)
			_, _ = fmt.Fprintln(out)
			PrintSummary(out, store.Summary())

			saved, ok, err := a.repo.UpdatedAt(ctx, plan.StorageKey)
			if err != nil {
				return err
			}
			if ok {
				_, _ = fmt.Fprintln(out, formatMuted("Last saved "+humanize.Time(saved)))
			} else {
				_, _ = fmt.Fprintln(out, formatMuted("Nothing saved yet"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
