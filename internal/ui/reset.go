package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/daygrid/internal/debuglog"
	"github.com/javiermolinar/daygrid/internal/plan"
)

// keyLister is implemented by repositories that can enumerate their keys.
type keyLister interface {
	Keys(ctx context.Context) ([]string, error)
}

func (a *App) resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all saved allocations",
		Long: `Delete the saved allocations and smallest unit. Every activity goes
back to zero hours.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			var stored []string
			if kl, ok := a.repo.(keyLister); ok {
				keys, err := kl.Keys(ctx)
				if err != nil {
					return err
				}
				if len(keys) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing saved.")
					return nil
				}
				stored = keys
			}

			if !yes && !promptYesNo("Delete all saved data?") {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted.")
				return nil
			}

			err := plan.ClearState(ctx, a.repo)
			debuglog.Reset(err)
			if err != nil {
				return err
			}

			if len(stored) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved data deleted (%s).\n", strings.Join(stored, ", "))
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Saved data deleted.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
