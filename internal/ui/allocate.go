package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/daygrid/internal/debuglog"
	"github.com/javiermolinar/daygrid/internal/plan"
)

func (a *App) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <activity> <hours>",
		Short: "Set the hours allocated to an activity",
		Long: `Set the hours allocated to an activity. Values are clamped to 0-24.

The day may end up with more than 24 hours allocated; a warning is printed
and the grid simply runs out of cells.

Example:
  daygrid set sleep 8
  daygrid set gym 1.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "h"), 64)
			if err != nil {
				return fmt.Errorf("invalid hours %q: %w", args[1], plan.ErrInvalidHours)
			}

			ctx := context.Background()
			store, err := a.loadStore(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			name, err := resolveActivity(store, args[0])
			if err != nil {
				return err
			}

			before := store.Hours(name)
			warn, err := store.SetAllocation(name, hours)
			if err != nil {
				return err
			}
			debuglog.AllocationChange(name, before, store.Hours(name), "set")

			if err := a.persist(ctx, store); err != nil {
				return err
			}

			printAllocation(cmd.OutOrStdout(), store, name)
			printOverAllocation(cmd.ErrOrStderr(), warn)
			return nil
		},
	}
}

func (a *App) incCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "inc <activity>",
		Short: "Add one smallest unit to an activity",
		Long: `Add one smallest unit (15, 30 or 60 minutes) to an activity.

Increments stop once all 24 hours are allocated.

Example:
  daygrid inc gym
  daygrid inc sleep -n 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.step(cmd, args[0], count, true)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of units to add")
	return cmd
}

func (a *App) decCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "dec <activity>",
		Short: "Remove one smallest unit from an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.step(cmd, args[0], count, false)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of units to remove")
	return cmd
}

// step applies count increments or decrements. Hitting a full day after at
// least one step is reported, not failed.
func (a *App) step(cmd *cobra.Command, activity string, count int, up bool) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	ctx := context.Background()
	store, err := a.loadStore(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	name, err := resolveActivity(store, activity)
	if err != nil {
		return err
	}

	reason := "decrement"
	apply := store.Decrement
	if up {
		reason = "increment"
		apply = store.Increment
	}

	before := store.Hours(name)
	applied := 0
	for range count {
		if err := apply(name); err != nil {
			if errors.Is(err, plan.ErrDayFull) && applied > 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s day is full after %d of %d\n",
					formatWarning("note:"), applied, count)
				break
			}
			return err
		}
		applied++
	}
	debuglog.AllocationChange(name, before, store.Hours(name), reason)

	if err := a.persist(ctx, store); err != nil {
		return err
	}

	printAllocation(cmd.OutOrStdout(), store, name)
	return nil
}

func (a *App) unitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unit [15|30|60]",
		Short: "Show or change the smallest unit",
		Long: `Show or change the smallest unit of time, in minutes.

Changing the unit redraws the grid; allocated hours are kept as they are.

Example:
  daygrid unit
  daygrid unit 15`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, err := a.loadStore(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				_, _ = fmt.Fprintf(out, "Smallest unit: %s (%d cells)\n", store.Granularity(), store.Granularity().CellsPerDay())
				return nil
			}

			g, err := plan.ParseGranularityString(args[0])
			if err != nil {
				return err
			}

			before := store.Granularity()
			if err := store.SetGranularity(g); err != nil {
				return err
			}
			debuglog.GranularityChange(int(before), int(g))

			if err := a.persist(ctx, store); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, "Smallest unit: %s (%d cells)\n", g, g.CellsPerDay())
			return nil
		},
	}
}

func resolveActivity(store *plan.Store, name string) (string, error) {
	canonical, ok := store.Lookup(strings.TrimSpace(name))
	if !ok {
		return "", fmt.Errorf("%w: %q (known: %s)", plan.ErrUnknownActivity, name, strings.Join(store.Activities(), ", "))
	}
	return canonical, nil
}

func printAllocation(w io.Writer, store *plan.Store, name string) {
	sum := store.Summary()
	_, _ = fmt.Fprintf(w, "%s = %s h (%d × %s)\n", name, plan.FormatHours(store.Hours(name)), store.Units(name), store.Granularity())
	if line := sum.FreeLine(); line != "" {
		_, _ = fmt.Fprintln(w, line)
	}
	if sum.Full {
		_, _ = fmt.Fprintln(w, formatFull(sum.Message))
	}
}
