package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nexusart/artplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAllocCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alloc",
		Short: "Manage sprint allocations",
	}

	cmd.AddCommand(
		newAllocSetCmd(app),
		newAllocAddCmd(app),
		newAllocUpdateCmd(app),
		newAllocClearCmd(app),
		newAllocRemoveCmd(app),
	)

	return cmd
}

func newAllocAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <plan> <activity> <team> <sprint> <days>",
		Short: "Record an additional allocation without touching existing ones",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			activityID, err := resolveActivityID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, planID, args[2])
			if err != nil {
				return err
			}
			effort, err := strconv.ParseFloat(args[4], 64)
			if err != nil {
				return fmt.Errorf("invalid effort %q: %w", args[4], err)
			}
			a, err := app.Allocations.Allocate(ctx, planID, activityID, teamID, args[3], effort)
			if err != nil {
				return err
			}
			fmt.Printf("Allocated %s to %s %s\n", formatter.FormatDays(a.Effort), args[3], formatter.TruncID(a.ID))
			return nil
		},
	}
}

func newAllocUpdateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "update <plan> <allocation-id> <days>",
		Short: "Change an allocation's effort",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			effort, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid effort %q: %w", args[2], err)
			}
			if err := app.Allocations.Update(ctx, planID, args[1], effort); err != nil {
				return err
			}
			fmt.Printf("Allocation set to %s\n", formatter.FormatDays(effort))
			return nil
		},
	}
}

func newAllocSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <plan> <activity> <team> <sprint> <days>",
		Short: "Allocate working days to one board cell; 0 clears it",
		Long: `Allocate working days for an activity, team and sprint.

A cell holds at most one allocation. Setting a cell that is already
filled overwrites it, and setting 0 clears it.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			activityID, err := resolveActivityID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, planID, args[2])
			if err != nil {
				return err
			}
			effort, err := strconv.ParseFloat(args[4], 64)
			if err != nil {
				return fmt.Errorf("invalid effort %q: %w", args[4], err)
			}
			if err := app.Allocations.Set(ctx, planID, activityID, teamID, args[3], effort); err != nil {
				return err
			}
			if effort == 0 {
				fmt.Println("Allocation cleared")
			} else {
				fmt.Printf("Allocated %s to %s\n", formatter.FormatDays(effort), args[3])
			}
			return nil
		},
	}
}

func newAllocClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <plan> <activity> <team> <sprint>",
		Short: "Clear one board cell",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			activityID, err := resolveActivityID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, planID, args[2])
			if err != nil {
				return err
			}
			if err := app.Allocations.Set(ctx, planID, activityID, teamID, args[3], 0); err != nil {
				return err
			}
			fmt.Println("Allocation cleared")
			return nil
		},
	}
}

func newAllocRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <plan> <allocation-id>",
		Short: "Remove an allocation by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Allocations.Remove(ctx, planID, args[1]); err != nil {
				return err
			}
			fmt.Println("Allocation removed")
			return nil
		},
	}
}
