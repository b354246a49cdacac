package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nexusart/artplan/internal/cli/formatter"
	"github.com/nexusart/artplan/internal/domain"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage activities and their estimates",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityUpdateCmd(app),
		newActivityRemoveCmd(app),
		newActivityIncludeCmd(app, true),
		newActivityIncludeCmd(app, false),
		newEstimateCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <plan> <title>",
		Short: "Add an activity to a plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Activities.Add(ctx, planID, args[1], description)
			if err != nil {
				return err
			}
			fmt.Printf("Added activity %s %s\n", a.Title, formatter.TruncID(a.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	return cmd
}

func newActivityUpdateCmd(app *App) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "update <plan> <activity>",
		Short: "Change an activity's title or description",
		Args:  cobra.ExactArgs(2),
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

			p, err := app.Plans.GetByID(ctx, planID)
			if err != nil {
				return err
			}
			for _, a := range p.Activities {
				if a.ID == activityID {
					if title == "" {
						title = a.Title
					}
					if !cmd.Flags().Changed("description") {
						description = a.Description
					}
					break
				}
			}

			if err := app.Activities.Update(ctx, planID, activityID, title, description); err != nil {
				return err
			}
			fmt.Println("Activity updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	return cmd
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <plan> <activity>",
		Short: "Remove an activity and its allocations",
		Args:  cobra.ExactArgs(2),
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
			if err := app.Activities.Remove(ctx, planID, activityID); err != nil {
				return err
			}
			fmt.Println("Activity removed")
			return nil
		},
	}
}

func newActivityIncludeCmd(app *App, include bool) *cobra.Command {
	use, short := "include", "Count an activity in capacity and tracking"
	if !include {
		use, short = "exclude", "Leave an activity out of capacity and tracking"
	}

	return &cobra.Command{
		Use:   use + " <plan> <activity>",
		Short: short,
		Args:  cobra.ExactArgs(2),
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
			if err := app.Activities.SetIncluded(ctx, planID, activityID, include); err != nil {
				return err
			}
			if include {
				fmt.Println("Activity included")
			} else {
				fmt.Println("Activity excluded")
			}
			return nil
		},
	}
}

func newEstimateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Manage per-team estimates",
	}

	set := &cobra.Command{
		Use:   "set <plan> <activity> <team> <days>",
		Short: "Set a team's estimate in working days; 0 removes it",
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
			effort, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid effort %q: %w", args[3], err)
			}
			if err := app.Activities.SetEstimate(ctx, planID, activityID, teamID, effort); err != nil {
				return err
			}
			if effort == 0 {
				fmt.Println("Estimate removed")
			} else {
				fmt.Printf("Estimate set to %s\n", formatter.FormatDays(effort))
			}
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status <plan> <activity> <team> <todo|in_progress|done>",
		Short: "Move a team's estimate through its workflow",
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
			st := domain.EstimateStatus(args[3])
			if err := app.Activities.SetEstimateStatus(ctx, planID, activityID, teamID, st); err != nil {
				return err
			}
			fmt.Printf("Estimate is now %s\n", formatter.EstimateStatusPill(st))
			return nil
		},
	}

	cmd.AddCommand(set, status)
	return cmd
}
