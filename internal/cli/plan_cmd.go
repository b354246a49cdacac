package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/nexusart/artplan/internal/cli/formatter"
	"github.com/nexusart/artplan/internal/domain"
	"github.com/nexusart/artplan/internal/scheduler"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage program increment plans",
	}

	cmd.AddCommand(
		newPlanAddCmd(app),
		newPlanListCmd(app),
		newPlanInspectCmd(app),
		newPlanRenameCmd(app),
		newPlanRemoveCmd(app),
		newPlanStatusCmd(app),
		newPlanConfigCmd(app),
		newPlanHolidayCmd(app),
	)

	return cmd
}

func newPlanAddCmd(app *App) *cobra.Command {
	var name, start string
	var sprints, duration int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("interactive mode needs a terminal")
				}
				return runPlanWizard(ctx, app)
			}

			startDate, err := time.Parse(domain.DateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			p, err := app.Plans.Create(ctx, name, startDate, sprints, duration)
			if err != nil {
				return err
			}

			fmt.Printf("Created plan %s %s\n", p.Name, formatter.TruncID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name")
	cmd.Flags().StringVar(&start, "start", "", "First sprint start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&sprints, "sprints", 0, "Number of sprints (default 5)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Sprint length in calendar days (default 14)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Create through a guided form")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all plans with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Track.Summaries(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderPlanList(summaries))
			return nil
		},
	}
}

func newPlanInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <plan>",
		Short: "Show a plan's schedule, teams and activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderPlanDetails(p, scheduler.GenerateSprints(p.Config)))
			return nil
		},
	}
}

func newPlanRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <plan> <name>",
		Short: "Rename a plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.Rename(ctx, id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Renamed plan to %s\n", p.Name)
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <plan>",
		Short: "Delete a plan and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if !force {
				p, err := app.Plans.GetByID(ctx, id)
				if err != nil {
					return err
				}
				if p.Status == domain.PlanActive {
					return fmt.Errorf("plan %q is active; close it first or use --force", p.Name)
				}
			}
			if err := app.Plans.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Plan removed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if the plan is active")
	return cmd
}

func newPlanStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <plan> <draft|active|closed>",
		Short: "Move a plan along its lifecycle",
		Long: `Move a plan along its lifecycle: draft, active, closed.

Activating a draft freezes the current allocations as the baseline that
"track" compares against. The move is one-way.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if !domain.ValidPlanStatuses[args[1]] {
				return fmt.Errorf("unknown status %q", args[1])
			}
			p, err := app.Plans.SetStatus(ctx, id, domain.PlanStatus(args[1]))
			if err != nil {
				return err
			}
			fmt.Printf("Plan %s is now %s\n", p.Name, formatter.PlanStatusPill(p.Status))
			return nil
		},
	}
}

func newPlanConfigCmd(app *App) *cobra.Command {
	var start string
	var sprints, duration int

	cmd := &cobra.Command{
		Use:   "config <plan>",
		Short: "Change the sprint generation rule",
		Long: `Change the plan's start date, sprint count or sprint length.

Allocations in sprints that no longer exist after the change are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}

			cfg := p.Config
			if start != "" {
				if cfg.StartDate, err = time.Parse(domain.DateLayout, start); err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
			}
			if sprints > 0 {
				cfg.NumberOfSprints = sprints
			}
			if duration > 0 {
				cfg.SprintDurationDays = duration
			}

			updated, err := app.Plans.UpdateConfig(ctx, id, cfg)
			if err != nil {
				return err
			}
			fmt.Printf("Plan now runs %d sprints of %d days from %s\n",
				updated.Config.NumberOfSprints,
				updated.Config.SprintDurationDays,
				formatter.ShortDate(updated.Config.StartDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First sprint start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&sprints, "sprints", 0, "Number of sprints")
	cmd.Flags().IntVar(&duration, "duration", 0, "Sprint length in calendar days")

	return cmd
}

func newPlanHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage organization-wide holidays",
	}

	var name, start, end string
	add := &cobra.Command{
		Use:   "add <plan>",
		Short: "Add a holiday that reduces every team's capacity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if end == "" {
				end = start
			}
			if _, err := app.Plans.AddHoliday(ctx, id, name, start, end); err != nil {
				return err
			}
			fmt.Printf("Added holiday %s\n", name)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "Holiday name")
	add.Flags().StringVar(&start, "start", "", "First day (YYYY-MM-DD)")
	add.Flags().StringVar(&end, "end", "", "Last day, inclusive (defaults to start)")

	remove := &cobra.Command{
		Use:   "remove <plan> <holiday-id>",
		Short: "Remove a holiday",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Plans.RemoveHoliday(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Println("Holiday removed")
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}
