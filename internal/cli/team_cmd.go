package cli

import (
	"context"
	"fmt"

	"github.com/nexusart/artplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams and their members",
	}

	cmd.AddCommand(
		newTeamAddCmd(app),
		newTeamRenameCmd(app),
		newTeamRemoveCmd(app),
		newMemberCmd(app),
		newVacationCmd(app),
	)

	return cmd
}

func newTeamAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <plan> <name>",
		Short: "Add a team to a plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			team, err := app.Teams.Add(ctx, planID, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Added team %s %s\n", team.Name, formatter.TruncID(team.ID))
			return nil
		},
	}
}

func newTeamRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <plan> <team> <name>",
		Short: "Rename a team",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			if err := app.Teams.Rename(ctx, planID, teamID, args[2]); err != nil {
				return err
			}
			fmt.Printf("Renamed team to %s\n", args[2])
			return nil
		},
	}
}

func newTeamRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <plan> <team>",
		Short: "Remove a team, its estimates and its allocations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			if err := app.Teams.Remove(ctx, planID, teamID); err != nil {
				return err
			}
			fmt.Println("Team removed")
			return nil
		},
	}
}

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage team members",
	}

	add := &cobra.Command{
		Use:   "add <plan> <team> <name>",
		Short: "Add a member; each member adds working days to capacity",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			m, err := app.Teams.AddMember(ctx, planID, teamID, args[2])
			if err != nil {
				return err
			}
			fmt.Printf("Added member %s %s\n", m.Name, formatter.TruncID(m.ID))
			return nil
		},
	}

	rename := &cobra.Command{
		Use:   "rename <plan> <team> <member-id> <name>",
		Short: "Rename a member",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			if err := app.Teams.RenameMember(ctx, planID, teamID, args[2], args[3]); err != nil {
				return err
			}
			fmt.Printf("Renamed member to %s\n", args[3])
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <plan> <team> <member-id>",
		Short: "Remove a member",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			if err := app.Teams.RemoveMember(ctx, planID, teamID, args[2]); err != nil {
				return err
			}
			fmt.Println("Member removed")
			return nil
		},
	}

	cmd.AddCommand(add, rename, remove)
	return cmd
}

func newVacationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vacation",
		Short: "Manage member vacations",
	}

	var start, end string
	add := &cobra.Command{
		Use:   "add <plan> <team> <member-id>",
		Short: "Add a vacation; the member's capacity shrinks in that span",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			if end == "" {
				end = start
			}
			v, err := app.Teams.AddVacation(ctx, planID, teamID, args[2], start, end)
			if err != nil {
				return err
			}
			fmt.Printf("Added vacation %s %s\n", formatter.FormatRange(v.Range), formatter.TruncID(v.ID))
			return nil
		},
	}
	add.Flags().StringVar(&start, "start", "", "First day off (YYYY-MM-DD)")
	add.Flags().StringVar(&end, "end", "", "Last day off, inclusive (defaults to start)")

	remove := &cobra.Command{
		Use:   "remove <plan> <team> <member-id> <vacation-id>",
		Short: "Remove a vacation",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			if err := app.Teams.RemoveVacation(ctx, planID, teamID, args[2], args[3]); err != nil {
				return err
			}
			fmt.Println("Vacation removed")
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}
