package cli

import (
	"context"
	"fmt"

	"github.com/nexusart/artplan/internal/cli/formatter"
	"github.com/nexusart/artplan/internal/scheduler"
	"github.com/spf13/cobra"
)

func newTrackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Compare the plan against its frozen baseline",
	}

	report := &cobra.Command{
		Use:   "report <plan>",
		Short: "Show per-activity variance against the baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			r, err := app.Track.Report(ctx, planID)
			if err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, planID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderTrackReport(r, scheduler.GenerateSprints(p.Config)))
			return nil
		},
	}

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show progress for every plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Track.Summaries(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderPlanList(summaries))
			return nil
		},
	}

	cmd.AddCommand(report, summary)
	return cmd
}
