package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nexusart/artplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// newPriorityCmd shows the sizing view: whole-increment load per team next to
// the backlog, so over-committed teams are visible before sprints are filled.
func newPriorityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "priority <plan>",
		Short: "Weigh the backlog against total team capacity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}

			stats, err := app.Board.TeamStats(ctx, planID)
			if err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, planID)
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(formatter.Header("pi load"))
			b.WriteString("\n")
			b.WriteString(formatter.RenderTeamStats(stats))
			b.WriteString("\n\n")
			b.WriteString(formatter.Header("backlog"))
			b.WriteString("\n")

			included, totalWeight := 0, 0.0
			rows := make([][]string, 0, len(p.Activities))
			for _, a := range p.Activities {
				weight := a.TotalEstimate()
				marker := formatter.Dim("▹ out")
				if a.IsIncluded {
					marker = formatter.StyleGreen.Render("▸ in")
					included++
					totalWeight += weight
				}
				rows = append(rows, []string{
					marker,
					a.Title,
					formatter.FormatDays(weight),
					formatter.TruncID(a.ID),
				})
			}
			if len(rows) == 0 {
				b.WriteString(formatter.Dim("No activities yet."))
			} else {
				b.WriteString(formatter.RenderTable([]string{"", "ACTIVITY", "WEIGHT", "ID"}, rows))
				b.WriteString("\n")
				b.WriteString(fmt.Sprintf("%d of %d included, %s committed\n",
					included, len(p.Activities), formatter.FormatDays(totalWeight)))
			}

			fmt.Println(b.String())
			return nil
		},
	}
}
