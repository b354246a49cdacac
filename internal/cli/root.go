package cli

import (
	"github.com/nexusart/artplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans       service.PlanService
	Teams       service.TeamService
	Activities  service.ActivityService
	Allocations service.AllocationService
	Board       service.BoardService
	Track       service.TrackService

	// IsInteractive reports whether stdin is a terminal; wizards and the
	// live board refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "artplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "artplan",
		Short: "Program increment planner for agile release trains",
	}

	root.AddCommand(
		newPlanCmd(app),
		newTeamCmd(app),
		newActivityCmd(app),
		newAllocCmd(app),
		newBoardCmd(app),
		newTrackCmd(app),
		newPriorityCmd(app),
	)

	return root
}
