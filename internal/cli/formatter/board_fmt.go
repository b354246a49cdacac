package formatter

import (
	"fmt"

	"github.com/nexusart/artplan/internal/contract"
)

// RenderBoard renders the planning board: one row per team, one column per
// sprint, each cell showing used effort against capacity.
func RenderBoard(board *contract.BoardSnapshot) string {
	if len(board.Rows) == 0 {
		return Dim("No teams on the board yet.")
	}

	headers := make([]string, 0, len(board.Sprints)+1)
	headers = append(headers, "TEAM")
	for _, s := range board.Sprints {
		headers = append(headers, s.Name)
	}

	rows := make([][]string, 0, len(board.Rows))
	for _, r := range board.Rows {
		row := make([]string, 0, len(r.Cells)+1)
		row = append(row, fmt.Sprintf("%s %s", r.TeamName, Dim(fmt.Sprintf("(%d)", r.Members))))
		for _, c := range r.Cells {
			row = append(row, renderCell(c))
		}
		rows = append(rows, row)
	}

	return RenderTable(headers, rows)
}

func renderCell(c contract.BoardCell) string {
	text := fmt.Sprintf("%g/%d", c.Used, c.Capacity)
	if c.Over {
		return StyleRed.Render(text + " !")
	}
	if c.Used == 0 {
		return Dim(text)
	}
	return StyleFg.Render(text)
}

// RenderTeamStats renders whole-increment utilization per team.
func RenderTeamStats(stats []contract.TeamPIStat) string {
	if len(stats) == 0 {
		return Dim("No teams yet.")
	}

	headers := []string{"TEAM", "CAPACITY", "COMMITTED", "UTILIZATION"}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.TeamName,
			fmt.Sprintf("%dd", s.Capacity),
			FormatDays(s.Committed),
			Utilization(s.Utilization),
		})
	}
	return RenderTable(headers, rows)
}

// RenderActivityStats renders the estimate-vs-allocation comparison for one
// (activity, team) pair.
func RenderActivityStats(s *contract.ActivityTeamStats) string {
	lines := fmt.Sprintf("Estimated  %s\nAllocated  %s\n",
		FormatDays(s.Estimated), FormatDays(s.Allocated))
	switch {
	case s.IsOver:
		lines += fmt.Sprintf("Overdue    %s\n", StyleRed.Render(FormatDays(s.Overdue)))
	case s.IsUnder:
		lines += fmt.Sprintf("Remaining  %s\n", StyleYellow.Render(FormatDays(s.Remaining)))
	default:
		lines += StyleGreen.Render("Fully allocated") + "\n"
	}
	lines += fmt.Sprintf("Status     %s", EstimateStatusPill(s.Status))
	return RenderBox("allocation", lines)
}
