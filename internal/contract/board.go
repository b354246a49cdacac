// Package contract defines the read-only projection shapes the planning
// engine exposes to presentation surfaces. The CLI renders these verbatim
// and contains no capacity or variance logic of its own.
package contract

import "github.com/nexusart/artplan/internal/domain"

// BoardCell is the capacity/load figure for one (team, sprint) pair.
type BoardCell struct {
	TeamID      string
	SprintID    string
	Capacity    int
	Used        float64
	Utilization float64 // Used/Capacity in percent; 0 when capacity is 0
	Over        bool    // Used exceeds Capacity
}

// BoardRow groups one team's cells in sprint order.
type BoardRow struct {
	TeamID   string
	TeamName string
	Members  int
	Cells    []BoardCell
}

// BoardSnapshot is the full planning-board projection: derived sprints plus
// one row per team. Recomputed from plan state on every read.
type BoardSnapshot struct {
	Sprints []domain.Sprint
	Rows    []BoardRow
}

// ActivityTeamStats compares one team's committed estimate against its
// allocated total for a single activity. Over/under are advisory flags; no
// operation is ever blocked by them.
type ActivityTeamStats struct {
	ActivityID string
	TeamID     string
	Estimated  float64
	Allocated  float64
	Remaining  float64 // max(0, Estimated-Allocated)
	Overdue    float64 // Allocated-Estimated when over, else 0
	IsOver     bool
	IsUnder    bool
	Status     domain.EstimateStatus
}

// TeamPIStat is the whole-increment utilization view for one team:
// committed effort from included activities against total PI capacity.
type TeamPIStat struct {
	TeamID      string
	TeamName    string
	Capacity    int
	Committed   float64
	Utilization float64
	Over        bool
}
