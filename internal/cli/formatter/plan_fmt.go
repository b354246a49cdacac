package formatter

import (
	"fmt"
	"strings"

	"github.com/nexusart/artplan/internal/contract"
	"github.com/nexusart/artplan/internal/domain"
)

// RenderPlanList renders the dashboard table of all plans.
func RenderPlanList(summaries []contract.PlanSummary) string {
	if len(summaries) == 0 {
		return Dim("No plans yet. Create one with: artplan plan add")
	}

	headers := []string{"ID", "NAME", "STATUS", "START", "SPRINTS", "PROGRESS"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		p := s.Plan
		rows = append(rows, []string{
			TruncID(p.ID),
			p.Name,
			PlanStatusPill(p.Status),
			ShortDate(p.Config.StartDate),
			fmt.Sprintf("%d × %dd", p.Config.NumberOfSprints, p.Config.SprintDurationDays),
			RenderProgress(float64(s.Progress)/100, 12),
		})
	}
	return RenderTable(headers, rows)
}

// RenderPlanDetails renders one plan with its derived sprint schedule,
// teams and holidays.
func RenderPlanDetails(p *domain.Plan, sprints []domain.Sprint) string {
	var b strings.Builder

	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n\n", PlanStatusPill(p.Status), TruncID(p.ID)))

	b.WriteString(Bold("Sprints") + "\n")
	for _, s := range sprints {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", s.Name, Dim(FormatRange(s.Range()))))
	}

	b.WriteString("\n" + Bold("Teams") + "\n")
	if len(p.Teams) == 0 {
		b.WriteString(Dim("  none\n"))
	}
	for _, t := range p.Teams {
		b.WriteString(fmt.Sprintf("  %s %s\n", t.Name, Dim(fmt.Sprintf("(%d members)", len(t.Members)))))
		for _, m := range t.Members {
			line := "    " + m.Name
			if len(m.Vacations) > 0 {
				spans := make([]string, 0, len(m.Vacations))
				for _, v := range m.Vacations {
					spans = append(spans, FormatRange(v.Range))
				}
				line += "  " + Dim("off: "+strings.Join(spans, ", "))
			}
			b.WriteString(line + "\n")
		}
	}

	if len(p.Holidays) > 0 {
		b.WriteString("\n" + Bold("Holidays") + "\n")
		for _, h := range p.Holidays {
			b.WriteString(fmt.Sprintf("  %s %s\n", h.Name, Dim(FormatRange(h.Range))))
		}
	}

	if len(p.Activities) > 0 {
		b.WriteString("\n" + Bold("Activities") + "\n")
		for _, a := range p.Activities {
			marker := StyleGreen.Render("▸")
			if !a.IsIncluded {
				marker = Dim("▹")
			}
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				marker, a.Title, Dim(FormatDays(a.TotalEstimate())), EstimateStatusPill(a.AggregateStatus())))
		}
	}

	return b.String()
}
