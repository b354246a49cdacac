package formatter

import (
	"fmt"
	"strings"

	"github.com/nexusart/artplan/internal/contract"
	"github.com/nexusart/artplan/internal/domain"
)

// RenderTrackReport renders the plan-vs-actual view. Without a baseline only
// the actuals are meaningful, so the variance columns are omitted.
func RenderTrackReport(report *contract.TrackReport, sprints []domain.Sprint) string {
	var b strings.Builder

	b.WriteString(Header("tracking"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Progress %s\n", RenderProgress(float64(report.Progress)/100, 20)))

	if !report.HasBaseline {
		b.WriteString(Dim("No baseline yet. Activate the plan to freeze one.") + "\n\n")
		b.WriteString(renderActualsOnly(report))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Planned %s  Actual %s  Variance %s\n\n",
		FormatDays(report.TotalPlanned), FormatDays(report.TotalActual), SignedDays(report.Variance)))

	headers := []string{"ACTIVITY", "STATUS", "EST", "PLAN", "ACTUAL", "VAR", "SCHEDULE"}
	rows := make([][]string, 0, len(report.Activities))
	for _, a := range report.Activities {
		title := a.Title
		if a.ScopeCreep {
			title += " " + StylePurple.Render("[new]")
		}
		rows = append(rows, []string{
			title,
			EstimateStatusPill(a.Status),
			FormatDays(a.Estimated),
			FormatDays(a.Planned),
			FormatDays(a.Actual),
			SignedDays(a.Variance),
			renderSpan(a, sprints),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

func renderActualsOnly(report *contract.TrackReport) string {
	headers := []string{"ACTIVITY", "STATUS", "EST", "ACTUAL", "PROGRESS"}
	rows := make([][]string, 0, len(report.Activities))
	for _, a := range report.Activities {
		rows = append(rows, []string{
			a.Title,
			EstimateStatusPill(a.Status),
			FormatDays(a.Estimated),
			FormatDays(a.Actual),
			RenderProgress(float64(a.Progress)/100, 10),
		})
	}
	return RenderTable(headers, rows)
}

// renderSpan draws the activity's sprint footprint, baseline above actual:
// "▓▓░░" style cells per sprint.
func renderSpan(a contract.ActivityTrack, sprints []domain.Sprint) string {
	if a.ActualFirst == -1 && a.BaselineFirst == -1 {
		return Dim("not scheduled")
	}
	var b strings.Builder
	for i := range sprints {
		inActual := a.ActualFirst != -1 && i >= a.ActualFirst && i <= a.ActualLast
		inBaseline := a.BaselineFirst != -1 && i >= a.BaselineFirst && i <= a.BaselineLast
		switch {
		case inActual && inBaseline:
			b.WriteString(StyleGreen.Render("▓"))
		case inActual:
			b.WriteString(StyleYellow.Render("▓"))
		case inBaseline:
			b.WriteString(Dim("▒"))
		default:
			b.WriteString(Dim("░"))
		}
	}
	return b.String()
}
