package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/nexusart/artplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// FormatDays renders a day figure without trailing zeros: 8d, 2.5d.
func FormatDays(days float64) string {
	return fmt.Sprintf("%gd", days)
}

// FormatRange renders an inclusive date range as "Jan 6 – Jan 19".
func FormatRange(r domain.DateRange) string {
	return fmt.Sprintf("%s – %s", r.Start.Format("Jan 2"), r.End.Format("Jan 2"))
}

// ShortDate renders a date as YYYY-MM-DD.
func ShortDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Utilization renders a percentage colored by load: red when over capacity,
// yellow near the limit, green otherwise.
func Utilization(pct float64) string {
	text := fmt.Sprintf("%.0f%%", pct)
	switch {
	case pct > 100:
		return StyleRed.Render(text)
	case pct >= 85:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}

// SignedDays renders a variance figure with an explicit sign, colored red
// for growth and green for shrinkage.
func SignedDays(days float64) string {
	text := fmt.Sprintf("%+gd", days)
	switch {
	case days > 0:
		return StyleRed.Render(text)
	case days < 0:
		return StyleGreen.Render(text)
	default:
		return StyleDim.Render("±0d")
	}
}
