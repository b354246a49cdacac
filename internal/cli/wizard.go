package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/nexusart/artplan/internal/cli/formatter"
	"github.com/nexusart/artplan/internal/domain"
)

// artplanHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func artplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runPlanWizard walks through plan creation in a guided form, then offers to
// seed the first teams.
func runPlanWizard(ctx context.Context, app *App) error {
	var (
		name     = ""
		start    = time.Now().Format(domain.DateLayout)
		sprints  = "5"
		duration = "14"
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Plan name").
				Placeholder("PI 2025.1").
				Value(&name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("First sprint starts").
				Description("YYYY-MM-DD").
				Value(&start).
				Validate(func(s string) error {
					_, err := time.Parse(domain.DateLayout, s)
					return err
				}),
			huh.NewInput().
				Title("Number of sprints").
				Description("The last one becomes the innovation sprint").
				Value(&sprints).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Sprint length in calendar days").
				Value(&duration).
				Validate(validatePositiveInt),
		),
	).WithTheme(artplanHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	startDate, _ := time.Parse(domain.DateLayout, start)
	numSprints, _ := strconv.Atoi(sprints)
	days, _ := strconv.Atoi(duration)

	p, err := app.Plans.Create(ctx, name, startDate, numSprints, days)
	if err != nil {
		return err
	}
	fmt.Printf("Created plan %s %s\n", p.Name, formatter.TruncID(p.ID))

	for {
		var teamName string
		teamForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Add a team (leave empty to finish)").
					Value(&teamName),
			),
		).WithTheme(artplanHuhTheme()).WithShowHelp(false)

		if err := teamForm.Run(); err != nil {
			return err
		}
		if teamName == "" {
			break
		}
		team, err := app.Teams.Add(ctx, p.ID, teamName)
		if err != nil {
			return err
		}
		fmt.Printf("Added team %s %s\n", team.Name, formatter.TruncID(team.ID))
	}

	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
