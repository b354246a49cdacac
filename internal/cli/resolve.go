package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolvePlanID accepts a plan name, a full id or an unambiguous id prefix.
func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("plan is required")
	}

	plans, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact name match (case-insensitive)
	for _, p := range plans {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	// 2. Exact id match
	for _, p := range plans {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 3. Id prefix match
	var matches []string
	for _, p := range plans {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("plan not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("plan %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTeamID accepts a team name, id or id prefix within one plan.
func resolveTeamID(ctx context.Context, app *App, planID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("team is required")
	}

	plan, err := app.Plans.GetByID(ctx, planID)
	if err != nil {
		return "", err
	}

	for _, t := range plan.Teams {
		if strings.EqualFold(t.Name, input) || t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range plan.Teams {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("team not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("team %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveActivityID accepts an activity title, id or id prefix within one plan.
func resolveActivityID(ctx context.Context, app *App, planID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("activity is required")
	}

	plan, err := app.Plans.GetByID(ctx, planID)
	if err != nil {
		return "", err
	}

	for _, a := range plan.Activities {
		if strings.EqualFold(a.Title, input) || a.ID == input {
			return a.ID, nil
		}
	}

	var matches []string
	for _, a := range plan.Activities {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("activity not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("activity %q is ambiguous (%d matches)", input, len(matches))
	}
}
