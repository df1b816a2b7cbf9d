package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveTaskID turns user input into a task UUID. Matching order: exact name
// (case-insensitive), exact UUID, UUID prefix.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID or name is required")
	}

	tasks, err := app.Tasks.List(ctx, app.UserID)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if strings.EqualFold(t.Name, input) {
			return t.ID, nil
		}
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
