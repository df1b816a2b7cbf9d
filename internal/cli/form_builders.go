package cli

import (
	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/charmbracelet/huh"
)

// taskFormValues collects the string-typed inputs of the task add form.
type taskFormValues struct {
	Name        string
	Category    string
	Interval    string
	LastDone    string
	Description string
}

// taskAddForm returns a themed form for interactively creating a task. The
// category select offers the suggested labels plus a free-form escape hatch.
func taskAddForm(v *taskFormValues) *huh.Form {
	categoryOpts := make([]huh.Option[string], 0, len(domain.SuggestedCategories)+1)
	for _, c := range domain.SuggestedCategories {
		categoryOpts = append(categoryOpts, huh.NewOption(c, c))
	}
	categoryOpts = append(categoryOpts, huh.NewOption("Other…", ""))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task Name").
				Placeholder("Replace HVAC filter").
				Value(&v.Name).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOpts...).
				Value(&v.Category),
			huh.NewInput().
				Title("Interval (days)").
				Placeholder("90").
				Value(&v.Interval).
				Validate(validateInterval),
			huh.NewInput().
				Title("Last Completed (YYYY-MM-DD, blank for today)").
				Value(&v.LastDone).
				Validate(validateOptionalDate),
			huh.NewText().
				Title("Notes").
				Placeholder("optional").
				Value(&v.Description),
		),
	).WithTheme(upkeepHuhTheme()).WithShowHelp(false)
}

// customCategoryForm asks for a free-form category label when the select's
// escape hatch was chosen.
func customCategoryForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Custom Category").
				Placeholder("Electrical").
				Value(value).
				Validate(validateRequired),
		),
	).WithTheme(upkeepHuhTheme()).WithShowHelp(false)
}
