package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateDefaults(schema.Defaults)...)

	if len(schema.Tasks) == 0 {
		errs = append(errs, fmt.Errorf("tasks: at least one task is required"))
	}

	seen := make(map[string]bool)
	for i, t := range schema.Tasks {
		errs = append(errs, validateTask(i, &t, schema.Defaults)...)
		if t.Name != "" {
			if seen[t.Name] {
				errs = append(errs, fmt.Errorf("tasks[%d]: duplicate name %q", i, t.Name))
			}
			seen[t.Name] = true
		}
	}

	return errs
}

func validateDefaults(d *DefaultsImport) []error {
	if d == nil {
		return nil
	}
	var errs []error

	if len(d.Category) > domain.MaxCategoryLen {
		errs = append(errs, fmt.Errorf("defaults.category exceeds %d characters", domain.MaxCategoryLen))
	}
	if d.IntervalDays != nil {
		if *d.IntervalDays < domain.MinIntervalDays || *d.IntervalDays > domain.MaxIntervalDays {
			errs = append(errs, fmt.Errorf("defaults.interval_days must be between %d and %d",
				domain.MinIntervalDays, domain.MaxIntervalDays))
		}
	}

	return errs
}

func validateTask(i int, t *TaskImport, defaults *DefaultsImport) []error {
	var errs []error

	if t.Name == "" {
		errs = append(errs, fmt.Errorf("tasks[%d]: name is required", i))
	}
	if len(t.Name) > domain.MaxNameLen {
		errs = append(errs, fmt.Errorf("tasks[%d]: name exceeds %d characters", i, domain.MaxNameLen))
	}

	category := t.Category
	if category == "" && defaults != nil {
		category = defaults.Category
	}
	if category == "" {
		errs = append(errs, fmt.Errorf("tasks[%d]: category is required (set it or defaults.category)", i))
	}
	if len(t.Category) > domain.MaxCategoryLen {
		errs = append(errs, fmt.Errorf("tasks[%d]: category exceeds %d characters", i, domain.MaxCategoryLen))
	}

	interval := t.IntervalDays
	if interval == nil && defaults != nil {
		interval = defaults.IntervalDays
	}
	if interval == nil {
		errs = append(errs, fmt.Errorf("tasks[%d]: interval_days is required (set it or defaults.interval_days)", i))
	} else if *interval < domain.MinIntervalDays || *interval > domain.MaxIntervalDays {
		errs = append(errs, fmt.Errorf("tasks[%d]: interval_days must be between %d and %d",
			i, domain.MinIntervalDays, domain.MaxIntervalDays))
	}

	if len(t.Description) > domain.MaxDescriptionLen {
		errs = append(errs, fmt.Errorf("tasks[%d]: description exceeds %d characters", i, domain.MaxDescriptionLen))
	}
	if t.LastCompleted != "" {
		if _, err := time.Parse("2006-01-02", t.LastCompleted); err != nil {
			errs = append(errs, fmt.Errorf("tasks[%d]: last_completed: invalid date format %q (expected YYYY-MM-DD)",
				i, t.LastCompleted))
		}
	}

	return errs
}
