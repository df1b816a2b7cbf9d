package importer

import (
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/google/uuid"
)

// ConvertToTasks turns a validated import schema into domain tasks for the
// given owner. File-wide defaults fill omitted fields; an omitted
// last_completed anchors the recurrence at now.
func ConvertToTasks(schema *ImportSchema, userID string, now time.Time) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(schema.Tasks))

	for _, ti := range schema.Tasks {
		category := ti.Category
		if category == "" && schema.Defaults != nil {
			category = schema.Defaults.Category
		}

		interval := 0
		if ti.IntervalDays != nil {
			interval = *ti.IntervalDays
		} else if schema.Defaults != nil && schema.Defaults.IntervalDays != nil {
			interval = *schema.Defaults.IntervalDays
		}

		lastCompleted := now
		if ti.LastCompleted != "" {
			// Validation already checked the format.
			if at, err := time.Parse("2006-01-02", ti.LastCompleted); err == nil {
				lastCompleted = at
			}
		}

		tasks = append(tasks, &domain.Task{
			ID:            uuid.New().String(),
			UserID:        userID,
			Name:          ti.Name,
			Category:      category,
			IntervalDays:  interval,
			LastCompleted: lastCompleted,
			Description:   ti.Description,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	return tasks
}
