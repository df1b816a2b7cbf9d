package domain

import (
	"fmt"
	"time"
)

const (
	MaxNameLen        = 200
	MaxCategoryLen    = 100
	MaxDescriptionLen = 1000

	MinIntervalDays = 1
	MaxIntervalDays = 3650
)

// Task is a recurring maintenance item. LastCompleted anchors the next due
// date; CreatedAt/UpdatedAt are set by the repository and used only for
// sorting, never for due-date math.
type Task struct {
	ID            string
	UserID        string
	Name          string
	Category      string
	IntervalDays  int
	LastCompleted time.Time
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the field constraints enforced before a task reaches
// storage or the schedule engine.
func (t *Task) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if len(t.Name) > MaxNameLen {
		return fmt.Errorf("task name exceeds %d characters", MaxNameLen)
	}
	if t.Category == "" {
		return fmt.Errorf("task category is required")
	}
	if len(t.Category) > MaxCategoryLen {
		return fmt.Errorf("task category exceeds %d characters", MaxCategoryLen)
	}
	if t.IntervalDays < MinIntervalDays || t.IntervalDays > MaxIntervalDays {
		return fmt.Errorf("interval must be between %d and %d days, got %d",
			MinIntervalDays, MaxIntervalDays, t.IntervalDays)
	}
	if len(t.Description) > MaxDescriptionLen {
		return fmt.Errorf("description exceeds %d characters", MaxDescriptionLen)
	}
	if t.LastCompleted.IsZero() {
		return fmt.Errorf("last completed date is required")
	}
	return nil
}

// TaskUpdate carries a partial update; nil fields are left unchanged.
type TaskUpdate struct {
	Name          *string
	Category      *string
	IntervalDays  *int
	LastCompleted *time.Time
	Description   *string
}

// Apply copies the non-nil fields of the update onto the task.
func (u TaskUpdate) Apply(t *Task) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.IntervalDays != nil {
		t.IntervalDays = *u.IntervalDays
	}
	if u.LastCompleted != nil {
		t.LastCompleted = *u.LastCompleted
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
}
