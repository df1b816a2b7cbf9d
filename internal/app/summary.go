package app

import "time"

// SummaryRequest asks for a maintenance snapshot for one user. Now overrides
// the evaluation time; nil means the wall clock.
type SummaryRequest struct {
	UserID string
	Now    *time.Time
}

// TaskDigestView is the per-task projection returned by the summary surface.
// NextDueDate is a calendar date in YYYY-MM-DD form.
type TaskDigestView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	DaysRemaining int    `json:"daysRemaining"`
	IsUrgent      bool   `json:"isUrgent"`
	IsOverdue     bool   `json:"isOverdue"`
	NextDueDate   string `json:"nextDueDate"`
}

// SummaryResponse is the reporting payload served to webhook callers.
// Tasks holds the subset needing attention, or the first five tasks overall
// when nothing is urgent.
type SummaryResponse struct {
	TotalTasks   int              `json:"totalTasks"`
	UrgentTasks  int              `json:"urgentTasks"`
	OverdueTasks int              `json:"overdueTasks"`
	Tasks        []TaskDigestView `json:"tasks"`
	Summary      string           `json:"summary"`
}
