package schedule

import (
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
)

// Stats summarizes a task collection for display.
type Stats struct {
	Total   int
	Overdue int
	DueSoon int
}

// Aggregate reduces the tasks to counts of total, overdue, and due-soon,
// evaluated against the supplied clock. Input order is irrelevant.
func Aggregate(tasks []*domain.Task, now time.Time) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		d := DaysRemaining(t, now)
		switch {
		case d < 0:
			s.Overdue++
		case d <= DueSoonThresholdDays:
			s.DueSoon++
		}
	}
	return s
}
