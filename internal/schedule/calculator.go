// Package schedule holds the pure due-date computations: days remaining,
// urgency classification, sorting, filtering, and summary counts. Nothing in
// this package performs I/O or mutates its inputs; callers supply the clock.
package schedule

import (
	"math"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
)

// NextDueDate returns the task's next due date: lastCompleted plus the
// recurrence interval in calendar days. Calendar-day addition keeps the
// result correct across month and year rollovers.
func NextDueDate(t *domain.Task) time.Time {
	return t.LastCompleted.AddDate(0, 0, t.IntervalDays)
}

// DaysRemaining returns the number of whole days until the task's next due
// date, rounded up. Negative values mean overdue; zero means due today.
func DaysRemaining(t *domain.Task, now time.Time) int {
	diff := NextDueDate(t).Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}
