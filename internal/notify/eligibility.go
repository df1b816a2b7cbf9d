// Package notify implements the two notification policies: immediate local
// alerts for tasks due within a day, and the scheduled per-user email digest.
// Policy decisions are pure; delivery goes through the Dispatcher and
// EmailSender collaborators.
package notify

import (
	"fmt"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/alexanderramin/upkeep/internal/schedule"
)

// Alert is an immediate notification for a task due today or tomorrow.
type Alert struct {
	TaskID   string
	TaskName string
	Title    string
	Body     string

	// DedupeTag is stable across evaluations of the same task so the
	// delivery channel can suppress repeats within its own window.
	DedupeTag string

	// DueDate lets the delivery channel anchor the alert at a specific
	// moment (8 AM on the due date) instead of firing immediately.
	DueDate time.Time
}

// EvaluateImmediate returns one alert per task with 0 or 1 days remaining.
// Tasks outside that window, including overdue ones, produce no alert; the
// overdue case is the email digest's job.
func EvaluateImmediate(tasks []*domain.Task, now time.Time) []Alert {
	var alerts []Alert
	for _, t := range tasks {
		d := schedule.DaysRemaining(t, now)
		if d < 0 || d > 1 {
			continue
		}
		body := fmt.Sprintf("%s is due tomorrow", t.Name)
		if d == 0 {
			body = fmt.Sprintf("%s is due today!", t.Name)
		}
		alerts = append(alerts, Alert{
			TaskID:    t.ID,
			TaskName:  t.Name,
			Title:     "Maintenance Due",
			Body:      body,
			DedupeTag: "task-due-" + t.ID,
			DueDate:   schedule.NextDueDate(t),
		})
	}
	return alerts
}

// ShouldSendDigest reports whether the user is eligible for a digest in the
// batch run at now: email notifications enabled, the current UTC hour matches
// the preferred hour, and the frequency gate passes (daily always, weekly
// only on Mondays, disabled never).
func ShouldSendDigest(p *domain.Profile, now time.Time) bool {
	if !p.EmailNotificationsEnabled {
		return false
	}
	utc := now.UTC()
	if utc.Hour() != p.NotificationTime {
		return false
	}
	switch p.NotificationFrequency {
	case domain.FrequencyDaily:
		return true
	case domain.FrequencyWeekly:
		return utc.Weekday() == time.Monday
	default:
		return false
	}
}

// Bucket identifies one of the three digest emails a user can receive.
type Bucket string

const (
	BucketDueTomorrow Bucket = "due-tomorrow"
	BucketDueToday    Bucket = "due-today"
	BucketOverdue     Bucket = "overdue"
)

// Buckets holds a user's tasks partitioned by digest bucket. The buckets are
// disjoint; tasks more than one day out belong to none of them.
type Buckets struct {
	DueTomorrow []*domain.Task
	DueToday    []*domain.Task
	Overdue     []*domain.Task
}

// Empty reports whether no bucket has any task, meaning no email is owed.
func (b Buckets) Empty() bool {
	return len(b.DueTomorrow) == 0 && len(b.DueToday) == 0 && len(b.Overdue) == 0
}

// PartitionTasks splits tasks into the three digest buckets by days
// remaining: exactly 1, exactly 0, and negative.
func PartitionTasks(tasks []*domain.Task, now time.Time) Buckets {
	var b Buckets
	for _, t := range tasks {
		switch d := schedule.DaysRemaining(t, now); {
		case d == 1:
			b.DueTomorrow = append(b.DueTomorrow, t)
		case d == 0:
			b.DueToday = append(b.DueToday, t)
		case d < 0:
			b.Overdue = append(b.Overdue, t)
		}
	}
	return b
}
