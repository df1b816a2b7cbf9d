package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/alexanderramin/upkeep/internal/notify"
	"github.com/alexanderramin/upkeep/internal/schedule"
	"github.com/stretchr/testify/assert"
)

var fmtNow = time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

func fmtTask(name string, intervalDays int, lastCompleted time.Time) *domain.Task {
	return &domain.Task{
		ID:            "11112222-3333-4444-5555-666677778888",
		Name:          name,
		Category:      "HVAC",
		IntervalDays:  intervalDays,
		LastCompleted: lastCompleted,
	}
}

func TestFormatTaskList_ShowsStatusLabels(t *testing.T) {
	tasks := []*domain.Task{
		fmtTask("Replace filter", 90, fmtNow.AddDate(0, 0, -100)),
		fmtTask("Clean gutters", 180, fmtNow),
	}

	out := FormatTaskList(tasks, fmtNow)
	assert.Contains(t, out, "Replace filter")
	assert.Contains(t, out, "10 days overdue")
	assert.Contains(t, out, "Clean gutters")
	assert.Contains(t, out, "180 days remaining")
	assert.Contains(t, out, "11112222")
}

func TestFormatTaskDetail(t *testing.T) {
	task := fmtTask("Replace filter", 30, fmtNow)
	task.Description = "MERV 13"

	out := FormatTaskDetail(task, fmtNow)
	assert.Contains(t, out, "Replace filter")
	assert.Contains(t, out, "every 30 days")
	assert.Contains(t, out, "2026-04-15")
	assert.Contains(t, out, "MERV 13")
}

func TestFormatHistory_EmptyNotesPlaceholder(t *testing.T) {
	entries := []*domain.HistoryEntry{
		{CompletedAt: fmtNow, Notes: "swapped filter"},
		{CompletedAt: fmtNow.AddDate(0, 0, -30)},
	}

	out := FormatHistory("Replace filter", entries)
	assert.Contains(t, out, "swapped filter")
	assert.Contains(t, out, "2026-03-16")
	assert.Contains(t, out, "--")
}

func TestFormatStats(t *testing.T) {
	out := FormatStats(schedule.Stats{Total: 5, Overdue: 2, DueSoon: 1})
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "2")
	// good = total - overdue - duesoon
	assert.Contains(t, out, "GOOD")
}

func TestFormatDigestRun_ShowsFailures(t *testing.T) {
	summary := &notify.Summary{
		RanAt:          fmtNow,
		CurrentUTCHour: 12,
		UsersProcessed: 2,
		EmailsSent:     1,
		Results: []notify.DigestResult{
			{UserID: "alice", Bucket: notify.BucketDueToday, TaskCount: 1},
			{UserID: "bob", Bucket: notify.BucketOverdue, TaskCount: 2, Err: assert.AnError},
		},
	}

	out := FormatDigestRun(summary)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "sent")
	assert.Contains(t, out, "assert.AnError")
}
