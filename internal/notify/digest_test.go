package notify

import (
	"testing"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDigest_DueTodaySubjectAndBody(t *testing.T) {
	tasks := []*domain.Task{task("Change HVAC filter", 90, monday9am.AddDate(0, 0, -90))}

	d := ComposeDigest(BucketDueToday, tasks, monday9am)
	assert.Equal(t, "⚠️ Maintenance Tasks Due Today (1)", d.Subject)
	assert.Contains(t, d.HTMLBody, "Change HVAC filter")
	assert.Contains(t, d.HTMLBody, "(Home)")
	assert.Contains(t, d.HTMLBody, "Due:")
}

func TestComposeDigest_OverdueShowsDaysOverdue(t *testing.T) {
	overdue := task("Clean gutters", 30, monday9am.AddDate(0, 0, -32))

	d := ComposeDigest(BucketOverdue, []*domain.Task{overdue}, monday9am)
	assert.Equal(t, "🚨 Overdue Maintenance Tasks (1)", d.Subject)
	assert.Contains(t, d.HTMLBody, "2 days overdue")
	assert.Contains(t, d.HTMLBody, "Was due:")
}

func TestComposeDigest_IncludesDescriptionWhenPresent(t *testing.T) {
	withDesc := task("Test smoke alarms", 180, monday9am)
	withDesc.Description = "Press and hold the test button"

	d := ComposeDigest(BucketDueTomorrow, []*domain.Task{withDesc}, monday9am)
	assert.Contains(t, d.HTMLBody, "Press and hold the test button")
}

func TestComposeDigest_EscapesHTMLInUserText(t *testing.T) {
	hostile := task("<script>alert(1)</script>", 1, monday9am)

	d := ComposeDigest(BucketDueTomorrow, []*domain.Task{hostile}, monday9am)
	assert.NotContains(t, d.HTMLBody, "<script>")
	assert.Contains(t, d.HTMLBody, "&lt;script&gt;")
}

func TestComposeAll_OnePerNonEmptyBucket(t *testing.T) {
	now := monday9am
	b := PartitionTasks([]*domain.Task{
		task("today", 30, now.AddDate(0, 0, -30)),
		task("late", 30, now.AddDate(0, 0, -32)),
		task("fine", 90, now.AddDate(0, 0, -10)),
	}, now)

	digests := ComposeAll(b, now)
	require.Len(t, digests, 2)
	assert.Equal(t, BucketDueToday, digests[0].Bucket)
	assert.Equal(t, BucketOverdue, digests[1].Bucket)
}
