package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/alexanderramin/upkeep/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(taskID string, completedAt time.Time, notes string) *domain.HistoryEntry {
	return &domain.HistoryEntry{
		ID:          uuid.New().String(),
		TaskID:      taskID,
		UserID:      testutil.DefaultUserID,
		CompletedAt: completedAt,
		Notes:       notes,
	}
}

func TestHistoryRepo_AppendAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedUser(t, db, testutil.DefaultUserID)
	tasks := NewSQLiteTaskRepo(db)
	history := NewSQLiteHistoryRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Change furnace filter")
	require.NoError(t, tasks.Create(ctx, task))

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, history.Append(ctx, newEntry(task.ID, base, "winter check")))
	require.NoError(t, history.Append(ctx, newEntry(task.ID, base.AddDate(0, 0, 30), "")))
	require.NoError(t, history.Append(ctx, newEntry(task.ID, base.AddDate(0, 0, 60), "replaced early")))

	entries, err := history.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Most recent completion first.
	assert.Equal(t, "replaced early", entries[0].Notes)
	assert.Equal(t, "winter check", entries[2].Notes)
	assert.True(t, entries[0].CompletedAt.After(entries[1].CompletedAt))
}

func TestHistoryRepo_ListByTask_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	history := NewSQLiteHistoryRepo(db)

	entries, err := history.ListByTask(context.Background(), "no-such-task")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryRepo_CascadeDeleteWithTask(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedUser(t, db, testutil.DefaultUserID)
	tasks := NewSQLiteTaskRepo(db)
	history := NewSQLiteHistoryRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Clean dryer vent")
	require.NoError(t, tasks.Create(ctx, task))
	require.NoError(t, history.Append(ctx, newEntry(task.ID, time.Now().UTC(), "")))

	require.NoError(t, tasks.Delete(ctx, task.ID))

	entries, err := history.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
