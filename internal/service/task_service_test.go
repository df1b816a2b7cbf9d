package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/alexanderramin/upkeep/internal/repository"
	"github.com/alexanderramin/upkeep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) (TaskService, repository.TaskRepo, repository.HistoryRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteProfileRepo(database)
	require.NoError(t, profiles.Upsert(context.Background(), testutil.NewTestProfile(testutil.DefaultUserID)))

	tasks := repository.NewSQLiteTaskRepo(database)
	history := repository.NewSQLiteHistoryRepo(database)
	svc := NewTaskService(tasks, history, profiles, testutil.NewTestUoW(database))
	return svc, tasks, history
}

func TestTaskService_Create_ProvisionsMissingProfile(t *testing.T) {
	// Fresh database, no profile row seeded: the first add must succeed and
	// leave the owner with default preferences.
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	tasks := repository.NewSQLiteTaskRepo(database)
	history := repository.NewSQLiteHistoryRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	svc := NewTaskService(tasks, history, profiles, testutil.NewTestUoW(database))

	task := &domain.Task{Name: "Clean gutters", Category: "Exterior", IntervalDays: 180}
	require.NoError(t, svc.Create(ctx, "first-timer", task))

	p, err := profiles.Get(ctx, "first-timer")
	require.NoError(t, err)
	assert.True(t, p.EmailNotificationsEnabled)
	assert.Equal(t, domain.FrequencyDaily, p.NotificationFrequency)
	assert.Equal(t, domain.DefaultNotificationHour, p.NotificationTime)
}

func TestTaskService_Import_ProvisionsMissingProfile(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	tasks := repository.NewSQLiteTaskRepo(database)
	history := repository.NewSQLiteHistoryRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	svc := NewTaskService(tasks, history, profiles, testutil.NewTestUoW(database))

	batch := []*domain.Task{testutil.NewTestTask("Rotate tires", testutil.WithUserID("first-timer"))}
	count, err := svc.Import(ctx, "first-timer", batch)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = profiles.Get(ctx, "first-timer")
	require.NoError(t, err)
}

func TestTaskService_Create_AssignsIdentityAndOwner(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	task := &domain.Task{
		Name:         "Clean gutters",
		Category:     "Exterior",
		IntervalDays: 180,
	}
	require.NoError(t, svc.Create(ctx, testutil.DefaultUserID, task))

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, testutil.DefaultUserID, task.UserID)
	assert.False(t, task.LastCompleted.IsZero())
	assert.False(t, task.CreatedAt.IsZero())

	fetched, err := svc.GetByID(ctx, testutil.DefaultUserID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clean gutters", fetched.Name)
}

func TestTaskService_Create_RejectsInvalid(t *testing.T) {
	svc, _, _ := newTaskService(t)

	err := svc.Create(context.Background(), testutil.DefaultUserID, &domain.Task{
		Name:         "",
		Category:     "Exterior",
		IntervalDays: 30,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	err = svc.Create(context.Background(), testutil.DefaultUserID, &domain.Task{
		Name:         "Bad interval",
		Category:     "Exterior",
		IntervalDays: 0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval")
}

func TestTaskService_RequiresIdentity(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Create(ctx, "", &domain.Task{}), ErrUnauthenticated)

	_, err := svc.List(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Complete(ctx, "", "some-id", "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.ErrorIs(t, svc.Delete(ctx, "", "some-id"), ErrUnauthenticated)
}

func TestTaskService_OwnershipHidesForeignTasks(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	task := &domain.Task{Name: "Flush water heater", Category: "Plumbing", IntervalDays: 365}
	require.NoError(t, svc.Create(ctx, testutil.DefaultUserID, task))

	_, err := svc.GetByID(ctx, "intruder", task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Update(ctx, "intruder", task.ID, domain.TaskUpdate{})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "intruder", task.ID), repository.ErrNotFound)
}

func TestTaskService_Update_AppliesPartialFields(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	task := &domain.Task{Name: "Test smoke detectors", Category: "Safety", IntervalDays: 90}
	require.NoError(t, svc.Create(ctx, testutil.DefaultUserID, task))

	newInterval := 30
	updated, err := svc.Update(ctx, testutil.DefaultUserID, task.ID, domain.TaskUpdate{
		IntervalDays: &newInterval,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, updated.IntervalDays)
	assert.Equal(t, "Test smoke detectors", updated.Name)

	badInterval := 9999
	_, err = svc.Update(ctx, testutil.DefaultUserID, task.ID, domain.TaskUpdate{
		IntervalDays: &badInterval,
	})
	assert.Error(t, err)
}

func TestTaskService_Complete_ResetsAnchorAndRecordsHistory(t *testing.T) {
	svc, _, history := newTaskService(t)
	ctx := context.Background()

	past := time.Now().UTC().AddDate(0, 0, -100)
	task := &domain.Task{
		Name:          "Replace HVAC filter",
		Category:      "HVAC",
		IntervalDays:  90,
		LastCompleted: past,
	}
	require.NoError(t, svc.Create(ctx, testutil.DefaultUserID, task))

	completed, err := svc.Complete(ctx, testutil.DefaultUserID, task.ID, "used last spare filter")
	require.NoError(t, err)
	assert.True(t, completed.LastCompleted.After(past))

	entries, err := history.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "used last spare filter", entries[0].Notes)
	assert.True(t, completed.LastCompleted.Equal(entries[0].CompletedAt))
}

func TestTaskService_Complete_RollsBackOnHistoryFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	profiles := repository.NewSQLiteProfileRepo(database)
	require.NoError(t, profiles.Upsert(ctx, testutil.NewTestProfile(testutil.DefaultUserID)))

	tasks := repository.NewSQLiteTaskRepo(database)
	history := repository.NewSQLiteHistoryRepo(database)

	past := time.Now().UTC().AddDate(0, 0, -10)
	task := testutil.NewTestTask("Descale kettle", testutil.WithLastCompleted(past))
	require.NoError(t, tasks.Create(ctx, task))

	// First exec in the transaction is the task update, second is the
	// history insert. Failing the insert must roll back the update.
	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}
	svc := NewTaskService(tasks, history, profiles, uow)

	_, err := svc.Complete(ctx, testutil.DefaultUserID, task.ID, "")
	require.ErrorIs(t, err, injected)

	fetched, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, past.Equal(fetched.LastCompleted))

	entries, err := history.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTaskService_Duplicate(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	past := time.Now().UTC().AddDate(0, 0, -100)
	task := &domain.Task{
		Name:          "Clean dryer vent",
		Category:      "Appliances",
		IntervalDays:  90,
		LastCompleted: past,
		Description:   "use the long brush",
	}
	require.NoError(t, svc.Create(ctx, testutil.DefaultUserID, task))

	dup, err := svc.Duplicate(ctx, testutil.DefaultUserID, task.ID)
	require.NoError(t, err)
	assert.NotEqual(t, task.ID, dup.ID)
	assert.Equal(t, "Clean dryer vent (Copy)", dup.Name)
	assert.Equal(t, "Appliances", dup.Category)
	assert.Equal(t, 90, dup.IntervalDays)
	assert.Equal(t, "use the long brush", dup.Description)
	// The copy starts a fresh cycle instead of inheriting the overdue anchor.
	assert.True(t, dup.LastCompleted.After(past))

	all, err := svc.List(ctx, testutil.DefaultUserID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTaskService_Import_InsertsBatch(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	batch := []*domain.Task{
		testutil.NewTestTask("Rotate tires", testutil.WithCategory("Auto"), testutil.WithInterval(180)),
		testutil.NewTestTask("Clean gutters", testutil.WithCategory("Exterior"), testutil.WithInterval(180)),
		testutil.NewTestTask("Flush water heater", testutil.WithCategory("Plumbing"), testutil.WithInterval(365)),
	}

	count, err := svc.Import(ctx, testutil.DefaultUserID, batch)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	all, err := svc.List(ctx, testutil.DefaultUserID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTaskService_Import_RejectsInvalidBeforeWriting(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	batch := []*domain.Task{
		testutil.NewTestTask("Good task"),
		testutil.NewTestTask("Bad task", testutil.WithInterval(0)),
	}

	_, err := svc.Import(ctx, testutil.DefaultUserID, batch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad task")

	all, err := svc.List(ctx, testutil.DefaultUserID)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTaskService_Import_RollsBackWholeBatchOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	profiles := repository.NewSQLiteProfileRepo(database)
	require.NoError(t, profiles.Upsert(ctx, testutil.NewTestProfile(testutil.DefaultUserID)))

	tasks := repository.NewSQLiteTaskRepo(database)
	history := repository.NewSQLiteHistoryRepo(database)

	// Fail the second insert; the first must not survive.
	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}
	svc := NewTaskService(tasks, history, profiles, uow)

	batch := []*domain.Task{
		testutil.NewTestTask("First"),
		testutil.NewTestTask("Second"),
	}
	_, err := svc.Import(ctx, testutil.DefaultUserID, batch)
	require.ErrorIs(t, err, injected)

	remaining, err := tasks.ListByUser(ctx, testutil.DefaultUserID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestTaskService_History_RequiresOwnership(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	task := &domain.Task{Name: "Seal deck", Category: "Exterior", IntervalDays: 365}
	require.NoError(t, svc.Create(ctx, testutil.DefaultUserID, task))
	_, err := svc.Complete(ctx, testutil.DefaultUserID, task.ID, "")
	require.NoError(t, err)

	entries, err := svc.History(ctx, testutil.DefaultUserID, task.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = svc.History(ctx, "intruder", task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
