package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/alexanderramin/upkeep/internal/repository"
	"github.com/alexanderramin/upkeep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) (ProfileService, repository.ProfileRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteProfileRepo(database)
	return NewProfileService(profiles), profiles
}

func TestProfileService_Get_DefaultsWhenMissing(t *testing.T) {
	svc, _ := newProfileService(t)

	p, err := svc.Get(context.Background(), "new-user")
	require.NoError(t, err)
	assert.Equal(t, "new-user", p.ID)
	assert.True(t, p.EmailNotificationsEnabled)
	assert.Equal(t, domain.FrequencyDaily, p.NotificationFrequency)
	assert.Equal(t, 9, p.NotificationTime)
}

func TestProfileService_Get_RequiresIdentity(t *testing.T) {
	svc, _ := newProfileService(t)

	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestProfileService_UpdatePreferences_PersistsPartial(t *testing.T) {
	svc, profiles := newProfileService(t)
	ctx := context.Background()

	weekly := domain.FrequencyWeekly
	hour := 7
	updated, err := svc.UpdatePreferences(ctx, "alice", domain.ProfileUpdate{
		NotificationFrequency: &weekly,
		NotificationTime:      &hour,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyWeekly, updated.NotificationFrequency)
	assert.Equal(t, 7, updated.NotificationTime)
	// Untouched fields keep their defaults.
	assert.True(t, updated.EmailNotificationsEnabled)

	stored, err := profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyWeekly, stored.NotificationFrequency)
	assert.Equal(t, 7, stored.NotificationTime)
}

func TestProfileService_UpdatePreferences_RejectsInvalid(t *testing.T) {
	svc, _ := newProfileService(t)

	badHour := 24
	_, err := svc.UpdatePreferences(context.Background(), "alice", domain.ProfileUpdate{
		NotificationTime: &badHour,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 23")

	badFreq := domain.Frequency("hourly")
	_, err = svc.UpdatePreferences(context.Background(), "alice", domain.ProfileUpdate{
		NotificationFrequency: &badFreq,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frequency")
}
