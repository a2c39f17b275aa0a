package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
)

func newTestJSONRepo(t *testing.T) *JSONSettingsRepository {
	t.Helper()
	return NewJSONSettingsRepository(filepath.Join(t.TempDir(), "settings.json"))
}

func TestJSONSettingsRepositoryFirstRun(t *testing.T) {
	repo := newTestJSONRepo(t)

	settings, err := repo.LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, settings)

	state, err := repo.LoadRegistryState()
	require.NoError(t, err)
	assert.Nil(t, state)

	alarms, err := repo.LoadAlarms()
	require.NoError(t, err)
	assert.Nil(t, alarms)
}

func TestJSONSettingsRepositorySettingsRoundTrip(t *testing.T) {
	repo := newTestJSONRepo(t)

	record := entity.DefaultSettings()
	record.Use24HourClock = true
	record.ViewMode = entity.ViewModeTable
	require.NoError(t, repo.SaveSettings(record))

	loaded, err := repo.LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Use24HourClock)
	assert.Equal(t, entity.ViewModeTable, loaded.ViewMode)
	assert.Equal(t, 9, loaded.BusinessHoursStart)
}

func TestJSONSettingsRepositorySectionsAreIndependent(t *testing.T) {
	repo := newTestJSONRepo(t)

	custom, err := entity.NewCustomEntry("Asia/Tokyo", "Tokyo", "🇯🇵")
	require.NoError(t, err)

	state := &repository.RegistryState{
		CustomEntries:     []*entity.TimezoneEntry{custom},
		RemovedBuiltinIDs: []string{"pst"},
		Labels:            map[string]string{"est": "NYC"},
	}
	require.NoError(t, repo.SaveRegistryState(state))

	alarm, err := entity.NewAlarm("Europe/Rome", "07:30", "Standup")
	require.NoError(t, err)
	require.NoError(t, repo.SaveAlarms([]*entity.Alarm{alarm}))

	// Saving alarms must not clobber the registry section
	loadedState, err := repo.LoadRegistryState()
	require.NoError(t, err)
	require.NotNil(t, loadedState)
	require.Len(t, loadedState.CustomEntries, 1)
	assert.Equal(t, "Asia/Tokyo", loadedState.CustomEntries[0].IANAZone)
	assert.Equal(t, []string{"pst"}, loadedState.RemovedBuiltinIDs)
	assert.Equal(t, "NYC", loadedState.Labels["est"])

	loadedAlarms, err := repo.LoadAlarms()
	require.NoError(t, err)
	require.Len(t, loadedAlarms, 1)
	assert.Equal(t, alarm.ID, loadedAlarms[0].ID)
	assert.Equal(t, "07:30", loadedAlarms[0].TriggerTime)
}

func TestJSONSettingsRepositoryOverwrite(t *testing.T) {
	repo := newTestJSONRepo(t)

	record := entity.DefaultSettings()
	require.NoError(t, repo.SaveSettings(record))

	record.ShowSeconds = false
	require.NoError(t, repo.SaveSettings(record))

	loaded, err := repo.LoadSettings()
	require.NoError(t, err)
	assert.False(t, loaded.ShowSeconds)
}
