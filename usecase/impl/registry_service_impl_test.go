package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoneboard/zoneboard/domain"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

func newTestRegistry() usecase.RegistryService {
	return NewRegistryService(&memRepo{}, nopLogger{})
}

func TestRegistryServiceDefaults(t *testing.T) {
	registry := newTestRegistry()

	visible := registry.ListVisible()
	require.Len(t, visible, 4)
	assert.Equal(t, "est", visible[0].ID)
	assert.Equal(t, "pst", visible[1].ID)
	assert.Equal(t, "brazil", visible[2].ID)
	assert.Equal(t, "italy", visible[3].ID)
}

func TestRegistryServiceAddCustom(t *testing.T) {
	registry := newTestRegistry()

	entry, err := registry.AddCustom(usecase.AddCustomInput{
		IANAZone:    "Asia/Tokyo",
		DisplayName: "Tokyo",
		FlagGlyph:   "🇯🇵",
	})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.NotEmpty(t, entry.ID)

	visible := registry.ListVisible()
	require.Len(t, visible, 5)
	// Custom entries come after the builtins
	assert.Equal(t, entry.ID, visible[4].ID)
	assert.Equal(t, "Tokyo", visible[4].DisplayName)
}

func TestRegistryServiceAddCustomDuplicate(t *testing.T) {
	registry := newTestRegistry()

	_, err := registry.AddCustom(usecase.AddCustomInput{IANAZone: "Asia/Tokyo"})
	require.NoError(t, err)

	_, err = registry.AddCustom(usecase.AddCustomInput{IANAZone: "Asia/Tokyo", DisplayName: "Another Tokyo"})
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeDuplicate))
	assert.Len(t, registry.ListVisible(), 5)
}

func TestRegistryServiceDuplicateZoneAllowedAfterRemoval(t *testing.T) {
	registry := newTestRegistry()

	entry, err := registry.AddCustom(usecase.AddCustomInput{IANAZone: "Asia/Tokyo"})
	require.NoError(t, err)
	require.NoError(t, registry.RemoveCustom(entry.ID))

	_, err = registry.AddCustom(usecase.AddCustomInput{IANAZone: "Asia/Tokyo"})
	assert.NoError(t, err)
}

func TestRegistryServiceRemoveCustom(t *testing.T) {
	registry := newTestRegistry()

	t.Run("builtin ids are rejected", func(t *testing.T) {
		err := registry.RemoveCustom("pst")
		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidOperation))
	})

	t.Run("unknown ids are not found", func(t *testing.T) {
		err := registry.RemoveCustom("no-such-id")
		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNotFound))
	})

	t.Run("custom entries are removed", func(t *testing.T) {
		entry, err := registry.AddCustom(usecase.AddCustomInput{IANAZone: "Europe/London"})
		require.NoError(t, err)
		require.NoError(t, registry.RemoveCustom(entry.ID))
		assert.Len(t, registry.ListVisible(), 4)
	})
}

func TestRegistryServiceHideAndRestore(t *testing.T) {
	registry := newTestRegistry()

	require.NoError(t, registry.HideBuiltin("pst"))

	visible := registry.ListVisible()
	require.Len(t, visible, 3)
	for _, entry := range visible {
		assert.NotEqual(t, "pst", entry.ID)
	}

	// Hiding again is a no-op
	require.NoError(t, registry.HideBuiltin("pst"))
	assert.Len(t, registry.ListVisible(), 3)

	require.NoError(t, registry.RestoreBuiltin("pst"))
	visible = registry.ListVisible()
	require.Len(t, visible, 4)
	// Restored builtins come back at their catalog position
	assert.Equal(t, "pst", visible[1].ID)

	// Restoring a never-hidden id is a no-op
	require.NoError(t, registry.RestoreBuiltin("est"))

	err := registry.HideBuiltin("no-such-id")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNotFound))
}

func TestRegistryServiceLabelsAndNotes(t *testing.T) {
	registry := newTestRegistry()

	require.NoError(t, registry.SetLabel("est", "NYC"))
	require.NoError(t, registry.SetNote("est", "east coast office"))

	visible := registry.ListVisible()
	assert.Equal(t, "NYC", visible[0].DisplayName)
	assert.Equal(t, "east coast office", visible[0].Note)

	err := registry.SetLabel("no-such-id", "x")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNotFound))
}

func TestRegistryServicePersistsAcrossInstances(t *testing.T) {
	repo := &memRepo{}

	first := NewRegistryService(repo, nopLogger{})
	entry, err := first.AddCustom(usecase.AddCustomInput{IANAZone: "Asia/Tokyo", DisplayName: "Tokyo"})
	require.NoError(t, err)
	require.NoError(t, first.HideBuiltin("italy"))
	require.NoError(t, first.SetLabel("est", "NYC"))

	second := NewRegistryService(repo, nopLogger{})
	visible := second.ListVisible()
	require.Len(t, visible, 4)
	assert.Equal(t, "NYC", visible[0].DisplayName)
	assert.Equal(t, entry.ID, visible[3].ID)
	for _, e := range visible {
		assert.NotEqual(t, "italy", e.ID)
	}
}

func TestRegistryServicePersistenceFailureKeepsChange(t *testing.T) {
	registry := NewRegistryService(&failingRepo{}, nopLogger{})

	entry, err := registry.AddCustom(usecase.AddCustomInput{IANAZone: "Asia/Tokyo"})
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodePersistence))
	require.NotNil(t, entry)

	// The in-memory mutation stands despite the failed save
	assert.Len(t, registry.ListVisible(), 5)

	err = registry.HideBuiltin("pst")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodePersistence))
	assert.Len(t, registry.ListVisible(), 4)
}

func TestRegistryServiceListVisibleReturnsCopies(t *testing.T) {
	registry := newTestRegistry()

	registry.ListVisible()[0].DisplayName = "Mutated"
	assert.Equal(t, "New York", registry.ListVisible()[0].DisplayName)
}
