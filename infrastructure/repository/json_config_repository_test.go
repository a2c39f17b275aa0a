package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoneboard/zoneboard/infrastructure/config"
)

func newTestConfigRepo(t *testing.T) *JSONConfigRepository {
	t.Helper()
	repo := NewJSONConfigRepository().(*JSONConfigRepository)
	repo.SetConfigDir(t.TempDir())
	return repo
}

func TestJSONConfigRepositoryFirstRun(t *testing.T) {
	repo := newTestConfigRepo(t)

	exists, err := repo.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	cfg, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, cfg, "a missing config file is not an error")
}

func TestJSONConfigRepositorySaveAndLoad(t *testing.T) {
	repo := newTestConfigRepo(t)

	cfg := config.DefaultConfig()
	cfg.Clock.TickIntervalSec = 5
	cfg.Storage.Backend = "sqlite"
	require.NoError(t, repo.Save(cfg))

	exists, err := repo.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 5, loaded.Clock.TickIntervalSec)
	assert.Equal(t, "sqlite", loaded.Storage.Backend)
}

func TestJSONConfigRepositorySaveRejectsInvalidConfig(t *testing.T) {
	repo := newTestConfigRepo(t)

	cfg := config.DefaultConfig()
	cfg.Storage.Backend = "etcd"
	assert.Error(t, repo.Save(cfg))

	assert.Error(t, repo.Save(nil))
}
