package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg.Clock)
	assert.Equal(t, 1, cfg.Clock.TickIntervalSec)
	assert.Equal(t, 7, cfg.Clock.MeetingSearchDays)
	assert.Empty(t, cfg.Clock.ReferenceZone)

	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "json", cfg.Storage.Backend)

	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.NoError(t, cfg.Validate())
}

func TestAppConfigValidate(t *testing.T) {
	t.Run("rejects zero tick interval", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Clock.TickIntervalSec = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects out-of-range search window", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Clock.MeetingSearchDays = 45
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects unknown storage backend", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Storage.Backend = "etcd"
		assert.Error(t, cfg.Validate())
	})

	t.Run("accepts sqlite backend", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Storage.Backend = "sqlite"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "trace"
		assert.Error(t, cfg.Validate())
	})
}

func TestAppConfigMerge(t *testing.T) {
	t.Run("file values overlay defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Merge(&AppConfig{
			Clock:   &ClockConfig{TickIntervalSec: 5, ReferenceZone: "Asia/Tokyo"},
			Storage: &StorageConfig{Backend: "sqlite"},
			Daemon:  &DaemonConfig{Enabled: true, PidFile: "/tmp/zoneboard.pid"},
		})

		assert.Equal(t, 5, cfg.Clock.TickIntervalSec)
		assert.Equal(t, "Asia/Tokyo", cfg.Clock.ReferenceZone)
		// Unset file fields keep their defaults
		assert.Equal(t, 7, cfg.Clock.MeetingSearchDays)
		assert.Equal(t, "sqlite", cfg.Storage.Backend)
		assert.True(t, cfg.Daemon.Enabled)
		assert.Equal(t, "/tmp/zoneboard.pid", cfg.Daemon.PidFile)
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Merge(nil)
		assert.Equal(t, 1, cfg.Clock.TickIntervalSec)
	})
}
