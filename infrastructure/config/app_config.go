package config

import (
	"fmt"
	"strings"

	env "github.com/Netflix/go-env"
)

// ClockConfig holds update-scheduler configuration
type ClockConfig struct {
	// TickIntervalSec is the snapshot recomputation cadence in seconds
	TickIntervalSec int `json:"tick_interval_seconds,omitempty" env:"ZONEBOARD_TICK_INTERVAL_SECONDS,default=1"`

	// ReferenceZone overrides the detected system timezone used for hour
	// deltas (IANA identifier, empty means autodetect)
	ReferenceZone string `json:"reference_zone,omitempty" env:"ZONEBOARD_REFERENCE_ZONE,default="`

	// MeetingSearchDays is the rolling window scanned by the meeting finder
	MeetingSearchDays int `json:"meeting_search_days,omitempty" env:"ZONEBOARD_MEETING_SEARCH_DAYS,default=7"`
}

// StorageConfig holds settings-store configuration
type StorageConfig struct {
	// Backend selects the settings store: "json" or "sqlite"
	Backend string `json:"backend,omitempty" env:"ZONEBOARD_STORAGE_BACKEND,default=json"`

	// Path is the store location. Empty means the default under the config
	// directory (settings.json or settings.db depending on the backend).
	Path string `json:"path,omitempty" env:"ZONEBOARD_STORAGE_PATH,default="`
}

// DaemonConfig holds daemon mode configuration
type DaemonConfig struct {
	// Enabled indicates whether daemon mode is the default run mode
	Enabled bool `json:"enabled,omitempty" env:"ZONEBOARD_DAEMON_ENABLED"`

	// PidFile is the path for the daemon PID file
	PidFile string `json:"pid_file,omitempty" env:"ZONEBOARD_DAEMON_PID_FILE"`
}

// PromtailConfig holds Promtail logging configuration
type PromtailConfig struct {
	// URL is the Promtail push endpoint URL
	URL string `json:"url,omitempty" env:"ZONEBOARD_LOKI_URL"`

	// Username is the username for basic authentication
	Username string `json:"username,omitempty" env:"ZONEBOARD_LOKI_USERNAME"`

	// Password is the password for basic authentication
	Password string `json:"password,omitempty" env:"ZONEBOARD_LOKI_PASSWORD"`

	// BatchWaitSeconds is the time to wait before sending a batch
	BatchWaitSeconds int `json:"batch_wait_seconds,omitempty" env:"ZONEBOARD_LOKI_BATCH_WAIT_SECONDS,default=1"`

	// BatchCapacity is the maximum number of log entries in a batch
	BatchCapacity int `json:"batch_capacity,omitempty" env:"ZONEBOARD_LOKI_BATCH_CAPACITY,default=100"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `json:"level,omitempty" env:"ZONEBOARD_LOG_LEVEL,default=info"`

	// Debug enables debug mode with stdout logging
	Debug bool `json:"debug,omitempty" env:"ZONEBOARD_LOG_DEBUG,default=false"`

	// Promtail holds Promtail configuration; logs are pushed to Loki only
	// when a URL is configured
	Promtail *PromtailConfig `json:"promtail,omitempty"`
}

// AppConfig holds application configuration
type AppConfig struct {
	// Version is the configuration schema version
	Version int `json:"version,omitempty"`

	// Clock holds update-scheduler configuration
	Clock *ClockConfig `json:"clock,omitempty"`

	// Storage holds settings-store configuration
	Storage *StorageConfig `json:"storage,omitempty"`

	// Daemon holds daemon mode configuration
	Daemon *DaemonConfig `json:"daemon,omitempty"`

	// Logging holds logging configuration
	Logging *LoggingConfig `json:"logging,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Version: 1,
		Clock: &ClockConfig{
			TickIntervalSec:   1,
			ReferenceZone:     "",
			MeetingSearchDays: 7,
		},
		Storage: &StorageConfig{
			Backend: "json",
			Path:    "",
		},
		Daemon: &DaemonConfig{
			Enabled: false,
			PidFile: "",
		},
		Logging: &LoggingConfig{
			Level: "info",
			Debug: false,
			Promtail: &PromtailConfig{
				BatchWaitSeconds: 1,
				BatchCapacity:    100,
			},
		},
	}
}

// LoadConfig loads configuration from defaults and environment variables
func LoadConfig() (*AppConfig, error) {
	cfg := DefaultConfig()

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv overlays environment variables onto the configuration
func (c *AppConfig) LoadFromEnv() error {
	if _, err := env.UnmarshalFromEnviron(c); err != nil {
		return err
	}
	if c.Clock != nil {
		if _, err := env.UnmarshalFromEnviron(c.Clock); err != nil {
			return err
		}
	}
	if c.Storage != nil {
		if _, err := env.UnmarshalFromEnviron(c.Storage); err != nil {
			return err
		}
	}
	if c.Daemon != nil {
		if _, err := env.UnmarshalFromEnviron(c.Daemon); err != nil {
			return err
		}
	}
	if c.Logging != nil {
		if _, err := env.UnmarshalFromEnviron(c.Logging); err != nil {
			return err
		}
		if c.Logging.Promtail != nil {
			if _, err := env.UnmarshalFromEnviron(c.Logging.Promtail); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate checks the configuration for consistency
func (c *AppConfig) Validate() error {
	if c.Clock != nil {
		if c.Clock.TickIntervalSec < 1 {
			return fmt.Errorf("clock.tick_interval_seconds must be at least 1")
		}
		if c.Clock.MeetingSearchDays < 1 || c.Clock.MeetingSearchDays > 31 {
			return fmt.Errorf("clock.meeting_search_days must be between 1 and 31")
		}
	}
	if c.Storage != nil {
		switch strings.ToLower(c.Storage.Backend) {
		case "json", "sqlite":
		default:
			return fmt.Errorf("storage.backend must be json or sqlite, got %q", c.Storage.Backend)
		}
	}
	if c.Logging != nil {
		switch strings.ToLower(c.Logging.Level) {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
		}
	}
	return nil
}

// Merge overlays non-zero values from a file-loaded configuration. Environment
// variables are applied after merging, so env always wins over the file.
func (c *AppConfig) Merge(file *AppConfig) {
	if file == nil {
		return
	}
	if file.Version != 0 {
		c.Version = file.Version
	}
	if file.Clock != nil {
		if c.Clock == nil {
			c.Clock = &ClockConfig{}
		}
		if file.Clock.TickIntervalSec != 0 {
			c.Clock.TickIntervalSec = file.Clock.TickIntervalSec
		}
		if file.Clock.ReferenceZone != "" {
			c.Clock.ReferenceZone = file.Clock.ReferenceZone
		}
		if file.Clock.MeetingSearchDays != 0 {
			c.Clock.MeetingSearchDays = file.Clock.MeetingSearchDays
		}
	}
	if file.Storage != nil {
		if c.Storage == nil {
			c.Storage = &StorageConfig{}
		}
		if file.Storage.Backend != "" {
			c.Storage.Backend = file.Storage.Backend
		}
		if file.Storage.Path != "" {
			c.Storage.Path = file.Storage.Path
		}
	}
	if file.Daemon != nil {
		if c.Daemon == nil {
			c.Daemon = &DaemonConfig{}
		}
		c.Daemon.Enabled = file.Daemon.Enabled
		if file.Daemon.PidFile != "" {
			c.Daemon.PidFile = file.Daemon.PidFile
		}
	}
	if file.Logging != nil {
		if c.Logging == nil {
			c.Logging = &LoggingConfig{}
		}
		if file.Logging.Level != "" {
			c.Logging.Level = file.Logging.Level
		}
		c.Logging.Debug = c.Logging.Debug || file.Logging.Debug
		if file.Logging.Promtail != nil {
			c.Logging.Promtail = file.Logging.Promtail
		}
	}
}
