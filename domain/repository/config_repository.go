package repository

import (
	"github.com/zoneboard/zoneboard/infrastructure/config"
)

// ConfigRepository manages reading and writing the process configuration file
type ConfigRepository interface {
	// Exists checks whether the config file exists
	Exists() (bool, error)

	// Load reads the configuration from the config file
	Load() (*config.AppConfig, error)

	// Save writes the configuration to the config file
	Save(config *config.AppConfig) error

	// GetConfigPath returns the config file path
	GetConfigPath() string

	// EnsureConfigDir guarantees that the config directory exists
	EnsureConfigDir() error

	// Validate checks the configuration for consistency
	Validate(config *config.AppConfig) error
}
