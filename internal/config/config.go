package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	ReadTimeoutSeconds     int `mapstructure:"read_timeout_seconds"     validate:"gt=0"`
	WriteTimeoutSeconds    int `mapstructure:"write_timeout_seconds"    validate:"gt=0"`
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// StoreConfig controls how the in-memory task store is initialized.
type StoreConfig struct {
	// SeedEnabled loads the sample dataset at startup.
	SeedEnabled bool `mapstructure:"seed_enabled"`

	// SeedFile points at a TOML seed document. Empty means the embedded dataset.
	SeedFile string `mapstructure:"seed_file" validate:"omitempty,file"`
}
