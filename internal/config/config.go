// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps or SCAFFOLD_LOG_TIMESTAMPS.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the scaffold CLI configuration, loaded from
// ~/.scaffold/config.yaml.
type Config struct {
	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `scaffold config init` to write the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}
