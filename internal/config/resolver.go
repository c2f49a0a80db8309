package config

import (
	"fmt"
	"os"

	"github.com/smartclimate/scaffold/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin and the
// lower-precedence values it shadows.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveOptions holds the raw inputs for one string setting.
type ResolveOptions struct {
	Key          string
	FlagValue    string
	EnvVar       string
	ConfigValue  string
	DefaultValue string
}

// Resolve applies flag > env > config > default precedence.
func Resolve(opts ResolveOptions) ResolvedValue {
	rv := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	var envValue string
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, envValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.DefaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}

	return rv
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SCAFFOLD_CONFIG env, (3) ~/.scaffold/config.yaml.
// It only fails when no source yields a path, e.g. HOME is unset and
// neither the flag nor the env var is given.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	var defaultPath string
	paths, homeErr := DefaultPaths()
	if homeErr == nil {
		defaultPath = paths.ConfigFile
	}

	rv := Resolve(ResolveOptions{
		Key:          "config",
		FlagValue:    flagValue,
		EnvVar:       EnvConfig,
		DefaultValue: defaultPath,
	})
	if rv.Value == "" {
		return rv, fmt.Errorf("resolving config path: %w", homeErr)
	}

	return rv, nil
}

// ResolveRoot resolves the project root: the --root flag when given,
// otherwise the working directory. The environment and config file are
// never consulted.
func ResolveRoot(flagValue string) ResolvedValue {
	return Resolve(ResolveOptions{
		Key:          "root",
		FlagValue:    flagValue,
		DefaultValue: ".",
	})
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
