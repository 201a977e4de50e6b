// Package config assembles the runtime configuration of the notes CLI.
//
// Values are layered, highest precedence first: command-line flags,
// environment variables, an optional YAML file, and built-in defaults.
// Layers are merged with mergo, so an empty string in a higher layer never
// hides a value set in a lower one. Boolean settings are pointers: nil means
// unset, and an explicit false still overrides a lower layer.
package config

import (
	"fmt"
	"slices"
)

// DefaultFile is the store location used when nothing else is configured.
const DefaultFile = "notes.json"

// DefaultBackend is the storage backend used when nothing else is configured.
const DefaultBackend = "fs"

// Backends lists the accepted backend names.
var Backends = []string{"fs", "bolt", "memory"}

// Config holds the settings of the notes CLI.
type Config struct {
	// File is the path of the persisted note collection.
	// Env: NOTES_FILE
	File string `env:"FILE" yaml:"file"`

	// Backend selects the storage backend (fs, bolt or memory).
	// Env: NOTES_BACKEND
	Backend string `env:"BACKEND" yaml:"backend"`

	// ReadOnly rejects every mutating command.
	// Env: NOTES_READ_ONLY
	ReadOnly *bool `env:"READ_ONLY" yaml:"read_only"`

	// Verbose enables debug logging.
	// Env: NOTES_VERBOSE
	Verbose *bool `env:"VERBOSE" yaml:"verbose"`

	// ConfigFile is the optional YAML file merged below flags and env.
	// Env: NOTES_CONFIG
	ConfigFile string `env:"CONFIG" yaml:"-"`
}

// envPrefix is prepended to every env tag of Config.
const envPrefix = "NOTES_"

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		File:    DefaultFile,
		Backend: DefaultBackend,
	}
}

// Load builds the configuration for the given flag values.
func Load(flags *Config) (*Config, error) {
	return newConfigBuilder().
		with(flags).
		withEnv().
		withFile().
		with(Defaults()).
		build()
}

// IsReadOnly reports whether mutating commands are refused.
func (cfg *Config) IsReadOnly() bool {
	return cfg.ReadOnly != nil && *cfg.ReadOnly
}

// IsVerbose reports whether debug logging is enabled.
func (cfg *Config) IsVerbose() bool {
	return cfg.Verbose != nil && *cfg.Verbose
}

func (cfg *Config) validate() error {
	if cfg.File == "" && cfg.Backend != "memory" {
		return ErrEmptyFile
	}
	if !slices.Contains(Backends, cfg.Backend) {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	return nil
}
