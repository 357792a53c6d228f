package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"flatmap/mapping"
	"flatmap/options"
)

// Config controls logging and the naming and conversion options of the
// demonstration mapping. Environment variables provide the defaults
// a config file overrides.
type Config struct {
	// LogLevel such as "debug" or "warn". ENV: FLATMAP_LOG_LEVEL
	LogLevel string `yaml:"log_level" env:"FLATMAP_LOG_LEVEL,default=info"`
	// Categories of primitive conversions, ";" separated. ENV: FLATMAP_CATEGORIES
	Categories []string `yaml:"categories" env:"FLATMAP_CATEGORIES"`
	// Separator joins member keys. ENV: FLATMAP_SEPARATOR
	Separator string `yaml:"separator" env:"FLATMAP_SEPARATOR,default=."`
	// ComponentSeparator joins a composite key and a component identifier.
	// ENV: FLATMAP_COMPONENT_SEPARATOR
	ComponentSeparator string `yaml:"component_separator" env:"FLATMAP_COMPONENT_SEPARATOR"`
}

// LoadConfig decodes the environment and overlays the YAML file at path,
// if any.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("failed to decode environment: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := ParseConfig(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyDefaults(&cfg)

	return cfg, nil
}

// ParseConfig overlays YAML data onto cfg.
func ParseConfig(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.Separator == "" {
		cfg.Separator = "."
	}
}

// MappingOptions converts the configuration into build options.
func (c Config) MappingOptions(logger zerolog.Logger) ([]mapping.Option, error) {
	categories, err := options.ParseCategories(c.Categories)
	if err != nil {
		return nil, err
	}

	return []mapping.Option{
		mapping.WithLogger(logger),
		mapping.WithCategories(categories),
		mapping.WithNamingPolicy(mapping.SeparatorPolicy{Separator: c.Separator, Component: c.ComponentSeparator}),
	}, nil
}
