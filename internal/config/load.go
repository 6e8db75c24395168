package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from the YAML file at path, falling back to
// defaults for anything the file does not set. An empty path loads the
// defaults only. The result is validated before it is returned.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logger.path", "")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.disable_timestamp", false)
	v.SetDefault("logger.thread_safe", false)

	if path != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Logger.Level = strings.ToLower(strings.TrimSpace(cfg.Logger.Level))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags. Level names must already be
// lower case; Load normalizes them before calling Validate.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration validation failed: nil config")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
