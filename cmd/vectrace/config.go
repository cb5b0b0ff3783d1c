package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings of a vectrace session.
type Config struct {
	Quota   int    `mapstructure:"quota"`    // live slot quota of the allocator, 0 for none
	MaxSize int    `mapstructure:"max_size"` // maximum buffer size, 0 for unbounded
	Output  string `mapstructure:"output"`   // text or json
	Width   int    `mapstructure:"width"`    // line width, 0 to ask the terminal
	Verbose bool   `mapstructure:"verbose"`
}

// loadConfig reads configuration from file (or vectrace.yaml in the usual
// places, if file is empty), from environment variables with prefix VECTRACE,
// and from flags previously bound to v.
func loadConfig(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("vectrace")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.vectrace")
	}
	v.SetDefault("quota", 0)
	v.SetDefault("max_size", 0)
	v.SetDefault("output", "text")
	v.SetDefault("width", 0)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("VECTRACE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", c.Output)
	}
	if c.Quota < 0 || c.MaxSize < 0 {
		return fmt.Errorf("quota and max size must not be negative")
	}
	return nil
}
