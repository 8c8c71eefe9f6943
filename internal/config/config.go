// Package config defines the tunable parameters for the dpbpe commands and
// loads them from an optional YAML file plus DPBPE_-prefixed environment
// variables, via viper.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"

	"github.com/oalang/dpbpe/internal/logging"
)

const envPrefix = "DPBPE"

const (
	// DefaultMaxSubwords is the subword budget used when --max-subwords is
	// not given: the alphabet (terminal marker included) plus the merge
	// operations add up to at most this many subwords.
	DefaultMaxSubwords = 1000
)

// TrainConfig holds the training-loop tunables.
type TrainConfig struct {
	MaxSubwords int `mapstructure:"max_subwords"`
}

// Config is the root configuration for all dpbpe commands.
type Config struct {
	Log   logging.Config `mapstructure:"log"`
	Train TrainConfig    `mapstructure:"train"`
}

// Validate rejects settings training and encoding cannot act on.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}
	if c.Train.MaxSubwords < 0 {
		return fmt.Errorf("config: train.max_subwords must be >= 0, got %d", c.Train.MaxSubwords)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Train.MaxSubwords == 0 {
		cfg.Train.MaxSubwords = DefaultMaxSubwords
	}
}

// newViper builds a Viper instance bound to DPBPE_-prefixed environment
// variables, with nested keys ("train.max_subwords") mapped to
// "DPBPE_TRAIN_MAX_SUBWORDS".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvs(v, Config{})
	return v
}

func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ift := reflect.TypeOf(iface)
	if ift.Kind() == reflect.Ptr {
		ift = ift.Elem()
	}
	for i := 0; i < ift.NumField(); i++ {
		field := ift.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "," {
			continue
		}
		newParts := append(parts, tag)
		if field.Type.Kind() == reflect.Struct {
			bindEnvs(v, reflect.New(field.Type).Elem().Interface(), newParts...)
		} else {
			_ = v.BindEnv(strings.Join(newParts, "."))
		}
	}
}

// Load reads configPath if non-empty, merges DPBPE_* environment overrides,
// applies defaults, and validates the result. An empty configPath relies
// entirely on environment variables and defaults.
func Load(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}
