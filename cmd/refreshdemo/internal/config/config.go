// Package config loads the demo settings through viper: defaults, an
// optional YAML file, REFRESHDEMO_* environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/go-drift/refresh/pkg/refresh"
)

// EnvPrefix prefixes environment overrides, e.g. REFRESHDEMO_REFRESH_THEME.
const EnvPrefix = "REFRESHDEMO"

// Backends accepted by the run command.
const (
	BackendTea   = "tea"
	BackendTview = "tview"
)

// Settings is the effective demo configuration.
type Settings struct {
	Refresh refresh.Config `yaml:"refresh" mapstructure:"refresh"`
	Backend string         `yaml:"backend" mapstructure:"backend"`
	// LoadDelay is how long a simulated feed load takes.
	LoadDelay time.Duration `yaml:"load_delay" mapstructure:"load_delay"`
	// FeedSize is the number of items the feed starts with.
	FeedSize int    `yaml:"feed_size" mapstructure:"feed_size"`
	LogFile  string `yaml:"log_file" mapstructure:"log_file"`
	Debug    bool   `yaml:"debug" mapstructure:"debug"`
}

// SetDefaults registers every setting's default on v.
func SetDefaults(v *viper.Viper) {
	def := refresh.DefaultConfig()
	v.SetDefault("refresh.expanded_height", def.ExpandedHeight)
	v.SetDefault("refresh.animation_duration", def.AnimationDuration)
	v.SetDefault("refresh.style", def.Style)
	v.SetDefault("refresh.content_view", def.ContentView)
	v.SetDefault("refresh.theme", def.Theme)
	v.SetDefault("backend", BackendTea)
	v.SetDefault("load_delay", 1500*time.Millisecond)
	v.SetDefault("feed_size", 5)
	v.SetDefault("log_file", "refreshdemo.log")
	v.SetDefault("debug", false)
}

// New returns a viper instance with defaults and environment binding. A
// non-empty file is read as YAML.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file == "" {
		return v, nil
	}
	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", file, err)
	}
	return v, nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the demo settings and the refresh settings they carry.
func (s *Settings) Validate() error {
	switch s.Backend {
	case BackendTea, BackendTview:
	default:
		return fmt.Errorf("unknown backend %q (use %s or %s)", s.Backend, BackendTea, BackendTview)
	}
	if s.LoadDelay < 0 {
		return errors.New("load_delay must not be negative")
	}
	if s.FeedSize < 0 {
		return errors.New("feed_size must not be negative")
	}
	return s.Refresh.Validate()
}
