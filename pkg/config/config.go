// Package config resolves orrery settings from command line flags and
// ORRERY_* environment variables. No configuration file is read.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/ansipixels/orrery/pkg/capture"
	"github.com/ansipixels/orrery/pkg/kinematics"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables bound to every key.
const EnvPrefix = "ORRERY"

// Config holds the settings shared by all commands.
type Config struct {
	FPS        int     `mapstructure:"fps"`
	DayStep    float64 `mapstructure:"day-step"`
	StartDay   float64 `mapstructure:"start-day"`
	Prefix     string  `mapstructure:"prefix"`
	CaptureDir string  `mapstructure:"capture-dir"`
	LogLevel   string  `mapstructure:"log-level"`
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Mesh       string  `mapstructure:"mesh"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("fps", 60)
	v.SetDefault("day-step", kinematics.DefaultStep)
	v.SetDefault("start-day", 0.0)
	v.SetDefault("prefix", capture.DefaultPrefix)
	v.SetDefault("capture-dir", "")
	v.SetDefault("log-level", "info")
	v.SetDefault("width", 1024)
	v.SetDefault("height", 768)
	v.SetDefault("mesh", "")
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves the configuration: flags that were set win over environment
// variables, which win over defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := New()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no frame loop can run with.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("invalid fps %d: must be positive", c.FPS)
	}
	if math.IsNaN(c.DayStep) || math.IsInf(c.DayStep, 0) || c.DayStep <= 0 {
		return fmt.Errorf("invalid day-step %v: must be a positive finite number", c.DayStep)
	}
	if math.IsNaN(c.StartDay) || math.IsInf(c.StartDay, 0) {
		return fmt.Errorf("invalid start-day %v", c.StartDay)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Prefix == "" {
		return fmt.Errorf("capture prefix must not be empty")
	}
	return nil
}
