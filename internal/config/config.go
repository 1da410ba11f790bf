package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MINIGAMES"

type Log struct {
	File       string `mapstructure:"log_file"`
	MaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	MaxBackups int    `mapstructure:"log_max_backups"`
	MaxAgeDays int    `mapstructure:"log_max_age_days"`
}

type Config struct {
	Mode           string        `mapstructure:"mode"`
	Addr           string        `mapstructure:"addr"`
	SnakeTick      time.Duration `mapstructure:"snake_tick"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	Log            `mapstructure:",squash"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"addr":            c.Addr,
		"snake_tick":      c.SnakeTick.String(),
		"allowed_origins": c.AllowedOrigins,
		"log_file":        c.File,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "production")
	v.SetDefault("addr", ":8080")
	v.SetDefault("snake_tick", 100*time.Millisecond)
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 10)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age_days", 28)
}

// Flags declares the command line flags understood by [Load].
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file path")
	fs.String("mode", "production", "development or production")
	fs.String("addr", ":8080", "listen address")
	fs.Duration("snake_tick", 100*time.Millisecond, "snake tick period")
	fs.String("log_file", "", "rotate logs into this file")
	return fs
}

// Load merges defaults, the optional config file, MINIGAMES_* environment
// variables and flags, in increasing order of precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if path, err := fs.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("unable to read config %s: %w", path, err)
			}
		}
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("unable to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	switch c.Mode {
	case "development", "production":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.SnakeTick <= 0 {
		return errors.New("snake_tick must be positive")
	}
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	return nil
}
