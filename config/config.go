package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig
	Planner     PlannerConfig
	Session     SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PlannerConfig holds scheduling defaults.
type PlannerConfig struct {
	Timezone         string // IANA zone used when the caller supplies none
	DefaultTimeOfDay string // HH:MM applied when the interview sets no time
	MinSessions      int    // Realism-check threshold
}

// SessionConfig bounds the interview session registry.
type SessionConfig struct {
	Capacity   int
	TTLMinutes int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/goal-planner/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/goal-planner/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.DefaultTimeOfDay = viper.GetString("planner.default_time_of_day")
	cfg.Planner.MinSessions = viper.GetInt("planner.min_sessions")
	if tz := viper.GetString("planner_timezone"); tz != "" {
		cfg.Planner.Timezone = tz
	}

	cfg.Session.Capacity = viper.GetInt("session.capacity")
	cfg.Session.TTLMinutes = viper.GetInt("session.ttl_minutes")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("planner.default_time_of_day", "09:00")
	viper.SetDefault("planner.min_sessions", 10)

	viper.SetDefault("session.capacity", 256)
	viper.SetDefault("session.ttl_minutes", 30)
}
