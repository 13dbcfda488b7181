package config

import (
	"fmt"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration of the metalcalc command.
type Config struct {
	KeyRate  string // initial key rate, for example "key=50-51ref"
	Layout   string // output layout of metal in one-shot mode
	LogLevel string
}

// Load reads the configuration from METALCALC_* environment variables.
// A .env file in the working directory is loaded first if present;
// variables already set in the environment take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("METALCALC")
	v.SetDefault("KEY_RATE", "")
	v.SetDefault("LAYOUT", "%r ref")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	cfg := &Config{
		KeyRate:  strings.TrimSpace(v.GetString("KEY_RATE")),
		Layout:   v.GetString("LAYOUT"),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
	}
	if _, err := cfg.LevelOption(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// LevelOption returns the log filter for the configured level.
func (c *Config) LevelOption() (level.Option, error) {
	switch c.LogLevel {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, fmt.Errorf("invalid log level %q", c.LogLevel)
}
