package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"go-money/logging"
)

// Config holds the server configuration.
type Config struct {
	// Addr the listen address of the HTTP server
	Addr string
	// LogLevel minimum level written: debug, info, warn, error or none
	LogLevel string
}

// Load reads configuration from the environment, after merging a .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	cfg := &Config{
		Addr:     v.GetString("ADDR"),
		LogLevel: v.GetString("LOG_LEVEL"),
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return cfg, nil
}
