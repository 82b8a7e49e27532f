package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Production backend
	BackendURL     string `mapstructure:"BACKEND_URL"`
	RealtimeURL    string `mapstructure:"REALTIME_URL"`
	HTTPTimeoutSec int    `mapstructure:"HTTP_TIMEOUT_SEC"`
	RPCTimeoutMs   int    `mapstructure:"RPC_TIMEOUT_MS"`
	// Engine.IO revision of the realtime channel, 3 or 4
	RealtimeEIO int `mapstructure:"REALTIME_EIO"`

	// Episode to open on startup; 0 resolves the current episode
	EpisodeID int64 `mapstructure:"EPISODE_ID"`

	// Switch sequencing
	SwitchDelayMs int `mapstructure:"SWITCH_DELAY_MS"`

	// Scene layout file; empty uses the built-in layout
	SceneLayoutPath string `mapstructure:"SCENE_LAYOUT_PATH"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.BackendURL = strings.TrimRight(config.BackendURL, "/")

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("BACKEND_URL", "http://localhost:8080/api")
	viper.SetDefault("REALTIME_URL", "ws://localhost:8080/socket.io/")
	viper.SetDefault("HTTP_TIMEOUT_SEC", 10)
	viper.SetDefault("RPC_TIMEOUT_MS", 5000)
	viper.SetDefault("REALTIME_EIO", 3)

	viper.SetDefault("EPISODE_ID", 0)
	viper.SetDefault("SWITCH_DELAY_MS", 600)
	viper.SetDefault("SCENE_LAYOUT_PATH", "")

	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func validate(config *Config) error {
	if config.BackendURL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if config.RealtimeURL == "" {
		return fmt.Errorf("REALTIME_URL is required")
	}
	if config.HTTPTimeoutSec <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SEC must be positive")
	}
	if config.RPCTimeoutMs <= 0 {
		return fmt.Errorf("RPC_TIMEOUT_MS must be positive")
	}
	if config.RealtimeEIO != 3 && config.RealtimeEIO != 4 {
		return fmt.Errorf("REALTIME_EIO must be 3 or 4")
	}
	if config.SwitchDelayMs < 0 {
		return fmt.Errorf("SWITCH_DELAY_MS must not be negative")
	}
	return nil
}

// SwitchDelay is the settle delay between showing a main source and
// re-stacking it.
func (c *Config) SwitchDelay() time.Duration {
	return time.Duration(c.SwitchDelayMs) * time.Millisecond
}

// RPCTimeout bounds every realtime call
func (c *Config) RPCTimeout() time.Duration {
	return time.Duration(c.RPCTimeoutMs) * time.Millisecond
}

// HTTPTimeout bounds every REST call
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
