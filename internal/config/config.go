package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	Log         LogConfig
	Server      ServerConfig
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"oneof=json text"`
}

// ServerConfig holds settings for the local invoke server
type ServerConfig struct {
	RateLimitRPS         float64       `validate:"gt=0"`
	RateLimitBurst       int           `validate:"gt=0"`
	MaxBodyBytes         int64         `validate:"gt=0"`
	SlowRequestThreshold time.Duration `validate:"gte=0"`
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("SLOW_REQUEST_THRESHOLD", time.Second)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		Server: ServerConfig{
			RateLimitRPS:         v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst:       v.GetInt("RATE_LIMIT_BURST"),
			MaxBodyBytes:         v.GetInt64("MAX_BODY_BYTES"),
			SlowRequestThreshold: v.GetDuration("SLOW_REQUEST_THRESHOLD"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Default returns the configuration used when nothing is set in the environment
func Default() *Config {
	return &Config{
		Environment: "development",
		Port:        "8080",
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Server: ServerConfig{
			RateLimitRPS:         50,
			RateLimitBurst:       100,
			MaxBodyBytes:         1 << 20,
			SlowRequestThreshold: time.Second,
		},
	}
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the application runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
