package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// Service
	HTTPPort int `env:"HTTP_PORT" default:"8080"`

	// Review storage
	StorageBackend string `env:"STORAGE_BACKEND" default:"redis"` // redis | postgres | memory
	DatabaseURL    string `env:"DATABASE_URL"`

	// Redis
	RedisURL      string `env:"REDIS_URL" default:"redis://localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL" default:"3600"` // seconds, catalog response cache

	// Catalog API
	TMDBAPIURL string `env:"TMDB_API_URL" default:"https://api.themoviedb.org/3"`
	TMDBAPIKey string `env:"TMDB_API_KEY"`

	// Development
	LogLevel    string   `env:"LOG_LEVEL" default:"debug"`
	LogFormat   string   `env:"LOG_FORMAT" default:"text"`
	CORSOrigins []string `env:"CORS_ORIGINS" default:"http://localhost:3000"`

	// Shutdown
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional; system env vars still apply without it
	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}

	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}

	// Storage
	if err := loadEnvString(&config.StorageBackend, "STORAGE_BACKEND", "redis"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.DatabaseURL, "DATABASE_URL", ""); err != nil {
		return nil, err
	}

	// Redis
	if err := loadEnvString(&config.RedisURL, "REDIS_URL", "redis://localhost:6379"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.RedisPassword, "REDIS_PASSWORD", ""); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.CacheTTL, "CACHE_TTL", 3600); err != nil {
		return nil, err
	}

	// Catalog API
	if err := loadEnvString(&config.TMDBAPIURL, "TMDB_API_URL", "https://api.themoviedb.org/3"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.TMDBAPIKey, "TMDB_API_KEY", ""); err != nil {
		return nil, err
	}

	// Development
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "debug"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogFormat, "LOG_FORMAT", "text"); err != nil {
		return nil, err
	}
	if err := loadEnvStringSlice(&config.CORSOrigins, "CORS_ORIGINS", []string{"http://localhost:3000"}); err != nil {
		return nil, err
	}

	if err := loadEnvDuration(&config.ShutdownTimeout, "SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringSlice(target *[]string, key string, defaultValue []string) error {
	if value := os.Getenv(key); value != "" {
		*target = strings.Split(value, ",")
		for i, v := range *target {
			(*target)[i] = strings.TrimSpace(v)
		}
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		errors = append(errors, "HTTP_PORT must be between 1 and 65535")
	}

	validBackends := []string{"redis", "postgres", "memory"}
	if !contains(validBackends, c.StorageBackend) {
		errors = append(errors, fmt.Sprintf("STORAGE_BACKEND must be one of: %s", strings.Join(validBackends, ", ")))
	}
	if c.StorageBackend == "postgres" && c.DatabaseURL == "" {
		errors = append(errors, "DATABASE_URL is required when STORAGE_BACKEND is postgres")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	validLogFormats := []string{"text", "json"}
	if !contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: %s", strings.Join(validLogFormats, ", ")))
	}

	if c.CacheTTL < 0 {
		errors = append(errors, "CACHE_TTL must not be negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
