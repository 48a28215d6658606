package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string `validate:"required,numeric"`
	DBDriver    string `validate:"oneof=sqlite postgres"`
	DBName      string `validate:"required_if=DBDriver sqlite"`
	DBDSN       string `validate:"required_if=DBDriver postgres"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	AppEnv      string `validate:"oneof=development production"`
	CORSOrigins string `validate:"required"`
}

var validate = validator.New()

// LoadConfig reads configuration from a .env file (if present) and the environment
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBName:      getEnv("DB_NAME", "reviews.db"),
		DBDSN:       getEnv("DB_DSN", ""),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		AppEnv:      strings.ToLower(getEnv("APP_ENV", "development")),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether APP_ENV is production
func (cfg *Config) IsProduction() bool {
	return cfg.AppEnv == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
