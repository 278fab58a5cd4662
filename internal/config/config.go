package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizzeria-api/internal/database"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(EnvironmentLevel(GetEnvWithDefault("APP_ENV", "development")))
}

// EnvironmentLevel is the log level used when LOG_LEVEL is not set
func EnvironmentLevel(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port            int           `json:"port"`
	Host            string        `json:"host"`
	Environment     string        `json:"environment"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Logging configuration, empty means derived from Environment
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret string `json:"jwt_secret"`

	// Public API rate limit per client IP, RateLimit <= 0 disables it
	RateLimit float64 `json:"rate_limit"`
	RateBurst int     `json:"rate_burst"`

	Database database.DatabaseConfig `json:"database"`
}

// Address is the listen address of the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Level resolves LogLevel, falling back to the environment default when it
// is unset or invalid.
func (c *Config) Level() logrus.Level {
	if c.LogLevel != "" {
		if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
			return level
		}
	}
	return EnvironmentLevel(c.Environment)
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, LogLevel: %s, JWTSecret: [REDACTED], RateLimit: %g, RateBurst: %d, ShutdownTimeout: %s, Database: %s}",
		c.Port, c.Host, c.Environment, c.LogLevel, c.RateLimit, c.RateBurst, c.ShutdownTimeout, c.Database.String())
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any environment variable is present but invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid APP_PORT")
	}
	if port < 1 || port > 65535 {
		return nil, errors.Errorf("APP_PORT out of range: %d", port)
	}

	db, err := database.LoadConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		Port:            port,
		Host:            GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:     GetEnvWithDefault("APP_ENV", "development"),
		ShutdownTimeout: GetEnvAsType("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		JWTSecret:       GetEnvWithDefault("JWT_SECRET", "secret"),
		RateLimit:       GetEnvAsType("RATE_LIMIT_RPS", 0.0),
		RateBurst:       GetEnvAsType("RATE_LIMIT_BURST", 20),
		Database:        db,
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling. Unparsable values fall back to defaultValue.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	case float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue
		}
		return any(floatValue).(T)
	case time.Duration:
		duration, err := time.ParseDuration(value)
		if err != nil {
			return defaultValue
		}
		return any(duration).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
