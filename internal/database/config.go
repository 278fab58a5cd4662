package database

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (sqlite, postgres, mysql)
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"`

	// Server based drivers
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"pizzeria"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// URL replaces the individual settings above when set
	URL string `env:"DATABASE_URL"`

	// SQLite-specific configuration
	Path string `env:"DB_PATH" envDefault:"pizzeria.sqlite"`

	MaxRetries int  `env:"DB_MAX_RETRIES" envDefault:"5"`
	Seed       bool `env:"DB_SEED" envDefault:"true"`
}

// LoadConfig reads the DB_* variables from the environment
func LoadConfig() (DatabaseConfig, error) {
	cfg, err := env.ParseAs[DatabaseConfig]()
	if err != nil {
		return DatabaseConfig{}, errors.Wrap(err, "parse database config")
	}
	cfg.Driver = normalizeDriver(cfg.Driver)
	switch cfg.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		return DatabaseConfig{}, errors.Errorf("unsupported database driver: %s (supported: sqlite, postgres, mysql)", cfg.Driver)
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	return cfg, nil
}

func normalizeDriver(driver string) string {
	switch d := strings.ToLower(strings.TrimSpace(driver)); d {
	case "", "sqlite3":
		return "sqlite"
	case "postgresql", "pg":
		return "postgres"
	default:
		return d
	}
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, URL: %s, Path: %s, MaxRetries: %d, Seed: %t}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, MaskURL(c.URL), c.Path, c.MaxRetries, c.Seed)
}

// MaskURL replaces the password of a connection URL
func MaskURL(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}
	if parsed.User != nil {
		if _, ok := parsed.User.Password(); ok {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}
	return parsed.String()
}

// InMemory reports whether the sqlite database lives only in process memory
func (c *DatabaseConfig) InMemory() bool {
	return normalizeDriver(c.Driver) == "sqlite" &&
		(c.Path == ":memory:" || strings.Contains(c.Path, "mode=memory"))
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	driver := normalizeDriver(c.Driver)
	if c.URL != "" && driver != "sqlite" {
		return c.URL
	}
	switch driver {
	case "postgres":
		port := c.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, port, c.SSLMode)
	case "mysql":
		port := c.Port
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, port, c.Name)
	case "sqlite":
		return c.Path
	default:
		return ""
	}
}
