package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvConfigPath = "ROCALC_CONFIG"
	EnvLogLevel   = "ROCALC_LOG_LEVEL"
)

// DefaultPath is the config file used when --config is not given.
const DefaultPath = "config/rocalc.yaml"

// Catalog drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverNone     = "none"
)

// ErrUnknownDriver is returned for a catalog driver other than postgres, sqlite or none.
var ErrUnknownDriver = errors.New("unknown catalog driver")

// Config holds all configuration for the rocalc CLI.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// LogConfig configures slog output and file rotation.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json

	// File enables a rotated log file in addition to stderr.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// CatalogConfig selects the item/skill catalog backend.
type CatalogConfig struct {
	Driver     string         `yaml:"driver"`
	Database   DatabaseConfig `yaml:"database"`
	SQLitePath string         `yaml:"sqlite_path"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Catalog: CatalogConfig{
			Driver: DriverNone,
			Database: DatabaseConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				User:     "rocalc",
				Password: "rocalc",
				DBName:   "rocalc",
				SSLMode:  "disable",
			},
			SQLitePath: "data/catalog.db",
		},
	}
}

// Validate checks enum fields.
func (c Config) Validate() error {
	switch c.Catalog.Driver {
	case DriverPostgres, DriverSQLite, DriverNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Catalog.Driver)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// ResolvePath returns $ROCALC_CONFIG when set, else path.
func ResolvePath(path string) string {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return path
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults. $ROCALC_LOG_LEVEL overrides log.level.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = strings.ToLower(lvl)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}
