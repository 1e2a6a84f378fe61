// Package config manages environment variables.
//
// It reads variable from the `.env` file,
// loads them into structured Go types (struct), and
// validates that required values are present so they
// can be reused accross the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: triggers godotenv's autoload feature.
	// If a `.env` file exists, it gets loaded into process env
	// before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

/*
	Env vars are read using the HBNB_ prefix.
	Keys are lowercased with the prefix removed, and nested struct fields
	are addressed with "dot notation":

	  HBNB_SERVER.PORT        -> server.port        -> Config.Server.Port
	  HBNB_STORAGE.TYPE       -> storage.type       -> Config.Storage.Type
	  HBNB_DATABASE.PASSWORD  -> database.password  -> Config.Database.Password
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "HBNB_"

// Storage backends selectable through storage.type.
const (
	StorageFile = "file"
	StorageDB   = "db"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Storage       StorageConfig        `koanf:"storage" validate:"required"`
	Database      DatabaseConfig       `koanf:"database"`
	Redis         RedisConfig          `koanf:"redis"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are in seconds. RateLimit is requests per second per client IP;
// zero disables the limiter.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	RateLimit          float64  `koanf:"rate_limit" validate:"min=0"`
}

// StorageConfig selects the storage engine.
//
// Type "file" keeps every object in a single JSON file at FilePath.
// Type "db" stores rows in PostgreSQL (see DatabaseConfig).
type StorageConfig struct {
	Type     string `koanf:"type" validate:"required,oneof=file db"`
	FilePath string `koanf:"file_path"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// Only used (and only validated) when the "db" storage engine is selected.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port". Empty disables Redis and background jobs.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// IntegrationConfig stores third-party API credentials.
// An empty ResendAPIKey turns outgoing email into a logged no-op.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// DefaultStorageFile is where the file engine keeps its objects when
// storage.file_path is not set.
const DefaultStorageFile = "file.json"

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the resulting config.
//
// Startup errors are fatal: the process exits with a console log line.
func LoadConfig() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	mainConfig, err := Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load config.")
	}

	return mainConfig, nil
}

// Load is LoadConfig without the fatal exit, so callers (and tests) can
// inspect the error.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate runs tag validation, applies defaults, and checks the rules that
// depend on more than one block.
func (c *Config) Validate() error {
	validate := validator.New()

	// Database is excluded here and checked below, only for the db engine.
	if err := validate.StructExcept(c, "Database"); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch c.Storage.Type {
	case StorageFile:
		if c.Storage.FilePath == "" {
			c.Storage.FilePath = DefaultStorageFile
		}
	case StorageDB:
		if err := validate.Struct(c.Database); err != nil {
			return fmt.Errorf("database config validation failed: %w", err)
		}
	}

	if c.Integration.EmailFrom == "" {
		c.Integration.EmailFrom = "HBnB <onboarding@resend.dev>"
	}

	// If observability config wasn't provided, inject a default.
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so
	// logs and traces are labeled consistently.
	c.Observability.ServiceName = "hbnb"
	c.Observability.Environment = c.Primary.Env

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}

// UsesDatabase reports whether the relational storage engine is selected.
func (c *Config) UsesDatabase() bool {
	return c.Storage.Type == StorageDB
}
