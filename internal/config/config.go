package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server  ServerConfig
	App     AppConfig
	Storage StorageConfig
	Cache   CacheConfig
	Session SessionConfig
	Reorder ReorderConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"agrovet-api"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Debug       bool   `envconfig:"APP_DEBUG" default:"false"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
	SeedData    bool   `envconfig:"APP_SEED_DATA" default:"true"` // Seed demo records on first run
}

// StorageConfig holds storage backend settings.
type StorageConfig struct {
	Type string `envconfig:"STORAGE_TYPE" default:"sqlite"` // sqlite, mysql, or memory
	Path string `envconfig:"STORAGE_PATH" default:"./data/agrovet.db"`
	// MySQL settings
	Host     string `envconfig:"STORAGE_DB_HOST" default:"localhost"`
	Port     int    `envconfig:"STORAGE_DB_PORT" default:"3306"`
	Name     string `envconfig:"STORAGE_DB_NAME" default:"agrovet"`
	User     string `envconfig:"STORAGE_DB_USER" default:"root"`
	Password string `envconfig:"STORAGE_DB_PASS" default:""`
}

// CacheConfig holds cache settings.
type CacheConfig struct {
	Type string `envconfig:"CACHE_TYPE" default:"memory"` // memory or redis

	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// SessionConfig holds login session settings.
type SessionConfig struct {
	TTL time.Duration `envconfig:"SESSION_TTL" default:"1h"`
}

// ReorderConfig holds the low-stock scanner settings.
type ReorderConfig struct {
	Enabled      bool          `envconfig:"REORDER_SCAN_ENABLED" default:"true"`
	ScanInterval time.Duration `envconfig:"REORDER_SCAN_INTERVAL" default:"1h"`
}

// MySQLDSN returns the MySQL data source name.
func (s *StorageConfig) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		s.User, s.Password, s.Host, s.Port, s.Name)
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RedisAddress returns the Redis address in host:port format.
func (c *CacheConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// IsDevelopment returns true if running in development mode.
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
