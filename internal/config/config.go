package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	CORS      CORSConfig
	Logging   LoggingConfig
	Places    PlacesConfig
	Discovery DiscoveryConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver         string // postgres, memory
	URL            string // Full PostgreSQL URL
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	MigrationsPath string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int
	Host string
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// PlacesConfig holds the external places provider settings.
type PlacesConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// DiscoveryConfig holds the search policy of discovery runs.
type DiscoveryConfig struct {
	Queries            []string
	CategoryType       string
	MaxResultsPerQuery int
	SearchInterval     time.Duration
	DetailsInterval    time.Duration
}

// Load reads configuration from config/local.env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load("config/local.env")

	cfg := &Config{}

	if err := cfg.loadDatabase(); err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	if err := cfg.loadServer(); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}

	cfg.loadCORS()
	cfg.loadLogging()

	if err := cfg.loadPlaces(); err != nil {
		return nil, fmt.Errorf("load places config: %w", err)
	}

	if err := cfg.loadDiscovery(); err != nil {
		return nil, fmt.Errorf("load discovery config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadDatabase() error {
	c.Database.Driver = strings.ToLower(getEnvOrDefault("STORE_DRIVER", DriverPostgres))
	c.Database.MigrationsPath = getEnvOrDefault("MIGRATIONS_PATH", "migrations")

	c.Database.URL = os.Getenv("DATABASE_URL")
	if c.Database.URL != "" {
		return nil
	}

	c.Database.Host = getEnvOrDefault("DB_HOST", "localhost")
	c.Database.User = os.Getenv("DB_USER")
	c.Database.Password = os.Getenv("DB_PASSWORD")
	c.Database.Name = os.Getenv("DB_NAME")
	c.Database.SSLMode = getEnvOrDefault("DB_SSLMODE", "disable")

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	c.Database.Port = port

	if c.Database.Host != "" && c.Database.User != "" && c.Database.Name != "" {
		c.Database.URL = fmt.Sprintf(
			"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
			c.Database.User,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
			c.Database.SSLMode,
		)
	}

	return nil
}

func (c *Config) loadServer() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	c.Server.Port = port
	c.Server.Host = getEnvOrDefault("HOST", "0.0.0.0")
	return nil
}

func (c *Config) loadCORS() {
	c.CORS.AllowedOrigins = splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"))
}

func (c *Config) loadLogging() {
	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", "info")
	c.Logging.Format = getEnvOrDefault("LOG_FORMAT", "json")
}

func (c *Config) loadPlaces() error {
	c.Places.APIKey = os.Getenv("GOOGLE_PLACES_API_KEY")
	if c.Places.APIKey == "" {
		c.Places.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	}
	c.Places.BaseURL = getEnvOrDefault("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api")

	timeout, err := time.ParseDuration(getEnvOrDefault("PLACES_TIMEOUT", "30s"))
	if err != nil {
		return fmt.Errorf("invalid PLACES_TIMEOUT: %w", err)
	}
	c.Places.Timeout = timeout
	return nil
}

func (c *Config) loadDiscovery() error {
	if raw := os.Getenv("DISCOVERY_QUERIES"); raw != "" {
		c.Discovery.Queries = splitList(raw)
	}
	c.Discovery.CategoryType = getEnvOrDefault("DISCOVERY_CATEGORY_TYPE", "bar")

	maxResults, err := strconv.Atoi(getEnvOrDefault("DISCOVERY_MAX_RESULTS", "5"))
	if err != nil {
		return fmt.Errorf("invalid DISCOVERY_MAX_RESULTS: %w", err)
	}
	c.Discovery.MaxResultsPerQuery = maxResults

	searchInterval, err := time.ParseDuration(getEnvOrDefault("DISCOVERY_SEARCH_INTERVAL", "500ms"))
	if err != nil {
		return fmt.Errorf("invalid DISCOVERY_SEARCH_INTERVAL: %w", err)
	}
	c.Discovery.SearchInterval = searchInterval

	detailsInterval, err := time.ParseDuration(getEnvOrDefault("DISCOVERY_DETAILS_INTERVAL", "300ms"))
	if err != nil {
		return fmt.Errorf("invalid DISCOVERY_DETAILS_INTERVAL: %w", err)
	}
	c.Discovery.DetailsInterval = detailsInterval

	return nil
}

// Validate checks that all required configuration is present and valid.
// A missing places API key is reported by the discovery run, not here.
func (c *Config) Validate() error {
	var errors []string

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			errors = append(errors, "DATABASE_URL is required (or DB_HOST, DB_USER, DB_NAME)")
		}
	case DriverMemory:
	default:
		errors = append(errors, "STORE_DRIVER must be one of: postgres, memory")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		errors = append(errors, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		errors = append(errors, "LOG_FORMAT must be one of: json, text")
	}

	if c.Discovery.MaxResultsPerQuery == 0 || c.Discovery.MaxResultsPerQuery < -1 {
		errors = append(errors, "DISCOVERY_MAX_RESULTS must be positive, or -1 for unlimited")
	}
	if c.Discovery.SearchInterval < 0 || c.Discovery.DetailsInterval < 0 {
		errors = append(errors, "DISCOVERY_*_INTERVAL must not be negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
