package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// StoreDriverPostgres selects the PostgreSQL-backed repositories.
	StoreDriverPostgres = "postgres"
	// StoreDriverMongo selects the MongoDB-backed repositories.
	StoreDriverMongo = "mongo"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	GzipEnabled  bool

	// Storage backend
	StoreDriver string

	// PostgreSQL configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	DBAutoMigrate       bool
	MigrationsDir       string

	// MongoDB configuration
	MongoURI      string
	MongoDatabase string
	MongoTimeout  time.Duration

	// Auth configuration
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	SessionCookieSecure  bool
	BcryptCost           int

	// Search configuration
	SearchToolLimit       int
	SearchCategoryLimit   int
	SearchComparisonLimit int

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables. A .env file in the
// working directory, if present, fills in variables that are not already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		ReadTimeout:           getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:          getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:           getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		GzipEnabled:           getEnvBool("GZIP_ENABLED", true),
		StoreDriver:           getEnv("STORE_DRIVER", StoreDriverPostgres),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnvInt("DB_PORT", 5432),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", "postgres"),
		DBName:                getEnv("DB_NAME", "saascompare"),
		DBSSLMode:             getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:            int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:            int32(getEnvInt("DB_MIN_CONNS", 2)),
		DBMaxConnLifetime:     getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:     getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:   getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		DBAutoMigrate:         getEnvBool("DB_AUTO_MIGRATE", false),
		MigrationsDir:         getEnv("MIGRATIONS_DIR", "./migrations"),
		MongoURI:              getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:         getEnv("MONGO_DATABASE", "saascompare"),
		MongoTimeout:          getEnvDuration("MONGO_TIMEOUT", 10*time.Second),
		SessionTTL:            getEnvDuration("SESSION_TTL", 30*24*time.Hour),
		SessionSweepInterval:  getEnvDuration("SESSION_SWEEP_INTERVAL", time.Hour),
		SessionCookieSecure:   getEnvBool("SESSION_COOKIE_SECURE", false),
		BcryptCost:            getEnvInt("BCRYPT_COST", 10),
		SearchToolLimit:       getEnvInt("SEARCH_TOOL_LIMIT", 5),
		SearchCategoryLimit:   getEnvInt("SEARCH_CATEGORY_LIMIT", 3),
		SearchComparisonLimit: getEnvInt("SEARCH_COMPARISON_LIMIT", 3),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	case StoreDriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required")
		}
		if c.MongoDatabase == "" {
			return fmt.Errorf("MONGO_DATABASE is required")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: %s, %s", StoreDriverPostgres, StoreDriverMongo)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if c.SearchToolLimit < 1 || c.SearchCategoryLimit < 1 || c.SearchComparisonLimit < 1 {
		return fmt.Errorf("SEARCH_*_LIMIT values must be at least 1")
	}
	return nil
}

// PostgresDSN returns the connection string for the configured database.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
