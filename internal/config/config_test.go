package config

import (
	"os"
	"testing"
	"time"
)

var envVars = []string{
	"SERVER_PORT",
	"STORE_DRIVER",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSL_MODE",
	"DB_MAX_CONNS",
	"DB_MIN_CONNS",
	"DB_AUTO_MIGRATE",
	"MONGO_URI",
	"MONGO_DATABASE",
	"SESSION_TTL",
	"SESSION_SWEEP_INTERVAL",
	"BCRYPT_COST",
	"SEARCH_TOOL_LIMIT",
	"SEARCH_CATEGORY_LIMIT",
	"SEARCH_COMPARISON_LIMIT",
	"GZIP_ENABLED",
}

func restoreEnv(t *testing.T) {
	t.Helper()
	originalEnv := make(map[string]string)
	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	t.Cleanup(func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	})

	for _, env := range envVars {
		os.Unsetenv(env)
	}
}

func TestLoad(t *testing.T) {
	restoreEnv(t)

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.StoreDriver != StoreDriverPostgres {
			t.Errorf("StoreDriver = %v, want postgres", cfg.StoreDriver)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "saascompare" {
			t.Errorf("DBName = %v, want saascompare", cfg.DBName)
		}
		if cfg.DBAutoMigrate {
			t.Errorf("DBAutoMigrate = true, want false")
		}
		if cfg.MongoDatabase != "saascompare" {
			t.Errorf("MongoDatabase = %v, want saascompare", cfg.MongoDatabase)
		}
		if cfg.SearchToolLimit != 5 {
			t.Errorf("SearchToolLimit = %v, want 5", cfg.SearchToolLimit)
		}
		if cfg.SearchCategoryLimit != 3 {
			t.Errorf("SearchCategoryLimit = %v, want 3", cfg.SearchCategoryLimit)
		}
		if cfg.SearchComparisonLimit != 3 {
			t.Errorf("SearchComparisonLimit = %v, want 3", cfg.SearchComparisonLimit)
		}
		if cfg.SessionTTL != 30*24*time.Hour {
			t.Errorf("SessionTTL = %v, want 720h", cfg.SessionTTL)
		}
		if !cfg.GzipEnabled {
			t.Errorf("GzipEnabled = false, want true")
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("STORE_DRIVER", "mongo")
		os.Setenv("MONGO_URI", "mongodb://mongo.example.com:27017")
		os.Setenv("MONGO_DATABASE", "catalog")
		os.Setenv("DB_AUTO_MIGRATE", "true")
		os.Setenv("SESSION_TTL", "2h")
		os.Setenv("BCRYPT_COST", "12")
		os.Setenv("SEARCH_TOOL_LIMIT", "8")
		os.Setenv("GZIP_ENABLED", "false")
		defer func() {
			for _, env := range envVars {
				os.Unsetenv(env)
			}
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.StoreDriver != StoreDriverMongo {
			t.Errorf("StoreDriver = %v, want mongo", cfg.StoreDriver)
		}
		if cfg.MongoURI != "mongodb://mongo.example.com:27017" {
			t.Errorf("MongoURI = %v", cfg.MongoURI)
		}
		if cfg.MongoDatabase != "catalog" {
			t.Errorf("MongoDatabase = %v, want catalog", cfg.MongoDatabase)
		}
		if !cfg.DBAutoMigrate {
			t.Errorf("DBAutoMigrate = false, want true")
		}
		if cfg.SessionTTL != 2*time.Hour {
			t.Errorf("SessionTTL = %v, want 2h", cfg.SessionTTL)
		}
		if cfg.BcryptCost != 12 {
			t.Errorf("BcryptCost = %v, want 12", cfg.BcryptCost)
		}
		if cfg.SearchToolLimit != 8 {
			t.Errorf("SearchToolLimit = %v, want 8", cfg.SearchToolLimit)
		}
		if cfg.GzipEnabled {
			t.Errorf("GzipEnabled = true, want false")
		}
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		os.Setenv("DB_PORT", "not-a-number")
		os.Setenv("SESSION_TTL", "forever")
		defer os.Unsetenv("DB_PORT")
		defer os.Unsetenv("SESSION_TTL")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.SessionTTL != 30*24*time.Hour {
			t.Errorf("SessionTTL = %v, want 720h", cfg.SessionTTL)
		}
	})

	t.Run("duration fields have correct defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
		if cfg.DBMaxConnIdleTime != 30*time.Minute {
			t.Errorf("DBMaxConnIdleTime = %v, want 30m", cfg.DBMaxConnIdleTime)
		}
		if cfg.SessionSweepInterval != time.Hour {
			t.Errorf("SessionSweepInterval = %v, want 1h", cfg.SessionSweepInterval)
		}
		if cfg.MongoTimeout != 10*time.Second {
			t.Errorf("MongoTimeout = %v, want 10s", cfg.MongoTimeout)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort:            "8080",
			StoreDriver:           StoreDriverPostgres,
			DBHost:                "localhost",
			DBUser:                "postgres",
			DBName:                "saascompare",
			SessionTTL:            time.Hour,
			SessionSweepInterval:  time.Hour,
			BcryptCost:            10,
			SearchToolLimit:       5,
			SearchCategoryLimit:   3,
			SearchComparisonLimit: 3,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid postgres", func(c *Config) {}, false},
		{"valid mongo", func(c *Config) {
			c.StoreDriver = StoreDriverMongo
			c.MongoURI = "mongodb://localhost"
			c.MongoDatabase = "db"
		}, false},
		{"unknown driver", func(c *Config) { c.StoreDriver = "sqlite" }, true},
		{"missing port", func(c *Config) { c.ServerPort = "" }, true},
		{"missing db host", func(c *Config) { c.DBHost = "" }, true},
		{"mongo without uri", func(c *Config) {
			c.StoreDriver = StoreDriverMongo
			c.MongoDatabase = "db"
		}, true},
		{"zero session ttl", func(c *Config) { c.SessionTTL = 0 }, true},
		{"bcrypt cost too low", func(c *Config) { c.BcryptCost = 2 }, true},
		{"zero tool limit", func(c *Config) { c.SearchToolLimit = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	c := &Config{
		DBUser:     "app",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     5433,
		DBName:     "saascompare",
		DBSSLMode:  "disable",
	}
	want := "postgres://app:secret@db:5433/saascompare?sslmode=disable"
	if got := c.PostgresDSN(); got != want {
		t.Errorf("PostgresDSN() = %v, want %v", got, want)
	}
}
