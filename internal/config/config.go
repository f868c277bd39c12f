// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Session backend names accepted in SESSION_BACKEND.
const (
	SessionBackendDB     = "db"
	SessionBackendMemory = "memory"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// ListenAddr is the address the HTTP server listens on (e.g. :8080).
	ListenAddr string `mapstructure:"LISTEN_ADDR"`
	// StorageDriver selects the storage backend: "postgres" or "sqlite".
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	// DatabaseURL is the Postgres DSN; required when StorageDriver is postgres.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// SQLitePath is the embedded database file; used when StorageDriver is sqlite.
	SQLitePath string `mapstructure:"SQLITE_PATH"`
	// SessionSecret signs the session cookie. Must be set outside development.
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	// SessionBackend selects session persistence: "db" (durable) or "memory".
	// The memory backend loses every session on restart and cannot be shared
	// across processes; it exists for development only.
	SessionBackend string `mapstructure:"SESSION_BACKEND"`
	// CookieSecure marks the session cookie Secure; enable behind TLS.
	CookieSecure bool `mapstructure:"COOKIE_SECURE"`
	// CORSOrigin is the allowed cross-origin value; empty disables CORS headers.
	CORSOrigin string `mapstructure:"CORS_ORIGIN"`
	// BcryptCost is the bcrypt work factor (4-31).
	BcryptCost int `mapstructure:"BCRYPT_COST"`
	// LogFile receives server logs; empty means stderr.
	LogFile string `mapstructure:"LOG_FILE"`
	// ReadTimeout / WriteTimeout bound request handling, in seconds.
	ReadTimeout  int64 `mapstructure:"READ_TIMEOUT"`
	WriteTimeout int64 `mapstructure:"WRITE_TIMEOUT"`
}

// Load reads .env (if present), then builds and validates Config from the
// environment via Viper. Missing .env is ignored; env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("STORAGE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SQLITE_PATH", "chesskeep.db")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_BACKEND", SessionBackendDB)
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("CORS_ORIGIN", "")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("READ_TIMEOUT", 15)
	v.SetDefault("WRITE_TIMEOUT", 15)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	switch cfg.StorageDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("config: DATABASE_URL must be set when STORAGE_DRIVER=postgres")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("config: SQLITE_PATH must be set when STORAGE_DRIVER=sqlite")
		}
	default:
		return nil, errors.New("config: STORAGE_DRIVER must be postgres or sqlite")
	}

	if cfg.SessionBackend != SessionBackendDB && cfg.SessionBackend != SessionBackendMemory {
		return nil, errors.New("config: SESSION_BACKEND must be db or memory")
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("config: SESSION_SECRET must be set")
	}

	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: BCRYPT_COST must be between 4 and 31")
	}

	return &cfg, nil
}
