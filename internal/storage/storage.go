// Package storage opens the configured database backend and bootstraps the
// schema. Both backends are served by the same gorm code paths; the choice is
// made once here, at construction time.
package storage

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Zitteraal/chesskeep/internal/config"
	"github.com/Zitteraal/chesskeep/internal/entity"
)

// Open connects to the backend selected by cfg.StorageDriver.
//
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey on both engines instead of driver-specific errors.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	case config.DriverSQLite:
		dsn := cfg.SQLitePath
		if !strings.Contains(dsn, "?") {
			// Cascade deletes depend on the engine enforcing foreign keys.
			dsn += "?_foreign_keys=on"
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates the schema. Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.User{}, &entity.Game{}, &entity.Session{})
}
