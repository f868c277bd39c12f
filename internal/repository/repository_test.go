package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Zitteraal/chesskeep/internal/config"
	"github.com/Zitteraal/chesskeep/internal/entity"
	"github.com/Zitteraal/chesskeep/internal/storage"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		StorageDriver: config.DriverSQLite,
		SQLitePath:    filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := storage.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "irrelevant",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, NewGormUserRepository(db).Create(user))
	return user
}
