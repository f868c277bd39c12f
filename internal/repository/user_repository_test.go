package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Zitteraal/chesskeep/internal/common"
	"github.com/Zitteraal/chesskeep/internal/entity"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)

	created := createTestUser(t, db, "alice")

	got, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "irrelevant", got.PasswordHash)
}

func TestUserRepositoryLookupIsCaseSensitive(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)

	createTestUser(t, db, "alice")

	_, err := repo.GetByUsername("Alice")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)

	createTestUser(t, db, "bob")

	err := repo.Create(&entity.User{
		ID:           uuid.New().String(),
		Username:     "bob",
		PasswordHash: "other",
		CreatedAt:    time.Now(),
	})
	require.ErrorIs(t, err, common.ErrDuplicateUsername)

	// The loser must not leave a second row behind.
	var count int64
	require.NoError(t, db.Model(&entity.User{}).Where("username = ?", "bob").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUserRepositoryGetUnknown(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)

	_, err := repo.GetByUsername("nobody")
	require.ErrorIs(t, err, common.ErrNotFound)
}
