package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Zitteraal/chesskeep/internal/common"
	"github.com/Zitteraal/chesskeep/internal/entity"
)

// UserRepository persists accounts. Usernames are unique; the check rides on
// the storage-level unique index, never on an application-level lookup, so
// concurrent registrations of the same name cannot both succeed.
type UserRepository interface {
	Create(user *entity.User) error                        // Inserts the user; common.ErrDuplicateUsername on a taken name
	GetByUsername(username string) (*entity.User, error)   // Exact-match lookup; common.ErrNotFound when absent
}

// Implementation of the repository on a gorm database handle.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db}
}

func (r *GormUserRepository) Create(user *entity.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.ErrDuplicateUsername
		}
		return translate(err)
	}
	return nil
}

func (r *GormUserRepository) GetByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, translate(err)
	}
	return &user, nil
}
