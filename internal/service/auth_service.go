// Package service holds the orchestration layer between HTTP handlers and
// the repositories.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zitteraal/chesskeep/internal/common"
	"github.com/Zitteraal/chesskeep/internal/entity"
	"github.com/Zitteraal/chesskeep/internal/nlog"
	"github.com/Zitteraal/chesskeep/internal/repository"
)

// Service used for the user registration and login phases.
type AuthService interface {
	Register(username, password string) (*entity.User, error) // Creates a new account, hashing the password first
	Login(username, password string) (*entity.User, error)    // Verifies credentials; one undifferentiated error for every failure mode
}

// A valid bcrypt hash of a throwaway string. Compared against when the
// username does not exist so a miss costs about as much as a mismatch.
var enumerationDecoy = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type authService struct {
	users      repository.UserRepository
	bcryptCost int
	logger     nlog.Logger
}

func NewAuthService(users repository.UserRepository, bcryptCost int, logger nlog.Logger) AuthService {
	return &authService{
		users:      users,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (a *authService) Logf(format string, v ...any) {
	a.logger.Logf(format, v...)
}

// Register validates the inputs, hashes the password and inserts the user.
// Hashing happens before the insert so no plaintext ever reaches storage.
// Duplicate detection rides on the storage-level unique index.
func (a *authService) Register(username, password string) (*entity.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, common.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := a.users.Create(user); err != nil {
		return nil, err
	}

	a.Logf("registered user %s", user.ID)
	return user, nil
}

// Login verifies the credentials. An unknown username and a wrong password
// both return common.ErrInvalidCredentials; the caller must not be able to
// tell them apart.
func (a *authService) Login(username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrInvalidCredentials
	}

	user, err := a.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(enumerationDecoy, []byte(password))
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}
