package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zitteraal/chesskeep/internal/common"
	"github.com/Zitteraal/chesskeep/internal/entity"
	"github.com/Zitteraal/chesskeep/internal/nlog"
)

type mockUserRepo struct {
	users     map[string]*entity.User
	createErr error
	getErr    error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*entity.User)}
}

func (m *mockUserRepo) Create(user *entity.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.users[user.Username]; exists {
		return common.ErrDuplicateUsername
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByUsername(username string) (*entity.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	user, ok := m.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return user, nil
}

func newTestAuthService(repo *mockUserRepo) AuthService {
	return NewAuthService(repo, bcrypt.MinCost, nlog.Discard)
}

func TestRegisterHashesBeforeInsert(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register("alice", "secret123")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.NotEmpty(t, user.ID)

	stored := repo.users["alice"]
	require.NotEqual(t, "secret123", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegisterRejectsEmptyInputs(t *testing.T) {
	svc := newTestAuthService(newMockUserRepo())

	for _, tc := range []struct{ username, password string }{
		{"", "secret"},
		{"   ", "secret"},
		{"alice", ""},
		{"", ""},
	} {
		_, err := svc.Register(tc.username, tc.password)
		require.ErrorIs(t, err, common.ErrInvalidInput)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestAuthService(newMockUserRepo())

	_, err := svc.Register("bob", "secret123")
	require.NoError(t, err)

	_, err = svc.Register("bob", "othersecret")
	require.ErrorIs(t, err, common.ErrDuplicateUsername)
}

func TestLoginAfterRegister(t *testing.T) {
	svc := newTestAuthService(newMockUserRepo())

	registered, err := svc.Register("alice", "secret123")
	require.NoError(t, err)

	loggedIn, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	require.Equal(t, registered.ID, loggedIn.ID)
	require.Equal(t, "alice", loggedIn.Username)
}

func TestLoginFailuresAreUndifferentiated(t *testing.T) {
	svc := newTestAuthService(newMockUserRepo())

	_, err := svc.Register("alice", "secret123")
	require.NoError(t, err)

	_, wrongPassword := svc.Login("alice", "wrong")
	_, unknownUser := svc.Login("mallory", "secret123")

	require.ErrorIs(t, wrongPassword, common.ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, common.ErrInvalidCredentials)
	// Exactly the same error value: nothing for a caller to tell apart.
	require.Equal(t, wrongPassword, unknownUser)
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc := newTestAuthService(newMockUserRepo())

	_, err := svc.Login("", "")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLoginPassesThroughStorageErrors(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	// An outage must surface as retryable, not masquerade as bad credentials.
	repo.getErr = common.ErrUnavailable
	_, err := svc.Login("alice", "secret123")
	require.ErrorIs(t, err, common.ErrUnavailable)
}
