package service

import (
	"testing"
	"time"

	"shona_dict_backend/internal/config"
	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/repository"
	"shona_dict_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()

	repo := repository.NewUserRepository(newTestDB(t))
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repo, cfg), repo
}

func seedUser(t *testing.T, repo *repository.UserRepository, email, password string, disabled bool) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Name:     "Test Admin",
		Email:    email,
		Password: string(hashed),
		Role:     model.Admin,
		Disabled: disabled,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestLoginIssuesToken(t *testing.T) {
	svc, repo := newAuthFixture(t)
	user := seedUser(t, repo, "admin@example.com", "correct horse", false)

	token, err := svc.Login("admin@example.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Admin, claims.Role)
	assert.Equal(t, "admin@example.com", claims.Email)

	refreshed, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.False(t, refreshed.LastLogin.IsZero(), "last login should be stamped")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedUser(t, repo, "admin@example.com", "correct horse", false)

	_, err := svc.Login("admin@example.com", "wrong password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedUser(t, repo, "former@example.com", "correct horse", true)

	_, err := svc.Login("former@example.com", "correct horse")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
