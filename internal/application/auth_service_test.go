package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe-api/internal/infrastructure/memory"
	"wardrobe-api/pkg/helpers"
)

func newAuthFixture() (*AuthService, *memory.UserRepository, *helpers.JWTManager) {
	repo := memory.NewUserRepository()
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	return NewAuthService(repo, jwt, nil), repo, jwt
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, jwt := newAuthFixture()
	ctx := context.Background()

	id, err := svc.Register(ctx, "Alice", "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Positive(t, id)

	token, err := svc.Login(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "  Mixed@Case.COM  ", "secret123")
	require.NoError(t, err)

	u, err := repo.GetByEmail(ctx, "mixed@case.com")
	require.NoError(t, err)
	assert.Equal(t, "mixed@case.com", u.Email)

	// login with any casing of the same address succeeds
	_, err = svc.Login(ctx, "MIXED@CASE.com", "secret123")
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "a@x.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Impostor", "a@x.com", "other456")
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Equal(t, 1, repo.Count())
}

func TestRegisterMissingFieldsNeverReachStore(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret123"},
		{"empty password", "a@x.com", ""},
		{"both empty", "", ""},
		{"whitespace email", "   ", "secret123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newAuthFixture()
			_, err := svc.Register(context.Background(), "", tt.email, tt.password)
			assert.ErrorIs(t, err, ErrMissingCredentials)
			assert.Zero(t, repo.Calls, "store must not be reached")
		})
	}
}

func TestLoginMissingFieldsNeverReachStore(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), "", "secret123")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	_, err = svc.Login(context.Background(), "a@x.com", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.Zero(t, repo.Calls)
}

func TestLoginUniformUnauthorized(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "a@x.com", "secret123")
	require.NoError(t, err)

	_, wrongPwd := svc.Login(ctx, "a@x.com", "not-the-password")
	_, unknown := svc.Login(ctx, "nobody@x.com", "secret123")

	// both failure modes are indistinguishable to the caller
	assert.ErrorIs(t, wrongPwd, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
}

func TestGetUser(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	id, err := svc.Register(ctx, "Alice", "a@x.com", "secret123")
	require.NoError(t, err)

	u, err := svc.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = svc.GetUser(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "a@x.com", "secret123")
	require.NoError(t, err)

	u, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "secret123"))
}
