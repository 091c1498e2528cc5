package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"wardrobe-api/internal/domain/entity"
	"wardrobe-api/internal/domain/repository"
	"wardrobe-api/pkg/helpers"
)

// AuthService orchestrates registration and login. The credential store and
// token issuer are injected so tests can substitute in-memory fakes.
type AuthService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger}
}

// normalizeEmail applies the store's canonical email form: trimmed, lowercased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register hashes the password and creates the user record. The plaintext
// never reaches the store. Empty email or password short-circuits before any
// store call.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (int64, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return 0, ErrMissingCredentials
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return 0, err
	}

	u := &entity.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return 0, ErrEmailExists
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create user failed")
		}
		return 0, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	}
	return u.ID, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password both return ErrInvalidCredentials so the response cannot be
// used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("lookup user failed")
		}
		return "", err
	}

	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return "", err
	}
	return token, nil
}

// GetUser loads a user by id, for profile-style reads.
func (s *AuthService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
