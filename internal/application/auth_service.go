package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/uxelf/tasksapp/internal/domain/entity"
	repo "github.com/uxelf/tasksapp/internal/domain/repository"
	"github.com/uxelf/tasksapp/pkg/helpers"
)

// IssuedToken is a signed identity token plus its absolute expiry, ready to be
// placed in the identity cookie.
type IssuedToken struct {
	Token  string
	Expiry time.Time
}

// AuthService orchestrates registration and login: credential store lookups,
// bcrypt verification, and token issuance. Logout is purely client-side
// (cookie removal) and needs no service call.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Register creates a user with a hashed password and issues a token for the
// new identity. Fails with ErrUsernameTaken before touching storage when the
// username is already in use.
func (s *AuthService) Register(ctx context.Context, username, password string) (*entity.User, IssuedToken, error) {
	if _, err := s.Users.GetByUsername(ctx, username); err == nil {
		return nil, IssuedToken{}, ErrUsernameTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, IssuedToken{}, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hash failed")
		}
		return nil, IssuedToken{}, err
	}

	u := &entity.User{Username: username, Password: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, IssuedToken{}, err
	}

	tok, err := s.issue(u)
	if err != nil {
		return nil, IssuedToken{}, err
	}
	return u, tok, nil
}

// Login verifies the credentials and issues a token. Unknown usernames and
// bad passwords are reported separately, matching the API contract.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, IssuedToken, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, IssuedToken{}, ErrUserNotFound
		}
		return nil, IssuedToken{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, IssuedToken{}, ErrIncorrectPassword
	}

	tok, err := s.issue(u)
	if err != nil {
		return nil, IssuedToken{}, err
	}
	return u, tok, nil
}

func (s *AuthService) issue(u *entity.User) (IssuedToken, error) {
	token, exp, err := s.JWT.Generate(u.ID, u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return IssuedToken{}, err
	}
	return IssuedToken{Token: token, Expiry: exp}, nil
}
