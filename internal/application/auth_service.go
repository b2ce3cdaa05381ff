package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/veridoc/kyc-portal/internal/domain/entity"
	repo "github.com/veridoc/kyc-portal/internal/domain/repository"
	"github.com/veridoc/kyc-portal/pkg/helpers"
)

var (
	// ErrInvalidCredentials is deliberately shared by the unknown-email
	// and wrong-password cases so login failures are not usable for
	// account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// AuthService issues identities: it registers accounts and exchanges
// credentials for session tokens.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Register creates an account with role user and returns it together
// with a session token. Field presence is validated at the binding
// layer; here only the uniqueness invariant is enforced.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*entity.User, string, error) {
	if existing, err := s.Users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, "", err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	u := &entity.User{
		Email:    email,
		Password: hash,
		FullName: fullName,
		Role:     entity.RoleUser,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, _, err := s.JWT.Generate(u.ID, u.Role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", err
	}
	return u, token, nil
}

// Login validates email/password and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, "", err
		}
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.Generate(u.ID, u.Role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", err
	}
	return u, token, nil
}
