package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hppyapp/hppy-backend/internal/domain/entity"
	repo "github.com/hppyapp/hppy-backend/internal/domain/repository"
	"github.com/hppyapp/hppy-backend/pkg/helpers"
)

type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// AuthResult is a signed token plus the account it belongs to.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// Register creates an account keyed by the normalized (digits-only) phone
// number and signs the first token for it.
func (s *AuthService) Register(ctx context.Context, phone, password string) (*AuthResult, error) {
	normalized := helpers.NormalizePhone(phone)
	if !helpers.ValidPhone(normalized) {
		return nil, ErrInvalidPhone
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Phone: normalized, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrPhoneTaken
		}
		return nil, err
	}

	return s.issueToken(u)
}

// Login authenticates phone+password. Failures stay undifferentiated so the
// response never reveals whether the phone is registered.
func (s *AuthService) Login(ctx context.Context, phone, password string) (*AuthResult, error) {
	normalized := helpers.NormalizePhone(phone)

	u, err := s.Users.GetByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(u)
}

// CurrentUser resolves a token identity back to the account row.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) issueToken(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID, u.Phone)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: u}, nil
}
