package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"blogpost-api/internal/domain/entity"
	repo "blogpost-api/internal/domain/repository"
	"blogpost-api/pkg/helpers"
)

// AuthService maps credentials to identities and back: registration, login,
// token issuance and public profile access.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, emailOrUsername, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID int64) (*UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*UserProfile, error)
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// UpdateProfileInput carries partial-update semantics: only non-empty
// fields replace the stored values, empty fields are left untouched.
type UpdateProfileInput struct {
	FullName        string
	Bio             string
	ProfileImageURL string
}

type authService struct {
	repo   repo.UserRepository
	jwt    *helpers.JWTManager
	logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) AuthService {
	return &authService{repo: r, jwt: jwt, logger: logger}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	// Email is checked before username: first conflict wins and decides
	// the error message.
	if taken, err := s.repo.EmailExists(ctx, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}
	if taken, err := s.repo.UsernameExists(ctx, in.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("new user registered")
	return s.issueToken(u)
}

func (s *authService) Login(ctx context.Context, emailOrUsername, password string) (*AuthResult, error) {
	u, err := s.repo.GetByEmailOrUsername(ctx, emailOrUsername)
	if err != nil {
		// Only a missing account maps to the credential error; repository
		// faults propagate so the handler reports a server error.
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

func (s *authService) issueToken(u *entity.User) (*AuthResult, error) {
	token, err := s.jwt.Generate(u.ID, u.Username, u.Email)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		return nil, err
	}
	return &AuthResult{Token: token, User: profileOf(u)}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID int64) (*UserProfile, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profileOf(u), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*UserProfile, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if in.FullName != "" {
		u.FullName = in.FullName
	}
	if in.Bio != "" {
		u.Bio = in.Bio
	}
	if in.ProfileImageURL != "" {
		u.ProfileImageURL = in.ProfileImageURL
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return profileOf(u), nil
}
