package repository

import (
	"context"

	"blogpost-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByEmailOrUsername resolves a login identifier that may be either
	// the email address or the username.
	GetByEmailOrUsername(ctx context.Context, login string) (*entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, u *entity.User) error
}
