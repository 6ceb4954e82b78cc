package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/geoauth/internal/domain/entity"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

// UserRepository defines user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdatePasswordByID(ctx context.Context, id, hash string) error
	UpdatePasswordByEmail(ctx context.Context, email, hash string) error
}
