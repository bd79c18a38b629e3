package repository

import (
	"context"
	"errors"

	"github.com/wichananm65/user-registry/internal/domain/entity"
)

// ErrNotFound is returned when no user carries the requested id.
var ErrNotFound = errors.New("user not found")

// UserRepository defines persistence behavior for the User entity.
type UserRepository interface {
	// FindAll returns a snapshot of every user in insertion order.
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, user *entity.User) (*entity.User, error)
	// DeleteByEmail reports whether at least one user was removed.
	DeleteByEmail(ctx context.Context, email string) (bool, error)
	// Update merges the non-nil fields of patch into the stored user.
	Update(ctx context.Context, id int64, patch *entity.User) (*entity.User, error)
}
