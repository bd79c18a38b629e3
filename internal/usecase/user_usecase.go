package usecase

import (
	"context"

	"github.com/wichananm65/user-registry/internal/domain/dto"
	"github.com/wichananm65/user-registry/internal/domain/entity"
)

// UserUsecase exposes application-level operations for User.
type UserUsecase interface {
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	CreateUser(ctx context.Context, input *dto.UserDto) (*entity.User, error)
	UpdateUser(ctx context.Context, id int64, input *dto.UserDto) (*entity.User, error)
	DeleteUser(ctx context.Context, email string) error
	GetUsersByBirthDateRange(ctx context.Context, from, to entity.Date) ([]*entity.User, error)
}
