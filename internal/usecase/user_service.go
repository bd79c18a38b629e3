package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wichananm65/user-registry/internal/domain/dto"
	"github.com/wichananm65/user-registry/internal/domain/entity"
	"github.com/wichananm65/user-registry/internal/domain/repository"
	"github.com/wichananm65/user-registry/internal/infrastructure/metrics"
	"github.com/wichananm65/user-registry/internal/mapper"
)

const (
	msgNilDto         = "UserDto must not be null"
	msgUserNotFound   = "User not found"
	msgWrongDateRange = "Wrong date range"
)

// UserService implements UserUsecase with repository dependency.
type UserService struct {
	repo    repository.UserRepository
	mapper  *mapper.UserMapper
	minAge  int
	now     func() time.Time
	logger  *slog.Logger
	metrics metrics.Recorder
}

var _ UserUsecase = (*UserService)(nil)

// Option customizes a UserService.
type Option func(*UserService)

// WithClock replaces the wall clock used by the age policy.
func WithClock(now func() time.Time) Option {
	return func(s *UserService) {
		s.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *UserService) {
		s.logger = logger
	}
}

func WithMetrics(recorder metrics.Recorder) Option {
	return func(s *UserService) {
		s.metrics = recorder
	}
}

// NewUserService builds the service. minAge is the minimum number of
// completed years a new user must have.
func NewUserService(repo repository.UserRepository, minAge int, opts ...Option) *UserService {
	s := &UserService{
		repo:    repo,
		mapper:  mapper.NewUserMapper(),
		minAge:  minAge,
		now:     time.Now,
		logger:  slog.Default(),
		metrics: metrics.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all users: %w", err)
	}
	return users, nil
}

func (s *UserService) CreateUser(ctx context.Context, input *dto.UserDto) (*entity.User, error) {
	if input == nil {
		return nil, invalidArgument(msgNilDto)
	}
	if err := input.ValidateForCreate(); err != nil {
		return nil, invalidArgument("%s", err.Error())
	}

	user := s.mapper.ToEntity(input)

	age := user.BirthDate.YearsUntil(entity.DateOf(s.now()))
	if age < s.minAge {
		s.logger.DebugContext(ctx, "user rejected by age policy",
			slog.Int("age", age),
			slog.Int("min_age", s.minAge),
		)
		return nil, invalidArgument("User must be at least %d years old", s.minAge)
	}

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	s.metrics.RecordUserCreated()
	return saved, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, input *dto.UserDto) (*entity.User, error) {
	if input == nil {
		return nil, invalidArgument(msgNilDto)
	}

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check user %d: %w", id, err)
	}
	if !exists {
		return nil, invalidArgument(msgUserNotFound)
	}

	updated, err := s.repo.Update(ctx, id, s.mapper.ToEntity(input))
	if errors.Is(err, repository.ErrNotFound) {
		// deleted between the existence check and the update
		return nil, invalidArgument(msgUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, email string) error {
	deleted, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("delete user by email: %w", err)
	}
	if !deleted {
		return invalidArgument("User with email: %s doesn't exists", email)
	}
	s.metrics.RecordUserDeleted()
	return nil
}

// GetUsersByBirthDateRange returns users born strictly between from and to.
func (s *UserService) GetUsersByBirthDateRange(ctx context.Context, from, to entity.Date) ([]*entity.User, error) {
	if !from.Before(to) {
		return nil, invalidArgument(msgWrongDateRange)
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all users: %w", err)
	}

	inRange := make([]*entity.User, 0, len(users))
	for _, user := range users {
		if user.BirthDate == nil {
			continue
		}
		if user.BirthDate.After(from) && user.BirthDate.Before(to) {
			inRange = append(inRange, user)
		}
	}
	return inRange, nil
}
