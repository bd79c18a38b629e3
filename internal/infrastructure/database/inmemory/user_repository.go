package inmemory

import (
	"context"
	"sync"

	"github.com/wichananm65/user-registry/internal/domain/entity"
	"github.com/wichananm65/user-registry/internal/domain/repository"
)

// UserRepository is an in-memory implementation of UserRepository.
// Stored records are never mutated in place: Update swaps in a merged copy,
// so pointers handed out by earlier reads stay consistent.
type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  []*entity.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(seed ...*entity.User) *UserRepository {
	repo := &UserRepository{
		nextID: 1,
		users:  make([]*entity.User, 0, len(seed)),
	}
	for _, user := range seed {
		repo.insert(user)
	}
	return repo
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.users[i], nil
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.indexOf(id) >= 0, nil
}

// Save appends user as given. A nil id is assigned from the sequence.
func (r *UserRepository) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insert(user)
	return user, nil
}

func (r *UserRepository) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		if !user.HasEmail(email) {
			kept = append(kept, user)
		}
	}
	removed := len(kept) != len(r.users)
	r.users = kept
	return removed, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, patch *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}

	merged := r.users[i].Merge(patch)
	r.users[i] = &merged
	return &merged, nil
}

// indexOf must be called with r.mu held.
func (r *UserRepository) indexOf(id int64) int {
	for i, user := range r.users {
		if user.HasID(id) {
			return i
		}
	}
	return -1
}

// insert must be called with r.mu held.
func (r *UserRepository) insert(user *entity.User) {
	if user.ID == nil {
		id := r.nextID
		user.ID = &id
	}
	if *user.ID >= r.nextID {
		r.nextID = *user.ID + 1
	}
	r.users = append(r.users, user)
}
