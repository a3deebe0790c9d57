// Package memory keeps user records in process memory.
// It backs tests and single-process local runs.
package memory

import (
	"context"
	"sync"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository over two maps guarded by one lock.
// The email check and the insert happen under the same write lock, so email stays unique
// under concurrent registrations.
type userRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

// NewUserRepository returns an empty in-memory store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(repo.byID[id]), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byEmail[user.Email]; exists {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	}

	now := repo.now().UTC()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	repo.byID[user.ID] = cloneUser(user)
	repo.byEmail[user.Email] = user.ID

	return nil
}

func (repo *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update last login")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	lastLogin := at
	user.LastLoginAt = &lastLogin
	user.UpdatedAt = repo.now().UTC()

	return nil
}

func cloneUser(user *entity.User) *entity.User {
	clone := *user
	if user.LastLoginAt != nil {
		lastLogin := *user.LastLoginAt
		clone.LastLoginAt = &lastLogin
	}

	return &clone
}
