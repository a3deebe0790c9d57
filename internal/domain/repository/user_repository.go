// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the account store operations used by the flows.
// Implementations must reject a second record with an existing email
// by returning an error matching domainerrors.ErrUserAlreadyExists.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and sets its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// UpdateLastLogin stamps the last successful login time of a user.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
