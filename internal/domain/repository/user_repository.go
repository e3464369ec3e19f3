// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"inkwell/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// List returns all users, newest first. Used by the admin dashboard.
	List(ctx context.Context) ([]*entity.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// CountSubmitted returns the number of users that have submitted an entry.
	CountSubmitted(ctx context.Context) (int64, error)

	// ClearVoteFlags resets IsVoted and VotedFor on every user.
	// Used by the admin competition reset.
	ClearVoteFlags(ctx context.Context) error
}
