package repository

import (
	"context"
	"errors"

	"inkwell/internal/domain/entity"
)

// Domain-specific errors for entry persistence.
var (
	// ErrEntryNotFound is returned when an entry is not found.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrEntryExists is returned when the owner already has an entry.
	ErrEntryExists = errors.New("entry already exists for this user")
)

// EntryRepository defines the standard operations for entry persistence.
type EntryRepository interface {
	// FindByID retrieves a single entry, including its voter set, by ID.
	FindByID(ctx context.Context, id string) (*entity.Entry, error)

	// FindByIDForUpdate retrieves an entry with a write lock held for the
	// remainder of the surrounding transaction. Vote and unvote re-read
	// through this to avoid lost updates under contention.
	FindByIDForUpdate(ctx context.Context, id string) (*entity.Entry, error)

	// List returns all entries including voter sets, sorted by votes
	// descending with ties broken by creation time, newest first.
	// When excludeUserID is non-empty, that owner's entry is omitted.
	List(ctx context.Context, excludeUserID string) ([]*entity.Entry, error)

	// Create persists a new entry.
	Create(ctx context.Context, entry *entity.Entry) error

	// Update modifies an existing entry (vote tally, status, moderation fields).
	Update(ctx context.Context, entry *entity.Entry) error

	// Count returns the total number of entries.
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns entry counts keyed by moderation status.
	CountByStatus(ctx context.Context) (map[entity.EntryStatus]int64, error)

	// ResetVotes zeroes the vote tally on every entry.
	// Used by the admin competition reset.
	ResetVotes(ctx context.Context) error
}
