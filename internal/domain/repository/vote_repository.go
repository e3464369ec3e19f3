package repository

import (
	"context"
	"errors"

	"inkwell/internal/domain/entity"
)

// ErrVoteNotFound is returned when a vote record is not found.
var ErrVoteNotFound = errors.New("vote record not found")

// VoteRepository defines the standard operations for vote record persistence.
type VoteRepository interface {
	// FindByVoter retrieves the voter's active vote record, if any.
	FindByVoter(ctx context.Context, voterID string) (*entity.VoteRecord, error)

	// Create persists a new vote record.
	Create(ctx context.Context, vote *entity.VoteRecord) error

	// Delete removes a vote record by its ID. Deleting an absent record is
	// not an error; unvote tolerates already-missing rows.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every vote record. Used by the admin competition reset.
	DeleteAll(ctx context.Context) error

	// Count returns the total number of active vote records.
	Count(ctx context.Context) (int64, error)
}
