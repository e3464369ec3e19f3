package usecase

import (
	"context"

	"inkwell/internal/domain/entity"
)

// SubmitEntryInput defines the data required to submit a competition entry.
type SubmitEntryInput struct {
	UserID   string `json:"userId" validate:"required"`
	FullName string `json:"fullName" validate:"required"`
	Year     string `json:"year" validate:"required"`
	Branch   string `json:"branch" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// SubmitEntryOutput returns the id of the newly created entry.
type SubmitEntryOutput struct {
	EntryID string `json:"entryId"`
}

// UpdateEntryStatusInput defines an admin moderation decision.
type UpdateEntryStatusInput struct {
	EntryID   string             `json:"entryId" validate:"required"`
	Status    entity.EntryStatus `json:"status" validate:"required"`
	UpdatedBy string             `json:"-"`
}

// EntryUsecase defines the interface for the entry lifecycle:
// one submission per user, word-count bounds and moderation transitions.
type EntryUsecase interface {
	// SubmitEntry creates the user's entry and marks the user as submitted,
	// both within a single transaction.
	SubmitEntry(ctx context.Context, input *SubmitEntryInput) (*SubmitEntryOutput, error)

	// ListEntries returns entries sorted by votes then recency, optionally
	// excluding the given owner's entry.
	ListEntries(ctx context.Context, excludeUserID string) ([]*entity.Entry, error)

	// GetEntry retrieves a single entry by id.
	GetEntry(ctx context.Context, entryID string) (*entity.Entry, error)

	// UpdateEntryStatus applies a moderation decision. Admin-only.
	UpdateEntryStatus(ctx context.Context, input *UpdateEntryStatusInput) (*entity.Entry, error)
}
