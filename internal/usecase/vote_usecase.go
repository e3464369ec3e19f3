package usecase

import "context"

// VoteInput identifies the voter and the entry for vote and unvote.
type VoteInput struct {
	UserID  string `json:"userId" validate:"required"`
	EntryID string `json:"entryId" validate:"required"`
}

// VoteUsecase defines the interface for the voting engine. Each user holds at
// most one active vote; casting and withdrawing are each a single atomic
// transaction across the user, the entry and the vote record.
type VoteUsecase interface {
	// Vote casts the user's vote for the entry.
	Vote(ctx context.Context, input *VoteInput) error

	// Unvote withdraws the user's vote from the entry, restoring the
	// pre-vote state exactly.
	Unvote(ctx context.Context, input *VoteInput) error
}
