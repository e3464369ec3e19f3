package usecase

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
)

// TimelineOutput bundles the stored timeline with the phase derived from it.
type TimelineOutput struct {
	Timeline  *entity.Timeline      `json:"timeline"`
	Phase     entity.Phase          `json:"phase"`
	Remaining *entity.TimeRemaining `json:"remaining,omitempty"`
}

// UpdateTimelineInput carries the full replacement schedule. Admin-only.
type UpdateTimelineInput struct {
	VotingEnabled     bool      `json:"votingEnabled"`
	SubmissionEnabled bool      `json:"submissionEnabled"`
	RegistrationStart time.Time `json:"registrationStart" validate:"required"`
	RegistrationEnd   time.Time `json:"registrationEnd" validate:"required"`
	SubmissionStart   time.Time `json:"submissionStart" validate:"required"`
	SubmissionEnd     time.Time `json:"submissionEnd" validate:"required"`
	VotingStart       time.Time `json:"votingStart" validate:"required"`
	VotingEnd         time.Time `json:"votingEnd" validate:"required"`
	ResultsDate       time.Time `json:"resultsDate" validate:"required"`
}

// TimelineUsecase defines the interface for reading and administering the
// competition schedule.
type TimelineUsecase interface {
	// GetTimeline returns the schedule, the current phase and the countdown
	// to the phase boundary.
	GetTimeline(ctx context.Context) (*TimelineOutput, error)

	// UpdateTimeline replaces the schedule. Admin-only.
	UpdateTimeline(ctx context.Context, input *UpdateTimelineInput) (*TimelineOutput, error)

	// Initialize seeds the default schedule if none exists. Idempotent.
	Initialize(ctx context.Context) error
}
