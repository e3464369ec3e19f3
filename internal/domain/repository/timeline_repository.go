package repository

import (
	"context"
	"errors"

	"inkwell/internal/domain/entity"
)

// ErrTimelineNotFound is returned when the timeline singleton has not been seeded.
var ErrTimelineNotFound = errors.New("timeline not found")

// TimelineRepository defines operations on the timeline singleton.
type TimelineRepository interface {
	// Get retrieves the timeline document.
	Get(ctx context.Context) (*entity.Timeline, error)

	// Save replaces the timeline document.
	Save(ctx context.Context, timeline *entity.Timeline) error

	// EnsureDefault persists the given timeline only if none exists yet.
	// It is idempotent and safe to run on every deploy.
	EnsureDefault(ctx context.Context, timeline *entity.Timeline) error
}
