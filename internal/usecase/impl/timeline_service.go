// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/usecase"

	"github.com/pkg/errors"
)

// timelineService implements the TimelineUsecase interface.
type timelineService struct {
	timelineRepo repository.TimelineRepository
	now          func() time.Time
	logger       *slog.Logger
}

// NewTimelineService is the constructor for timelineService.
func NewTimelineService(timelineRepo repository.TimelineRepository, logger *slog.Logger) usecase.TimelineUsecase {
	return &timelineService{
		timelineRepo: timelineRepo,
		now:          time.Now,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *timelineService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetTimeline returns the stored schedule with the phase derived from it.
func (srv *timelineService) GetTimeline(ctx context.Context) (*usecase.TimelineOutput, error) {
	timeline, err := srv.timelineRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrTimelineNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTimelineNotFound, "timeline has not been seeded")
		}

		return nil, errors.Wrap(err, "failed to load timeline")
	}

	return srv.output(timeline), nil
}

// UpdateTimeline replaces the schedule. The caller has already passed the
// admin authorization gate.
func (srv *timelineService) UpdateTimeline(ctx context.Context, input *usecase.UpdateTimelineInput) (*usecase.TimelineOutput, error) {
	now := srv.now()
	timeline := &entity.Timeline{
		VotingEnabled:     input.VotingEnabled,
		SubmissionEnabled: input.SubmissionEnabled,
		RegistrationStart: input.RegistrationStart,
		RegistrationEnd:   input.RegistrationEnd,
		SubmissionStart:   input.SubmissionStart,
		SubmissionEnd:     input.SubmissionEnd,
		VotingStart:       input.VotingStart,
		VotingEnd:         input.VotingEnd,
		ResultsDate:       input.ResultsDate,
		UpdatedAt:         now,
	}

	if err := srv.timelineRepo.Save(ctx, timeline); err != nil {
		srv.log(ctx).Error("Failed to update timeline", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save timeline")
	}

	srv.log(ctx).Info("Timeline updated",
		slog.Bool("submissionEnabled", timeline.SubmissionEnabled),
		slog.Bool("votingEnabled", timeline.VotingEnabled))

	return srv.output(timeline), nil
}

// Initialize seeds the default schedule when none exists. Safe to run on
// every deploy and from the admin initialize action.
func (srv *timelineService) Initialize(ctx context.Context) error {
	if err := srv.timelineRepo.EnsureDefault(ctx, entity.DefaultTimeline(srv.now())); err != nil {
		return errors.Wrap(err, "failed to seed default timeline")
	}

	return nil
}

func (srv *timelineService) output(timeline *entity.Timeline) *usecase.TimelineOutput {
	now := srv.now()

	return &usecase.TimelineOutput{
		Timeline:  timeline,
		Phase:     entity.ResolvePhase(timeline, now),
		Remaining: entity.PhaseRemaining(timeline, now),
	}
}
