package impl

import (
	"context"
	"log/slog"
	"time"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/usecase"
	"inkwell/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// entryService implements the EntryUsecase interface.
type entryService struct {
	txManager repository.TransactionManager
	entryRepo repository.EntryRepository
	minWords  int
	maxWords  int
	now       func() time.Time
	logger    *slog.Logger
}

// EntryServiceParams holds dependencies for entryService, injected by Fx.
type EntryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	EntryRepo repository.EntryRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewEntryService is the constructor for entryService.
func NewEntryService(params EntryServiceParams) usecase.EntryUsecase {
	return &entryService{
		txManager: params.TxManager,
		entryRepo: params.EntryRepo,
		minWords:  params.Config.Competition.MinWords,
		maxWords:  params.Config.Competition.MaxWords,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *entryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitEntry creates the user's entry and flips the user's submitted flag
// within one transaction, so the check-then-write window of a double submit
// cannot leave two entries or a half-applied state.
func (srv *entryService) SubmitEntry(ctx context.Context, input *usecase.SubmitEntryInput) (*usecase.SubmitEntryOutput, error) {
	srv.log(ctx).Info("Submitting entry", slog.String("userID", input.UserID), slog.String("title", input.Title))

	var entryID string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		entryRepo := repoFactory.EntryRepo()
		timelineRepo := repoFactory.TimelineRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "unknown submitter")
			}

			return errors.Wrap(err, "failed to find submitter")
		}

		if user.IsSubmitted {
			return errors.Wrap(domainerrors.ErrAlreadySubmitted, "user already has an entry")
		}

		timeline, err := timelineRepo.Get(ctx)
		if err != nil && !errors.Is(err, repository.ErrTimelineNotFound) {
			return errors.Wrap(err, "failed to load timeline")
		}
		if timeline != nil && !timeline.SubmissionEnabled {
			return errors.Wrap(domainerrors.ErrSubmissionClosed, "submission window is closed")
		}

		words := util.CountWords(input.Content)
		if words < srv.minWords || words > srv.maxWords {
			return domainerrors.ErrWordCountOutOfRange.WrapMessage(
				errors.Errorf("entry has %d words, allowed range is [%d,%d]", words, srv.minWords, srv.maxWords).Error())
		}

		now := srv.now()
		entry := &entity.Entry{
			ID:         entity.EntryIDFor(input.UserID),
			UserID:     input.UserID,
			AuthorName: input.FullName,
			Year:       input.Year,
			Branch:     input.Branch,
			Title:      input.Title,
			Content:    input.Content,
			Votes:      0,
			Voters:     []string{},
			Status:     entity.EntryStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := entryRepo.Create(ctx, entry); err != nil {
			if errors.Is(err, repository.ErrEntryExists) {
				// A concurrent submit won the race; the unique key turned it
				// into a conflict instead of an overwrite.
				return errors.Wrap(domainerrors.ErrAlreadySubmitted, "entry already exists")
			}

			return errors.Wrap(err, "failed to create entry")
		}

		user.IsSubmitted = true
		user.UpdatedAt = now
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark user as submitted")
		}

		entryID = entry.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Entry submission failed", slog.String("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Entry submitted", slog.String("userID", input.UserID), slog.String("entryID", entryID))

	return &usecase.SubmitEntryOutput{EntryID: entryID}, nil
}

// ListEntries returns the sorted entries, optionally excluding one owner.
func (srv *entryService) ListEntries(ctx context.Context, excludeUserID string) ([]*entity.Entry, error) {
	entries, err := srv.entryRepo.List(ctx, excludeUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entries")
	}

	return entries, nil
}

// GetEntry retrieves a single entry by id.
func (srv *entryService) GetEntry(ctx context.Context, entryID string) (*entity.Entry, error) {
	entry, err := srv.entryRepo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEntryNotFound, "no such entry")
		}

		return nil, errors.Wrap(err, "failed to find entry")
	}

	return entry, nil
}

// UpdateEntryStatus applies a moderation decision.
func (srv *entryService) UpdateEntryStatus(ctx context.Context, input *usecase.UpdateEntryStatusInput) (*entity.Entry, error) {
	if !input.Status.IsModerated() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("status must be approved or rejected")
	}

	var updated *entity.Entry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.EntryRepo()

		entry, err := entryRepo.FindByID(ctx, input.EntryID)
		if err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return errors.Wrap(domainerrors.ErrEntryNotFound, "no such entry")
			}

			return errors.Wrap(err, "failed to find entry")
		}

		entry.Status = input.Status
		entry.UpdatedBy = input.UpdatedBy
		entry.UpdatedAt = srv.now()

		if err := entryRepo.Update(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to update entry status")
		}

		updated = entry

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update entry status",
			slog.String("entryID", input.EntryID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Entry status updated",
		slog.String("entryID", input.EntryID), slog.String("status", input.Status.String()),
		slog.String("updatedBy", input.UpdatedBy))

	return updated, nil
}
