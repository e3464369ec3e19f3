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

// votingService implements the VoteUsecase interface.
//
// Every state transition touches three rows: the voter, the entry and the
// vote record. Each operation runs them inside a single transaction with the
// entry row locked, so concurrent votes cannot lose updates and a failure
// anywhere leaves no partial application.
type votingService struct {
	txManager repository.TransactionManager
	now       func() time.Time
	logger    *slog.Logger
}

// NewVotingService is the constructor for votingService.
func NewVotingService(txManager repository.TransactionManager, logger *slog.Logger) usecase.VoteUsecase {
	return &votingService{
		txManager: txManager,
		now:       time.Now,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *votingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Vote casts the user's single vote for the entry.
func (srv *votingService) Vote(ctx context.Context, input *usecase.VoteInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		entryRepo := repoFactory.EntryRepo()
		voteRepo := repoFactory.VoteRepo()
		timelineRepo := repoFactory.TimelineRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "unknown voter")
			}

			return errors.Wrap(err, "failed to find voter")
		}

		entry, err := entryRepo.FindByIDForUpdate(ctx, input.EntryID)
		if err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return errors.Wrap(domainerrors.ErrEntryNotFound, "no such entry")
			}

			return errors.Wrap(err, "failed to find entry")
		}

		timeline, err := timelineRepo.Get(ctx)
		if err != nil && !errors.Is(err, repository.ErrTimelineNotFound) {
			return errors.Wrap(err, "failed to load timeline")
		}
		if timeline != nil && !timeline.VotingEnabled {
			return errors.Wrap(domainerrors.ErrVotingClosed, "voting window is closed")
		}

		if user.IsVoted {
			return errors.Wrap(domainerrors.ErrAlreadyVoted, "user already holds an active vote")
		}
		if entry.UserID == input.UserID {
			return errors.Wrap(domainerrors.ErrSelfVote, "own entry")
		}
		if entry.HasVoter(input.UserID) {
			// Unreachable while the IsVoted flag is consistent; kept as a
			// guard against a corrupted voter set.
			return errors.Wrap(domainerrors.ErrDuplicateVoter, "voter already in voter set")
		}

		now := srv.now()

		entry.Votes++
		entry.Voters = append(entry.Voters, input.UserID)
		entry.UpdatedAt = now
		if err := entryRepo.Update(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to update entry tally")
		}

		if err := voteRepo.Create(ctx, &entity.VoteRecord{
			ID:          entity.VoteIDFor(input.UserID, input.EntryID),
			VoterID:     input.UserID,
			EntryID:     input.EntryID,
			EntryAuthor: entry.AuthorName,
			CreatedAt:   now,
		}); err != nil {
			return errors.Wrap(err, "failed to create vote record")
		}

		user.IsVoted = true
		user.VotedFor = &entry.ID
		user.UpdatedAt = now
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update voter flags")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Vote rejected",
			slog.String("userID", input.UserID), slog.String("entryID", input.EntryID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Vote cast", slog.String("userID", input.UserID), slog.String("entryID", input.EntryID))

	return nil
}

// Unvote withdraws the user's vote, restoring the pre-vote state.
func (srv *votingService) Unvote(ctx context.Context, input *usecase.VoteInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		entryRepo := repoFactory.EntryRepo()
		voteRepo := repoFactory.VoteRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "unknown voter")
			}

			return errors.Wrap(err, "failed to find voter")
		}

		entry, err := entryRepo.FindByIDForUpdate(ctx, input.EntryID)
		if err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return errors.Wrap(domainerrors.ErrEntryNotFound, "no such entry")
			}

			return errors.Wrap(err, "failed to find entry")
		}

		if !user.HasVotedFor(input.EntryID) || !entry.HasVoter(input.UserID) {
			return errors.Wrap(domainerrors.ErrNotVoted, "no active vote for this entry")
		}

		now := srv.now()

		entry.Votes--
		if entry.Votes < 0 {
			entry.Votes = 0
		}
		entry.Voters = removeVoter(entry.Voters, input.UserID)
		entry.UpdatedAt = now
		if err := entryRepo.Update(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to update entry tally")
		}

		// The record may already be gone if a previous unvote was cut short;
		// deletion tolerates absence.
		if err := voteRepo.Delete(ctx, entity.VoteIDFor(input.UserID, input.EntryID)); err != nil {
			return errors.Wrap(err, "failed to delete vote record")
		}

		user.IsVoted = false
		user.VotedFor = nil
		user.UpdatedAt = now
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to clear voter flags")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Unvote rejected",
			slog.String("userID", input.UserID), slog.String("entryID", input.EntryID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Vote withdrawn", slog.String("userID", input.UserID), slog.String("entryID", input.EntryID))

	return nil
}

func removeVoter(voters []string, userID string) []string {
	result := make([]string, 0, len(voters))
	for _, v := range voters {
		if v != userID {
			result = append(result, v)
		}
	}

	return result
}
