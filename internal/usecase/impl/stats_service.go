package impl

import (
	"context"
	"log/slog"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// leaderboardSize caps the leaderboard returned by statistics.
const leaderboardSize = 10

// statsService implements the StatsUsecase interface.
type statsService struct {
	userRepo  repository.UserRepository
	entryRepo repository.EntryRepository
	voteRepo  repository.VoteRepository
	logger    *slog.Logger
}

// StatsServiceParams holds dependencies for statsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	EntryRepo repository.EntryRepository
	VoteRepo  repository.VoteRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		userRepo:  params.UserRepo,
		entryRepo: params.EntryRepo,
		voteRepo:  params.VoteRepo,
		logger:    params.Logger,
	}
}

// GetStatistics aggregates competition-wide counts and the leaderboard.
// Reads are not transactional; the counts are a snapshot, not an invariant.
func (srv *statsService) GetStatistics(ctx context.Context) (*usecase.StatisticsOutput, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	submittedUsers, err := srv.userRepo.CountSubmitted(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count submitted users")
	}

	totalEntries, err := srv.entryRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count entries")
	}

	totalVotes, err := srv.voteRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count votes")
	}

	byStatus, err := srv.entryRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count entries by status")
	}

	entries, err := srv.entryRepo.List(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entries")
	}

	leaderboard := entries
	if len(leaderboard) > leaderboardSize {
		leaderboard = leaderboard[:leaderboardSize]
	}

	return &usecase.StatisticsOutput{
		TotalUsers:     totalUsers,
		TotalEntries:   totalEntries,
		TotalVotes:     totalVotes,
		SubmittedUsers: submittedUsers,
		EntriesByState: byStatus,
		Leaderboard:    leaderboard,
		Entries:        entries,
	}, nil
}

// ListUsers returns every registered user for the admin dashboard.
func (srv *statsService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
