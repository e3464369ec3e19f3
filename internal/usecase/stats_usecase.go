package usecase

import (
	"context"

	"inkwell/internal/domain/entity"
)

// StatisticsOutput aggregates competition-wide counts and the leaderboard.
type StatisticsOutput struct {
	TotalUsers     int64                        `json:"totalUsers"`
	TotalEntries   int64                        `json:"totalEntries"`
	TotalVotes     int64                        `json:"totalVotes"`
	SubmittedUsers int64                        `json:"submittedUsers"`
	EntriesByState map[entity.EntryStatus]int64 `json:"entriesByStatus"`
	Leaderboard    []*entity.Entry              `json:"leaderboard"`
	Entries        []*entity.Entry              `json:"entries"`
}

// StatsUsecase defines the interface for aggregate statistics shown on the
// public results page and the admin dashboard.
type StatsUsecase interface {
	// GetStatistics returns totals, the top-10 leaderboard and the full
	// sorted entry list.
	GetStatistics(ctx context.Context) (*StatisticsOutput, error)

	// ListUsers returns every registered user for the admin dashboard.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
