package impl

import (
	"context"
	"fmt"
	"testing"

	"inkwell/internal/domain/entity"
	"inkwell/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsFixture() (*memStore, usecase.StatsUsecase) {
	store := newMemStore()
	svc := NewStatsService(StatsServiceParams{
		UserRepo:  &fakeUserRepo{store: store},
		EntryRepo: &fakeEntryRepo{store: store},
		VoteRepo:  &fakeVoteRepo{store: store},
		Logger:    testLogger(),
	})

	return store, svc
}

func TestGetStatistics(t *testing.T) {
	store, svc := newStatsFixture()
	votingSvc := NewVotingService(&fakeTxManager{store: store}, testLogger())

	author := newTestUser(store, "author")
	author.IsSubmitted = true
	entry := newTestEntry(store, "author")
	entry.Status = entity.EntryStatusApproved

	newTestUser(store, "voter")
	require.NoError(t, votingSvc.Vote(context.Background(), &usecase.VoteInput{
		UserID:  "voter",
		EntryID: entry.ID,
	}))

	stats, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalEntries)
	assert.Equal(t, int64(1), stats.TotalVotes)
	assert.Equal(t, int64(1), stats.SubmittedUsers)
	assert.Equal(t, int64(1), stats.EntriesByState[entity.EntryStatusApproved])
	require.Len(t, stats.Entries, 1)
	assert.Equal(t, entry.ID, stats.Entries[0].ID)
}

func TestGetStatistics_LeaderboardCap(t *testing.T) {
	store, svc := newStatsFixture()

	for i := 0; i < leaderboardSize+5; i++ {
		userID := fmt.Sprintf("author-%02d", i)
		newTestUser(store, userID)
		e := newTestEntry(store, userID)
		e.Votes = i
	}

	stats, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Len(t, stats.Leaderboard, leaderboardSize)
	assert.Len(t, stats.Entries, leaderboardSize+5)
	// Highest tally leads the board.
	assert.Equal(t, leaderboardSize+4, stats.Leaderboard[0].Votes)
}

func TestListUsers(t *testing.T) {
	store, svc := newStatsFixture()
	newTestUser(store, "a")
	newTestUser(store, "b")

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
