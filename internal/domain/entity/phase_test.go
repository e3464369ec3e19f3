package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleAround(now time.Time) *Timeline {
	return &Timeline{
		RegistrationStart: now.Add(-72 * time.Hour),
		RegistrationEnd:   now.Add(-48 * time.Hour),
		SubmissionStart:   now.Add(-24 * time.Hour),
		SubmissionEnd:     now.Add(24 * time.Hour),
		VotingStart:       now.Add(48 * time.Hour),
		VotingEnd:         now.Add(72 * time.Hour),
		ResultsDate:       now.Add(96 * time.Hour),
	}
}

func TestResolvePhase(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want Phase
	}{
		{name: "inside registration", at: now.Add(-60 * time.Hour), want: PhaseRegistration},
		{name: "inside submission", at: now, want: PhaseSubmission},
		{name: "inside voting", at: now.Add(60 * time.Hour), want: PhaseVoting},
		{name: "between voting end and results", at: now.Add(80 * time.Hour), want: PhaseAwaitingResults},
		{name: "at results date", at: now.Add(96 * time.Hour), want: PhaseResults},
		{name: "after results date", at: now.Add(200 * time.Hour), want: PhaseResults},
		{name: "between registration and submission", at: now.Add(-36 * time.Hour), want: PhaseInactive},
	}

	timeline := scheduleAround(now)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePhase(timeline, tt.at))
		})
	}
}

// Window bounds are inclusive on both ends: exactly at a start or end
// instant the window is still active.
func TestResolvePhase_InclusiveBounds(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	timeline := scheduleAround(now)

	assert.Equal(t, PhaseRegistration, ResolvePhase(timeline, timeline.RegistrationStart))
	assert.Equal(t, PhaseRegistration, ResolvePhase(timeline, timeline.RegistrationEnd))
	assert.Equal(t, PhaseSubmission, ResolvePhase(timeline, timeline.SubmissionStart))
	assert.Equal(t, PhaseSubmission, ResolvePhase(timeline, timeline.SubmissionEnd))
	assert.Equal(t, PhaseVoting, ResolvePhase(timeline, timeline.VotingStart))
	assert.Equal(t, PhaseVoting, ResolvePhase(timeline, timeline.VotingEnd))
}

// Earlier windows win when windows overlap: a registration window that has
// ended an instant ago hands over to an open submission window at T exactly.
func TestResolvePhase_FirstMatchWins(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	timeline := &Timeline{
		RegistrationStart: at.Add(-48 * time.Hour),
		RegistrationEnd:   at.Add(-time.Second),
		SubmissionStart:   at.Add(-time.Second),
		SubmissionEnd:     at.Add(240 * time.Hour),
		VotingStart:       at.Add(-time.Second), // overlaps submission
		VotingEnd:         at.Add(480 * time.Hour),
		ResultsDate:       at.Add(840 * time.Hour),
	}

	assert.Equal(t, PhaseSubmission, ResolvePhase(timeline, at))
}

func TestPhaseRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	timeline := scheduleAround(now)

	remaining := PhaseRemaining(timeline, now)
	require.NotNil(t, remaining)
	assert.Equal(t, 1, remaining.Days)
	assert.Equal(t, 0, remaining.Hours)
	assert.Equal(t, 0, remaining.Minutes)
	assert.Equal(t, 0, remaining.Seconds)
	assert.Equal(t, (24 * time.Hour).Milliseconds(), remaining.TotalMs)
}

func TestPhaseRemaining_Components(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	timeline := scheduleAround(now)
	at := timeline.SubmissionEnd.Add(-(26*time.Hour + 3*time.Minute + 5*time.Second))

	remaining := PhaseRemaining(timeline, at)
	require.NotNil(t, remaining)
	assert.Equal(t, 1, remaining.Days)
	assert.Equal(t, 2, remaining.Hours)
	assert.Equal(t, 3, remaining.Minutes)
	assert.Equal(t, 5, remaining.Seconds)
}

func TestPhaseRemaining_AwaitingResultsCountsToResultsDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	timeline := scheduleAround(now)
	at := now.Add(84 * time.Hour) // after voting, before results

	remaining := PhaseRemaining(timeline, at)
	require.NotNil(t, remaining)
	assert.Equal(t, (12 * time.Hour).Milliseconds(), remaining.TotalMs)
}

func TestPhaseRemaining_TerminalPhases(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	timeline := scheduleAround(now)

	assert.Nil(t, PhaseRemaining(timeline, now.Add(96*time.Hour)))  // results
	assert.Nil(t, PhaseRemaining(timeline, now.Add(-36*time.Hour))) // inactive
}

func TestDefaultTimeline(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	timeline := DefaultTimeline(now)

	assert.True(t, timeline.SubmissionEnabled)
	assert.False(t, timeline.VotingEnabled)
	assert.Equal(t, PhaseRegistration, ResolvePhase(timeline, now))
	assert.Equal(t, now.Add(14*24*time.Hour), timeline.RegistrationEnd)
	assert.Equal(t, now.Add(35*24*time.Hour), timeline.ResultsDate)
}
