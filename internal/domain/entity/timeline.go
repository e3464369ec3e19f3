package entity

import "time"

// Timeline is the singleton document describing the competition schedule and
// the admin-controlled gates for submission and voting. Only admin actions
// mutate it.
type Timeline struct {
	VotingEnabled     bool      // Gate for the voting engine.
	SubmissionEnabled bool      // Gate for entry submission.
	RegistrationStart time.Time
	RegistrationEnd   time.Time
	SubmissionStart   time.Time
	SubmissionEnd     time.Time
	VotingStart       time.Time
	VotingEnd         time.Time
	ResultsDate       time.Time
	UpdatedAt         time.Time
}

// Default window offsets used when seeding a fresh deployment: registration
// and submission open immediately, voting follows submission, results a week
// after voting closes.
const (
	DefaultRegistrationDays = 14
	DefaultSubmissionDays   = 21
	DefaultVotingOpenDay    = 21
	DefaultVotingDays       = 7
	DefaultResultsDay       = 35
)

// DefaultTimeline builds the schedule seeded into a fresh deployment,
// anchored at now.
func DefaultTimeline(now time.Time) *Timeline {
	day := 24 * time.Hour

	return &Timeline{
		VotingEnabled:     false,
		SubmissionEnabled: true,
		RegistrationStart: now,
		RegistrationEnd:   now.Add(DefaultRegistrationDays * day),
		SubmissionStart:   now,
		SubmissionEnd:     now.Add(DefaultSubmissionDays * day),
		VotingStart:       now.Add(DefaultVotingOpenDay * day),
		VotingEnd:         now.Add((DefaultVotingOpenDay + DefaultVotingDays) * day),
		ResultsDate:       now.Add(DefaultResultsDay * day),
		UpdatedAt:         now,
	}
}
