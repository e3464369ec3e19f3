package entity

import "time"

// Phase represents one of the mutually exclusive competition time windows
// derived from the timeline and wall-clock time.
type Phase string

const (
	// PhaseRegistration indicates the registration window is open.
	PhaseRegistration Phase = "registration"
	// PhaseSubmission indicates the submission window is open.
	PhaseSubmission Phase = "submission"
	// PhaseVoting indicates the voting window is open.
	PhaseVoting Phase = "voting"
	// PhaseResults indicates results have been published.
	PhaseResults Phase = "results"
	// PhaseAwaitingResults indicates voting has closed but results are not out yet.
	PhaseAwaitingResults Phase = "awaiting_results"
	// PhaseInactive indicates no window is currently active.
	PhaseInactive Phase = "inactive"
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	return string(p)
}

// IsValid checks if the Phase is a valid value.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseRegistration, PhaseSubmission, PhaseVoting,
		PhaseResults, PhaseAwaitingResults, PhaseInactive:
		return true
	default:
		return false
	}
}

// TimeRemaining is the countdown until the active phase's end boundary.
type TimeRemaining struct {
	Days    int   `json:"days"`
	Hours   int   `json:"hours"`
	Minutes int   `json:"minutes"`
	Seconds int   `json:"seconds"`
	TotalMs int64 `json:"totalMs"`
}

// ResolvePhase computes the current phase from the timeline and wall-clock
// time. The windows are evaluated in a fixed order and the first match wins,
// so overlapping windows resolve deterministically.
func ResolvePhase(t *Timeline, now time.Time) Phase {
	switch {
	case within(now, t.RegistrationStart, t.RegistrationEnd):
		return PhaseRegistration
	case within(now, t.SubmissionStart, t.SubmissionEnd):
		return PhaseSubmission
	case within(now, t.VotingStart, t.VotingEnd):
		return PhaseVoting
	case !now.Before(t.ResultsDate):
		return PhaseResults
	case now.After(t.VotingEnd) && now.Before(t.ResultsDate):
		return PhaseAwaitingResults
	default:
		return PhaseInactive
	}
}

// PhaseRemaining returns the countdown to the active phase's end boundary,
// or nil when no countdown applies (results and inactive are terminal).
func PhaseRemaining(t *Timeline, now time.Time) *TimeRemaining {
	var end time.Time

	switch ResolvePhase(t, now) {
	case PhaseRegistration:
		end = t.RegistrationEnd
	case PhaseSubmission:
		end = t.SubmissionEnd
	case PhaseVoting:
		end = t.VotingEnd
	case PhaseAwaitingResults:
		end = t.ResultsDate
	case PhaseResults, PhaseInactive:
		return nil
	}

	remaining := end.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	return &TimeRemaining{
		Days:    int(remaining / (24 * time.Hour)),
		Hours:   int(remaining % (24 * time.Hour) / time.Hour),
		Minutes: int(remaining % time.Hour / time.Minute),
		Seconds: int(remaining % time.Minute / time.Second),
		TotalMs: remaining.Milliseconds(),
	}
}

// within reports whether now falls inside [start, end], bounds inclusive.
func within(now, start, end time.Time) bool {
	return !now.Before(start) && !now.After(end)
}
