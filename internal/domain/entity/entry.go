package entity

import "time"

// EntryIDPrefix is prepended to the owner's user ID to form the entry ID.
// Deriving the ID from the owner turns one-entry-per-user into a natural
// uniqueness constraint.
const EntryIDPrefix = "entry_"

// EntryStatus represents the moderation state of an entry.
type EntryStatus string

const (
	// EntryStatusPending indicates an entry awaiting moderation.
	EntryStatusPending EntryStatus = "pending"
	// EntryStatusApproved indicates an entry cleared by a moderator.
	EntryStatusApproved EntryStatus = "approved"
	// EntryStatusRejected indicates an entry rejected by a moderator.
	EntryStatusRejected EntryStatus = "rejected"
)

// String returns the string representation of the EntryStatus.
func (s EntryStatus) String() string {
	return string(s)
}

// IsValid checks if the EntryStatus is a valid value.
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusPending, EntryStatusApproved, EntryStatusRejected:
		return true
	default:
		return false
	}
}

// IsModerated reports whether the status is a valid moderation outcome.
// Pending is the initial state, not an outcome a moderator may set.
func (s EntryStatus) IsModerated() bool {
	return s == EntryStatusApproved || s == EntryStatusRejected
}

// Entry is a user's competition submission together with its vote tally and
// moderation status. Voters holds the ids of users with a still-active vote
// for this entry; Votes must always equal len(Voters).
type Entry struct {
	ID         string      // Derived key: EntryIDPrefix + UserID.
	UserID     string      // The owner. Exactly one entry per user.
	AuthorName string      // Full name supplied at submission time.
	Year       string      // Academic year of the author.
	Branch     string      // Branch/department of the author.
	Title      string      // Entry title.
	Content    string      // Rich-text body.
	Votes      int         // Denormalized vote count, never negative.
	Voters     []string    // Ids of users currently voting for this entry.
	Status     EntryStatus // Moderation state.
	UpdatedBy  string      // Email of the admin who last changed the status.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EntryIDFor returns the derived entry ID for a given owner.
func EntryIDFor(userID string) string {
	return EntryIDPrefix + userID
}

// HasVoter reports whether the given user is in the entry's voter set.
func (e *Entry) HasVoter(userID string) bool {
	for _, v := range e.Voters {
		if v == userID {
			return true
		}
	}

	return false
}
