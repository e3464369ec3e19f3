// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a competitor account, provisioned on first Google sign-in.
// Its ID is the external provider uid, so the identity bridge never needs a
// mapping table between external and internal identifiers.
type User struct {
	ID          string    // External sign-in uid, used as the primary key.
	Email       string    // The user's contact email from the provider.
	DisplayName string    // Display name as reported by the provider.
	PhotoURL    string    // Avatar URL as reported by the provider.
	IsSubmitted bool      // True once the user has submitted their entry.
	IsVoted     bool      // True while the user holds an active vote.
	VotedFor    *string   // ID of the entry the user voted for; nil whenever IsVoted is false.
	CreatedAt   time.Time // Timestamp of first sign-in.
	UpdatedAt   time.Time // Timestamp of the last modification to this user's data.
}

// HasVotedFor reports whether the user's active vote targets the given entry.
func (u *User) HasVotedFor(entryID string) bool {
	return u.IsVoted && u.VotedFor != nil && *u.VotedFor == entryID
}
