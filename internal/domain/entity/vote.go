package entity

import "time"

// VoteIDPrefix is prepended to voter and entry ids to form a vote record ID.
const VoteIDPrefix = "vote_"

// VoteRecord is the audit row created when a user casts a vote and deleted
// when they withdraw it. It exists iff the voter is in the entry's voter set
// and the voter's VotedFor points at the entry.
type VoteRecord struct {
	ID          string    // Derived key: VoteIDPrefix + VoterID + "_" + EntryID.
	VoterID     string    // The user who cast the vote. At most one record per voter.
	EntryID     string    // The entry the vote targets.
	EntryAuthor string    // Author name of the entry at the time of voting.
	CreatedAt   time.Time // When the vote was cast.
}

// VoteIDFor returns the derived vote record ID for a voter/entry pair.
func VoteIDFor(voterID, entryID string) string {
	return VoteIDPrefix + voterID + "_" + entryID
}
