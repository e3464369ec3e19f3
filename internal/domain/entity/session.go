package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a single authorized admin login. Each login issues a
// fresh record, so one admin may hold several live sessions and each can be
// revoked independently.
type Session struct {
	ID        uuid.UUID // The unique ID for this specific session record.
	AdminID   uuid.UUID // Links this session to the Admin it belongs to.
	TokenHash string    // SHA-256 hash of the raw session token; the raw value is never stored.
	ExpiresAt time.Time // The exact time when this session becomes invalid.
	CreatedAt time.Time // When the admin logged in.
}

// IsExpired reports whether the session is past its expiry at the given time.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
