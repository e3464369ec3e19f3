package repository

import (
	"context"

	"inkwell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session has expired.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the interface for admin session management.
// Sessions are separate records rather than a token field on the admin row,
// which allows multi-session logins and explicit revocation.
type SessionRepository interface {
	// Create persists a new session, representing one admin login.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session record by its securely stored hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash deletes a session by its hash, ending that login.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByAdminID removes all sessions for a specific admin.
	DeleteByAdminID(ctx context.Context, adminID uuid.UUID) error

	// DeleteExpired removes all expired sessions from the store.
	// Called opportunistically during login.
	DeleteExpired(ctx context.Context) error
}
