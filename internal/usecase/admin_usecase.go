package usecase

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
)

// RegisterAdminInput defines the data required to register an admin account.
// SecretKey must match the configured bootstrap secret.
type RegisterAdminInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required"`
	SecretKey string `json:"secretKey" validate:"required"`
}

// AdminLoginInput defines the data required for an admin to log in.
type AdminLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminSessionOutput returns the admin profile together with the raw session
// token and its expiry. The delivery layer turns the token into a cookie.
type AdminSessionOutput struct {
	Admin     *entity.AdminProfile
	Token     string
	ExpiresAt time.Time
}

// AdminUsecase defines the interface for admin session management:
// credential validation, token issuance and the authorization gate.
type AdminUsecase interface {
	// Register creates an admin account after checking the bootstrap secret,
	// then issues a session.
	Register(ctx context.Context, input *RegisterAdminInput) (*AdminSessionOutput, error)

	// Login validates credentials and issues a session.
	Login(ctx context.Context, input *AdminLoginInput) (*AdminSessionOutput, error)

	// ValidateSession resolves a raw token to the admin's public profile,
	// failing on unknown or expired sessions.
	ValidateSession(ctx context.Context, token string) (*entity.AdminProfile, error)

	// Logout revokes the session server-side. Unknown tokens are ignored.
	Logout(ctx context.Context, token string) error

	// ResetCompetition clears every vote, vote flag and tally. Admin-only.
	ResetCompetition(ctx context.Context) error
}
