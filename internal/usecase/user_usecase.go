// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"inkwell/internal/domain/entity"
)

// --- Input DTOs ---

// SignInInput carries the external identity asserted by the sign-in provider.
// When IDToken is present and a verifier is configured, the token's claims
// take precedence over the posted profile fields.
type SignInInput struct {
	UID         string `json:"uid" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	IDToken     string `json:"idToken"`
}

// --- Output DTOs ---

// SignInOutput returns the provisioned or refreshed user record.
type SignInOutput struct {
	User *entity.User `json:"user"`
}

// UserUsecase defines the interface for the identity bridge: mapping an
// external sign-in identity onto an internal user record.
type UserUsecase interface {
	// SignIn provisions the user on first sight and refreshes the stored
	// profile on subsequent sign-ins.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}
