package service

import "context"

// ExternalIdentity is the profile asserted by the external sign-in provider.
type ExternalIdentity struct {
	UID           string // Provider's unique subject identifier.
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
}

// IdentityVerifier defines the interface for verifying an external sign-in
// credential (a Google ID token) and extracting the asserted identity.
type IdentityVerifier interface {
	// VerifyIDToken checks the token's issuer, audience and expiry and
	// returns the identity it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*ExternalIdentity, error)
}
