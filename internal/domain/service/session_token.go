package service

// SessionTokenService defines the interface for minting and hashing opaque
// admin session tokens. Tokens are random credentials, not JWTs: validity
// lives in the session store, so a session can be revoked server-side.
type SessionTokenService interface {
	// Generate returns a new cryptographically random token with at least
	// 128 bits of entropy, plus the hash under which it is persisted.
	Generate() (raw string, hash string, err error)

	// HashToken returns the persistence hash of a raw token presented by a
	// client.
	HashToken(raw string) string
}
