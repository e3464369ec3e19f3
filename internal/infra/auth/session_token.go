package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"inkwell/internal/domain/service"

	"github.com/pkg/errors"
)

// tokenBytes is the entropy of a raw session token. 32 bytes is double the
// 128-bit floor required for an opaque credential.
const tokenBytes = 32

// sessionTokenService mints opaque admin session tokens. Only the SHA-256
// hash of a token is ever persisted, mirroring how refresh tokens are stored:
// a leaked session table does not leak usable credentials.
type sessionTokenService struct{}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService() service.SessionTokenService {
	return &sessionTokenService{}
}

// Generate returns a new random token and the hash under which it is stored.
func (s *sessionTokenService) Generate() (string, string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes")
	}

	raw := hex.EncodeToString(buf)

	return raw, s.HashToken(raw), nil
}

// HashToken returns the persistence hash of a raw token.
func (s *sessionTokenService) HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
