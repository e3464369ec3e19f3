package auth

import (
	"testing"
	"time"

	"inkwell/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHasherConfig(cost int) *config.Config {
	return &config.Config{
		Admin: &config.AdminConfig{
			SecretKey:  "secret",
			SessionTTL: 24 * time.Hour,
			BcryptCost: cost,
		},
	}
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(4))

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("incorrect horse", hash))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(4))

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	// An out-of-range cost falls back to the bcrypt default instead of
	// failing at hash time.
	hasher := NewBcryptHasher(testHasherConfig(999))

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.True(t, hasher.Check("pw", hash))
}

func TestSessionTokenService_Generate(t *testing.T) {
	svc := NewSessionTokenService()

	raw, hash, err := svc.Generate()
	require.NoError(t, err)

	// 32 bytes hex-encoded, and the stored hash never equals the raw token.
	assert.Len(t, raw, 64)
	assert.Len(t, hash, 64)
	assert.NotEqual(t, raw, hash)
	assert.Equal(t, hash, svc.HashToken(raw))
}

func TestSessionTokenService_TokensAreUnique(t *testing.T) {
	svc := NewSessionTokenService()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		raw, _, err := svc.Generate()
		require.NoError(t, err)
		_, dup := seen[raw]
		require.False(t, dup)
		seen[raw] = struct{}{}
	}
}

func TestSessionTokenService_HashIsDeterministic(t *testing.T) {
	svc := NewSessionTokenService()

	assert.Equal(t, svc.HashToken("abc"), svc.HashToken("abc"))
	assert.NotEqual(t, svc.HashToken("abc"), svc.HashToken("abd"))
}
