package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture() (*memStore, *adminService) {
	store := newMemStore()
	svc := NewAdminService(AdminServiceParams{
		TxManager:   &fakeTxManager{store: store},
		AdminRepo:   &fakeAdminRepo{store: store},
		SessionRepo: &fakeSessionRepo{store: store},
		Hasher:      fakeHasher{},
		Tokens:      &fakeTokenService{},
		Config:      testConfig(),
		Logger:      testLogger(),
	}).(*adminService)

	return store, svc
}

func registerInput() *usecase.RegisterAdminInput {
	return &usecase.RegisterAdminInput{
		Email:     "admin@example.com",
		Password:  "correct horse",
		Name:      "First Admin",
		SecretKey: "test-bootstrap-secret",
	}
}

func TestRegister_SecretKeyMismatch(t *testing.T) {
	store, svc := newAdminFixture()

	input := registerInput()
	input.SecretKey = "wrong"

	_, err := svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrSecretKeyMismatch)
	assert.Empty(t, store.admins)
}

func TestRegister_IssuesSession(t *testing.T) {
	store, svc := newAdminFixture()

	output, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", output.Admin.Email)
	assert.NotEmpty(t, output.Token)
	assert.Len(t, store.admins, 1)
	assert.Len(t, store.sessions, 1)

	// Only the hash of the token is stored.
	for hash := range store.sessions {
		assert.NotEqual(t, output.Token, hash)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, svc := newAdminFixture()

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerInput())
	assert.ErrorIs(t, err, domainerrors.ErrAdminAlreadyExists)
}

func TestLogin(t *testing.T) {
	store, svc := newAdminFixture()
	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &usecase.AdminLoginInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &usecase.AdminLoginInput{
			Email:    "admin@example.com",
			Password: "incorrect horse",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("success updates last login", func(t *testing.T) {
		output, err := svc.Login(context.Background(), &usecase.AdminLoginInput{
			Email:    "admin@example.com",
			Password: "correct horse",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, output.Token)

		admin := store.admins[output.Admin.ID]
		assert.WithinDuration(t, time.Now(), admin.LastLogin, time.Minute)
	})
}

func TestValidateSession(t *testing.T) {
	_, svc := newAdminFixture()
	output, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	profile, err := svc.ValidateSession(context.Background(), output.Token)
	require.NoError(t, err)
	assert.Equal(t, output.Admin.ID, profile.ID)
	assert.Equal(t, "admin@example.com", profile.Email)

	_, err = svc.ValidateSession(context.Background(), "forged-token")
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)

	_, err = svc.ValidateSession(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestValidateSession_ExpiryBoundary(t *testing.T) {
	_, svc := newAdminFixture()
	output, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	// Just before expiry the session is still valid.
	svc.now = func() time.Time { return output.ExpiresAt.Add(-time.Millisecond) }
	_, err = svc.ValidateSession(context.Background(), output.Token)
	assert.NoError(t, err)

	// At and after expiry it is rejected.
	svc.now = func() time.Time { return output.ExpiresAt.Add(time.Millisecond) }
	_, err = svc.ValidateSession(context.Background(), output.Token)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestLogout_RevokesSession(t *testing.T) {
	store, svc := newAdminFixture()
	output, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), output.Token))
	assert.Empty(t, store.sessions)

	_, err = svc.ValidateSession(context.Background(), output.Token)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)

	// A second logout with the same token is a no-op.
	assert.NoError(t, svc.Logout(context.Background(), output.Token))
}

func TestResetCompetition(t *testing.T) {
	store, svc := newAdminFixture()
	voter := newTestUser(store, "voter")
	newTestUser(store, "author")
	entry := newTestEntry(store, "author")

	votingSvc := NewVotingService(&fakeTxManager{store: store}, testLogger())
	require.NoError(t, votingSvc.Vote(context.Background(), &usecase.VoteInput{
		UserID:  voter.ID,
		EntryID: entry.ID,
	}))

	require.NoError(t, svc.ResetCompetition(context.Background()))

	assert.Empty(t, store.votes)
	assert.Equal(t, 0, store.entries[entry.ID].Votes)
	assert.Empty(t, store.entries[entry.ID].Voters)
	assert.False(t, store.users[voter.ID].IsVoted)
	assert.Nil(t, store.users[voter.ID].VotedFor)
}
