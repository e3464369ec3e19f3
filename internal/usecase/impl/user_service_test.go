package impl

import (
	"context"
	"testing"

	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	identity *service.ExternalIdentity
	err      error
}

func (v *fakeVerifier) VerifyIDToken(_ context.Context, _ string) (*service.ExternalIdentity, error) {
	return v.identity, v.err
}

func newUserFixture(verifier service.IdentityVerifier) (*memStore, usecase.UserUsecase) {
	store := newMemStore()
	svc := NewUserService(&fakeTxManager{store: store}, &fakeUserRepo{store: store}, verifier, testLogger())

	return store, svc
}

func TestSignIn_ProvisionsOnFirstSight(t *testing.T) {
	store, svc := newUserFixture(nil)

	output, err := svc.SignIn(context.Background(), &usecase.SignInInput{
		UID:         "uid-1",
		Email:       "ada@example.com",
		DisplayName: "Ada",
		PhotoURL:    "https://example.com/ada.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", output.User.ID)
	assert.False(t, output.User.IsSubmitted)
	assert.False(t, output.User.IsVoted)

	stored := store.users["uid-1"]
	require.NotNil(t, stored)
	assert.Equal(t, "ada@example.com", stored.Email)
}

func TestSignIn_RefreshesProfile(t *testing.T) {
	store, svc := newUserFixture(nil)
	user := newTestUser(store, "uid-1")
	user.IsSubmitted = true

	output, err := svc.SignIn(context.Background(), &usecase.SignInInput{
		UID:         "uid-1",
		Email:       "new@example.com",
		DisplayName: "Ada L.",
	})
	require.NoError(t, err)

	// Profile fields follow the provider; competition state is untouched.
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, "Ada L.", output.User.DisplayName)
	assert.True(t, output.User.IsSubmitted)
	assert.Equal(t, "new@example.com", store.users["uid-1"].Email)
}

func TestSignIn_RequiresUID(t *testing.T) {
	_, svc := newUserFixture(nil)

	_, err := svc.SignIn(context.Background(), &usecase.SignInInput{Email: "ada@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSignIn_VerifierClaimsWin(t *testing.T) {
	store, svc := newUserFixture(&fakeVerifier{
		identity: &service.ExternalIdentity{
			UID:         "uid-verified",
			Email:       "verified@example.com",
			DisplayName: "Verified Ada",
		},
	})

	output, err := svc.SignIn(context.Background(), &usecase.SignInInput{
		UID:     "uid-posted",
		Email:   "posted@example.com",
		IDToken: "some-id-token",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-verified", output.User.ID)
	assert.Equal(t, "verified@example.com", output.User.Email)
	assert.NotContains(t, store.users, "uid-posted")
}

func TestSignIn_InvalidIDToken(t *testing.T) {
	_, svc := newUserFixture(&fakeVerifier{err: domainerrors.ErrIDTokenInvalid})

	_, err := svc.SignIn(context.Background(), &usecase.SignInInput{
		UID:     "uid-1",
		IDToken: "tampered",
	})
	assert.ErrorIs(t, err, domainerrors.ErrIDTokenInvalid)
}

func TestGetUser(t *testing.T) {
	store, svc := newUserFixture(nil)
	newTestUser(store, "uid-1")

	user, err := svc.GetUser(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)

	_, err = svc.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
