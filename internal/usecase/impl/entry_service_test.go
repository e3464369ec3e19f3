package impl

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntryFixture() (*memStore, usecase.EntryUsecase) {
	store := newMemStore()
	svc := NewEntryService(EntryServiceParams{
		TxManager: &fakeTxManager{store: store},
		EntryRepo: &fakeEntryRepo{store: store},
		Config:    testConfig(),
		Logger:    testLogger(),
	})

	return store, svc
}

func submitInput(userID string, words int) *usecase.SubmitEntryInput {
	return &usecase.SubmitEntryInput{
		UserID:   userID,
		FullName: "Ada Writer",
		Year:     "3",
		Branch:   "CSE",
		Title:    "On Writing",
		Content:  contentWithWords(words),
	}
}

func TestSubmitEntry_Success(t *testing.T) {
	store, svc := newEntryFixture()
	newTestUser(store, "ada")

	output, err := svc.SubmitEntry(context.Background(), submitInput("ada", 1200))
	require.NoError(t, err)
	assert.Equal(t, entity.EntryIDFor("ada"), output.EntryID)

	entry := store.entries[output.EntryID]
	require.NotNil(t, entry)
	assert.Equal(t, 0, entry.Votes)
	assert.Equal(t, entity.EntryStatusPending, entry.Status)
	assert.True(t, store.users["ada"].IsSubmitted)
}

func TestSubmitEntry_WordCountBounds(t *testing.T) {
	tests := []struct {
		name    string
		words   int
		wantErr bool
	}{
		{name: "one below minimum", words: 999, wantErr: true},
		{name: "exactly minimum", words: 1000, wantErr: false},
		{name: "exactly maximum", words: 1500, wantErr: false},
		{name: "one above maximum", words: 1501, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, svc := newEntryFixture()
			newTestUser(store, "ada")

			_, err := svc.SubmitEntry(context.Background(), submitInput("ada", tt.words))
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrWordCountOutOfRange)
				assert.Empty(t, store.entries)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitEntry_UnknownUser(t *testing.T) {
	_, svc := newEntryFixture()

	_, err := svc.SubmitEntry(context.Background(), submitInput("ghost", 1200))
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestSubmitEntry_AlreadySubmitted(t *testing.T) {
	store, svc := newEntryFixture()
	user := newTestUser(store, "ada")
	user.IsSubmitted = true

	_, err := svc.SubmitEntry(context.Background(), submitInput("ada", 1200))
	assert.ErrorIs(t, err, domainerrors.ErrAlreadySubmitted)
}

func TestSubmitEntry_SubmissionClosed(t *testing.T) {
	store, svc := newEntryFixture()
	newTestUser(store, "ada")
	store.timeline = entity.DefaultTimeline(time.Now())
	store.timeline.SubmissionEnabled = false

	_, err := svc.SubmitEntry(context.Background(), submitInput("ada", 1200))
	assert.ErrorIs(t, err, domainerrors.ErrSubmissionClosed)
}

func TestSubmitEntry_CountsWordsAfterMarkupStripping(t *testing.T) {
	store, svc := newEntryFixture()
	newTestUser(store, "ada")

	// 999 words of prose padded with markup; tags must not count as words.
	input := submitInput("ada", 999)
	input.Content = "<p>" + input.Content + "</p><br/><div></div>"

	_, err := svc.SubmitEntry(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrWordCountOutOfRange)
}

func TestListEntries_SortsAndExcludesOwner(t *testing.T) {
	store, svc := newEntryFixture()
	newTestUser(store, "a")
	newTestUser(store, "b")
	newTestUser(store, "c")
	first := newTestEntry(store, "a")
	second := newTestEntry(store, "b")
	third := newTestEntry(store, "c")
	first.Votes = 1
	second.Votes = 5
	third.Votes = 3

	entries, err := svc.ListEntries(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, third.ID, entries[1].ID)
	assert.Equal(t, first.ID, entries[2].ID)

	entries, err = svc.ListEntries(context.Background(), "b")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.NotEqual(t, "b", e.UserID)
	}
}

func TestGetEntry_NotFound(t *testing.T) {
	_, svc := newEntryFixture()

	_, err := svc.GetEntry(context.Background(), "entry_missing")
	assert.ErrorIs(t, err, domainerrors.ErrEntryNotFound)
}

func TestUpdateEntryStatus(t *testing.T) {
	store, svc := newEntryFixture()
	newTestUser(store, "ada")
	entry := newTestEntry(store, "ada")

	updated, err := svc.UpdateEntryStatus(context.Background(), &usecase.UpdateEntryStatusInput{
		EntryID:   entry.ID,
		Status:    entity.EntryStatusApproved,
		UpdatedBy: "moderator",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EntryStatusApproved, updated.Status)
	assert.Equal(t, "moderator", updated.UpdatedBy)
	assert.Equal(t, entity.EntryStatusApproved, store.entries[entry.ID].Status)
}

func TestUpdateEntryStatus_RejectsNonModerationStatus(t *testing.T) {
	store, svc := newEntryFixture()
	newTestUser(store, "ada")
	entry := newTestEntry(store, "ada")

	_, err := svc.UpdateEntryStatus(context.Background(), &usecase.UpdateEntryStatusInput{
		EntryID: entry.ID,
		Status:  entity.EntryStatusPending,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
