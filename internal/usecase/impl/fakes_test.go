package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"inkwell/config"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"

	"github.com/google/uuid"
)

// memStore is the shared backing store for the in-memory repository fakes.
// The transaction manager serializes access, mirroring the per-operation
// atomicity of the real store.
type memStore struct {
	mu sync.Mutex

	users    map[string]*entity.User
	entries  map[string]*entity.Entry
	votes    map[string]*entity.VoteRecord
	timeline *entity.Timeline
	admins   map[uuid.UUID]*entity.Admin
	sessions map[string]*entity.Session
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*entity.User),
		entries:  make(map[string]*entity.Entry),
		votes:    make(map[string]*entity.VoteRecord),
		admins:   make(map[uuid.UUID]*entity.Admin),
		sessions: make(map[string]*entity.Session),
	}
}

// fakeTxManager runs the callback under the store mutex. Individual repo
// methods do not lock, so nested calls within one transaction never deadlock
// while concurrent transactions stay serialized.
type fakeTxManager struct {
	store *memStore
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	return fn(&fakeFactory{store: tm.store})
}

type fakeFactory struct {
	store *memStore
}

func (f *fakeFactory) UserRepo() repository.UserRepository         { return &fakeUserRepo{store: f.store} }
func (f *fakeFactory) EntryRepo() repository.EntryRepository       { return &fakeEntryRepo{store: f.store} }
func (f *fakeFactory) VoteRepo() repository.VoteRepository         { return &fakeVoteRepo{store: f.store} }
func (f *fakeFactory) TimelineRepo() repository.TimelineRepository {
	return &fakeTimelineRepo{store: f.store}
}
func (f *fakeFactory) AdminRepo() repository.AdminRepository { return &fakeAdminRepo{store: f.store} }
func (f *fakeFactory) SessionRepo() repository.SessionRepository {
	return &fakeSessionRepo{store: f.store}
}

// --- user repo ---

type fakeUserRepo struct {
	store *memStore
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := r.store.users[user.ID]; ok {
		return repository.ErrUserNotFound
	}
	r.store.users[user.ID] = cloneUser(user)

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.store.users[user.ID] = cloneUser(user)

	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		users = append(users, cloneUser(u))
	}

	return users, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.users)), nil
}

func (r *fakeUserRepo) CountSubmitted(_ context.Context) (int64, error) {
	var count int64
	for _, u := range r.store.users {
		if u.IsSubmitted {
			count++
		}
	}

	return count, nil
}

func (r *fakeUserRepo) ClearVoteFlags(_ context.Context) error {
	for _, u := range r.store.users {
		u.IsVoted = false
		u.VotedFor = nil
	}

	return nil
}

// --- entry repo ---

type fakeEntryRepo struct {
	store *memStore
}

func (r *fakeEntryRepo) FindByID(_ context.Context, id string) (*entity.Entry, error) {
	entry, ok := r.store.entries[id]
	if !ok {
		return nil, repository.ErrEntryNotFound
	}

	return cloneEntry(entry), nil
}

func (r *fakeEntryRepo) FindByIDForUpdate(ctx context.Context, id string) (*entity.Entry, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeEntryRepo) List(_ context.Context, excludeUserID string) ([]*entity.Entry, error) {
	entries := make([]*entity.Entry, 0, len(r.store.entries))
	for _, e := range r.store.entries {
		if excludeUserID != "" && e.UserID == excludeUserID {
			continue
		}
		entries = append(entries, cloneEntry(e))
	}
	sortEntries(entries)

	return entries, nil
}

func (r *fakeEntryRepo) Create(_ context.Context, entry *entity.Entry) error {
	if _, ok := r.store.entries[entry.ID]; ok {
		return repository.ErrEntryExists
	}
	for _, e := range r.store.entries {
		if e.UserID == entry.UserID {
			return repository.ErrEntryExists
		}
	}
	r.store.entries[entry.ID] = cloneEntry(entry)

	return nil
}

func (r *fakeEntryRepo) Update(_ context.Context, entry *entity.Entry) error {
	if _, ok := r.store.entries[entry.ID]; !ok {
		return repository.ErrEntryNotFound
	}
	r.store.entries[entry.ID] = cloneEntry(entry)

	return nil
}

func (r *fakeEntryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.entries)), nil
}

func (r *fakeEntryRepo) CountByStatus(_ context.Context) (map[entity.EntryStatus]int64, error) {
	counts := make(map[entity.EntryStatus]int64)
	for _, e := range r.store.entries {
		counts[e.Status]++
	}

	return counts, nil
}

func (r *fakeEntryRepo) ResetVotes(_ context.Context) error {
	for _, e := range r.store.entries {
		e.Votes = 0
		e.Voters = nil
	}

	return nil
}

// --- vote repo ---

type fakeVoteRepo struct {
	store *memStore
}

func (r *fakeVoteRepo) FindByVoter(_ context.Context, voterID string) (*entity.VoteRecord, error) {
	for _, v := range r.store.votes {
		if v.VoterID == voterID {
			clone := *v

			return &clone, nil
		}
	}

	return nil, repository.ErrVoteNotFound
}

func (r *fakeVoteRepo) Create(_ context.Context, vote *entity.VoteRecord) error {
	for _, v := range r.store.votes {
		if v.VoterID == vote.VoterID {
			return repository.ErrVoteNotFound
		}
	}
	clone := *vote
	r.store.votes[vote.ID] = &clone

	return nil
}

func (r *fakeVoteRepo) Delete(_ context.Context, id string) error {
	delete(r.store.votes, id)

	return nil
}

func (r *fakeVoteRepo) DeleteAll(_ context.Context) error {
	r.store.votes = make(map[string]*entity.VoteRecord)

	return nil
}

func (r *fakeVoteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.votes)), nil
}

// --- timeline repo ---

type fakeTimelineRepo struct {
	store *memStore
}

func (r *fakeTimelineRepo) Get(_ context.Context) (*entity.Timeline, error) {
	if r.store.timeline == nil {
		return nil, repository.ErrTimelineNotFound
	}
	clone := *r.store.timeline

	return &clone, nil
}

func (r *fakeTimelineRepo) Save(_ context.Context, timeline *entity.Timeline) error {
	clone := *timeline
	r.store.timeline = &clone

	return nil
}

func (r *fakeTimelineRepo) EnsureDefault(_ context.Context, timeline *entity.Timeline) error {
	if r.store.timeline != nil {
		return nil
	}
	clone := *timeline
	r.store.timeline = &clone

	return nil
}

// --- admin repo ---

type fakeAdminRepo struct {
	store *memStore
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	admin, ok := r.store.admins[id]
	if !ok {
		return nil, repository.ErrAdminNotFound
	}
	clone := *admin

	return &clone, nil
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	for _, a := range r.store.admins {
		if a.Email == email {
			clone := *a

			return &clone, nil
		}
	}

	return nil, repository.ErrAdminNotFound
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	clone := *admin
	r.store.admins[admin.ID] = &clone

	return nil
}

func (r *fakeAdminRepo) Update(_ context.Context, admin *entity.Admin) error {
	if _, ok := r.store.admins[admin.ID]; !ok {
		return repository.ErrAdminNotFound
	}
	clone := *admin
	r.store.admins[admin.ID] = &clone

	return nil
}

// --- session repo ---

type fakeSessionRepo struct {
	store *memStore
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	clone := *session
	r.store.sessions[session.TokenHash] = &clone

	return nil
}

func (r *fakeSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	session, ok := r.store.sessions[tokenHash]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	clone := *session

	return &clone, nil
}

func (r *fakeSessionRepo) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	delete(r.store.sessions, tokenHash)

	return nil
}

func (r *fakeSessionRepo) DeleteByAdminID(_ context.Context, adminID uuid.UUID) error {
	for hash, s := range r.store.sessions {
		if s.AdminID == adminID {
			delete(r.store.sessions, hash)
		}
	}

	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context) error {
	now := time.Now()
	for hash, s := range r.store.sessions {
		if s.IsExpired(now) {
			delete(r.store.sessions, hash)
		}
	}

	return nil
}

// --- domain service fakes ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	mu      sync.Mutex
	counter int
}

func (s *fakeTokenService) Generate() (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	raw := fmt.Sprintf("token-%d", s.counter)

	return raw, s.HashToken(raw), nil
}

func (s *fakeTokenService) HashToken(raw string) string {
	return "hash:" + raw
}

// --- helpers ---

func cloneUser(u *entity.User) *entity.User {
	clone := *u
	if u.VotedFor != nil {
		votedFor := *u.VotedFor
		clone.VotedFor = &votedFor
	}

	return &clone
}

func cloneEntry(e *entity.Entry) *entity.Entry {
	clone := *e
	clone.Voters = append([]string(nil), e.Voters...)

	return &clone
}

func sortEntries(entries []*entity.Entry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entriesLess(entries[j], entries[j-1]); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}

func entriesLess(a, b *entity.Entry) bool {
	if a.Votes != b.Votes {
		return a.Votes > b.Votes
	}

	return a.CreatedAt.After(b.CreatedAt)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Postgres: nil,
		Admin: &config.AdminConfig{
			SecretKey:  "test-bootstrap-secret",
			SessionTTL: 24 * time.Hour,
			BcryptCost: 4,
		},
		Competition: &config.CompetitionConfig{
			MinWords: 1000,
			MaxWords: 1500,
		},
	}

	return cfg
}

// newTestUser stores and returns a registered user.
func newTestUser(store *memStore, id string) *entity.User {
	user := &entity.User{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: "User " + id,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	store.users[id] = user

	return user
}

// newTestEntry stores and returns an entry owned by userID.
func newTestEntry(store *memStore, userID string) *entity.Entry {
	entry := &entity.Entry{
		ID:         entity.EntryIDFor(userID),
		UserID:     userID,
		AuthorName: "Author " + userID,
		Title:      "Entry by " + userID,
		Content:    contentWithWords(1200),
		Status:     entity.EntryStatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	store.entries[entry.ID] = entry

	return entry
}

// contentWithWords builds plain text with exactly n words.
func contentWithWords(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}
