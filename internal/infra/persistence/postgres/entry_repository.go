package postgres

import (
	"context"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entryRepository implements the domain's EntryRepository interface using GORM.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{db: db}
}

// FindByID retrieves a single entry with its voter set.
func (repo *entryRepository) FindByID(ctx context.Context, id string) (*entity.Entry, error) {
	var entryM model.EntryModel
	err := repo.db.WithContext(ctx).
		Preload("VoteRows").
		Where("id = ?", id).
		First(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find entry by id")
	}

	return entryM.ToDomain(), nil
}

// FindByIDForUpdate retrieves an entry with a FOR UPDATE row lock. The lock
// is held until the surrounding transaction commits or rolls back, which
// serializes concurrent tally updates on the same entry.
func (repo *entryRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Entry, error) {
	var entryM model.EntryModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to lock entry by id")
	}

	// FOR UPDATE cannot be combined with Preload's separate query under the
	// same locking clause, so the voter set is loaded afterwards.
	var voteRows []model.VoteModel
	err = repo.db.WithContext(ctx).
		Where("entry_id = ?", id).
		Find(&voteRows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load voter set")
	}
	entryM.VoteRows = voteRows

	return entryM.ToDomain(), nil
}

// List returns all entries with voter sets, sorted by votes descending and
// then by creation time, newest first. When excludeUserID is non-empty that
// owner's entry is omitted.
func (repo *entryRepository) List(ctx context.Context, excludeUserID string) ([]*entity.Entry, error) {
	query := repo.db.WithContext(ctx).
		Preload("VoteRows").
		Order("votes DESC").
		Order("created_at DESC")
	if excludeUserID != "" {
		query = query.Where("user_id <> ?", excludeUserID)
	}

	var entryMs []model.EntryModel
	if err := query.Find(&entryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list entries")
	}

	entries := make([]*entity.Entry, 0, len(entryMs))
	for i := range entryMs {
		entries = append(entries, entryMs[i].ToDomain())
	}

	return entries, nil
}

// Create persists a new entry. The unique keys on id and user_id turn a
// racing double submit into ErrEntryExists.
func (repo *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryM := model.EntryFromDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEntryExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create entry")
	}

	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// Update modifies an existing entry's tally, status and moderation fields.
func (repo *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	entryM := model.EntryFromDomain(entry)

	result := repo.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("id = ?", entryM.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(entryM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// Count returns the total number of entries.
func (repo *entryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.EntryModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count entries")
	}

	return count, nil
}

// CountByStatus returns entry counts keyed by moderation status.
func (repo *entryRepository) CountByStatus(ctx context.Context) (map[entity.EntryStatus]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := repo.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count entries by status")
	}

	counts := make(map[entity.EntryStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.EntryStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// ResetVotes zeroes the vote tally on every entry.
func (repo *entryRepository) ResetVotes(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("votes <> ?", 0).
		Update("votes", 0).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reset entry votes")
	}

	return nil
}
