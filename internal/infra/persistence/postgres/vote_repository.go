package postgres

import (
	"context"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// voteRepository implements the domain's VoteRepository interface using GORM.
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository is the constructor for voteRepository.
func NewVoteRepository(db *gorm.DB) repository.VoteRepository {
	return &voteRepository{db: db}
}

// FindByVoter retrieves the voter's active vote record, if any.
func (repo *voteRepository) FindByVoter(ctx context.Context, voterID string) (*entity.VoteRecord, error) {
	var voteM model.VoteModel
	err := repo.db.WithContext(ctx).
		Where("voter_id = ?", voterID).
		First(&voteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find vote by voter")
	}

	return voteM.ToDomain(), nil
}

// Create persists a new vote record. The unique key on voter_id turns a
// racing double vote into a duplicate error.
func (repo *voteRepository) Create(ctx context.Context, vote *entity.VoteRecord) error {
	voteM := model.VoteFromDomain(vote)

	if err := repo.db.WithContext(ctx).Create(voteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyVoted
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vote record")
	}

	vote.CreatedAt = voteM.CreatedAt

	return nil
}

// Delete removes a vote record by its ID. An already-missing row is not an
// error; unvote stays idempotent at the store level.
func (repo *voteRepository) Delete(ctx context.Context, id string) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VoteModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete vote record")
	}

	return nil
}

// DeleteAll removes every vote record.
func (repo *voteRepository) DeleteAll(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.VoteModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete vote records")
	}

	return nil
}

// Count returns the total number of active vote records.
func (repo *voteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.VoteModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count vote records")
	}

	return count, nil
}
