package postgres

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain's SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session record.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := model.SessionFromDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash retrieves a session record by its stored token hash.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	return sessionM.ToDomain(), nil
}

// DeleteByTokenHash deletes a session by its hash, ending that login.
// Deleting an absent session is not an error; logout stays idempotent.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.SessionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// DeleteByAdminID removes all sessions for a specific admin.
func (repo *sessionRepository) DeleteByAdminID(ctx context.Context, adminID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Delete(&model.SessionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete admin sessions")
	}

	return nil
}

// DeleteExpired removes all expired sessions from the store.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&model.SessionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete expired sessions")
	}

	return nil
}
