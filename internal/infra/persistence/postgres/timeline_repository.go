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

// timelineRepository implements the domain's TimelineRepository interface using GORM.
type timelineRepository struct {
	db *gorm.DB
}

// NewTimelineRepository is the constructor for timelineRepository.
func NewTimelineRepository(db *gorm.DB) repository.TimelineRepository {
	return &timelineRepository{db: db}
}

// Get retrieves the timeline singleton.
func (repo *timelineRepository) Get(ctx context.Context) (*entity.Timeline, error) {
	var timelineM model.TimelineModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", model.TimelineSingletonID).
		First(&timelineM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTimelineNotFound
		}

		return nil, errors.Wrap(err, "failed to load timeline")
	}

	return timelineM.ToDomain(), nil
}

// Save replaces the timeline singleton, inserting it if missing.
func (repo *timelineRepository) Save(ctx context.Context, timeline *entity.Timeline) error {
	timelineM := model.TimelineFromDomain(timeline)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(timelineM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save timeline")
	}

	return nil
}

// EnsureDefault persists the given timeline only if none exists yet.
// ON CONFLICT DO NOTHING keeps it idempotent across concurrent deploys.
func (repo *timelineRepository) EnsureDefault(ctx context.Context, timeline *entity.Timeline) error {
	timelineM := model.TimelineFromDomain(timeline)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(timelineM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed timeline")
	}

	return nil
}
