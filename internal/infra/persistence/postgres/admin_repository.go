package postgres

import (
	"context"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the domain's AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByID retrieves a single admin by their unique ID.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	return adminM.ToDomain(), nil
}

// FindByEmail retrieves a single admin by their login email.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return adminM.ToDomain(), nil
}

// Create persists a new admin account.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := model.AdminFromDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAdminAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required admin information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.CreatedAt = adminM.CreatedAt

	return nil
}

// Update modifies an existing admin account.
func (repo *adminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	adminM := model.AdminFromDomain(admin)

	result := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("id = ?", adminM.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(adminM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update admin")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}
