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

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their sign-in uid.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return userM.ToDomain(), nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.UserFromDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity. Select("*") forces zero values
// (cleared vote flags, nil VotedFor) to be written.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := model.UserFromDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userM.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(userM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns all users, newest first.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, userMs[i].ToDomain())
	}

	return users, nil
}

// Count returns the total number of users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// CountSubmitted returns the number of users that have submitted an entry.
func (repo *userRepository) CountSubmitted(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("is_submitted = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count submitted users")
	}

	return count, nil
}

// ClearVoteFlags resets IsVoted and VotedFor on every user.
func (repo *userRepository) ClearVoteFlags(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("is_voted = ? OR voted_for IS NOT NULL", true).
		Updates(map[string]any{"is_voted": false, "voted_for": nil}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear vote flags")
	}

	return nil
}
