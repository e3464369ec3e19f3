package postgres

import (
	"inkwell/internal/errors"
	"inkwell/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persistence model.
// It is idempotent and runs before the HTTP server starts accepting traffic.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.UserModel{},
		&model.EntryModel{},
		&model.VoteModel{},
		&model.TimelineModel{},
		&model.AdminModel{},
		&model.SessionModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
