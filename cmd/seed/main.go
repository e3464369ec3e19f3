// Command seed migrates the schema and persists the default competition
// timeline if none exists. It is idempotent and exits when done.
package main

import (
	"context"
	"log/slog"

	"inkwell/config"
	logs "inkwell/internal/infra/log"
	"inkwell/internal/infra/persistence/postgres"
	"inkwell/internal/usecase"
	"inkwell/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTimelineRepository,
			impl.NewTimelineService,
		),
		fx.Invoke(run),
	).Run()
}

func run(
	ctx context.Context,
	db *gorm.DB,
	timelineUC usecase.TimelineUsecase,
	logger *slog.Logger,
	shutdowner fx.Shutdowner,
) error {
	if err := postgres.Migrate(db); err != nil {
		return err
	}

	if err := timelineUC.Initialize(ctx); err != nil {
		return err
	}

	logger.Info("Schema migrated and timeline seeded")

	return shutdowner.Shutdown()
}
