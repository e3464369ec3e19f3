package main

import (
	"context"
	"log/slog"
	"os"

	"inkwell/config"
	"inkwell/internal/delivery"
	"inkwell/internal/delivery/http"
	httpmw "inkwell/internal/delivery/http/middleware"
	"inkwell/internal/delivery/http/router/handler"
	deliverymw "inkwell/internal/delivery/middleware"
	"inkwell/internal/infra/auth"
	"inkwell/internal/infra/auth/google"
	logs "inkwell/internal/infra/log"
	"inkwell/internal/infra/persistence/postgres"
	"inkwell/internal/usecase"
	"inkwell/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migrateSchema,
			seedTimeline,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewEntryRepository,
			postgres.NewVoteRepository,
			postgres.NewTimelineRepository,
			postgres.NewAdminRepository,
			postgres.NewSessionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionTokenService,
			google.NewVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewEntryService,
			impl.NewVotingService,
			impl.NewTimelineService,
			impl.NewAdminService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmw.NewAuthMiddleware,
			httpmw.NewErrorMiddleware,
			httpmw.NewMaintenanceMiddleware,
			deliverymw.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewEntryHandler,
			handler.NewVoteHandler,
			handler.NewTimelineHandler,
			handler.NewStatsHandler,
			handler.NewAdminAuthHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func migrateSchema(db *gorm.DB) error {
	return postgres.Migrate(db)
}

// seedTimeline persists the default schedule on first boot. Safe to run on
// every deploy.
func seedTimeline(ctx context.Context, timelineUC usecase.TimelineUsecase) error {
	return timelineUC.Initialize(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
