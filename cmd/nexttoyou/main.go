package main

import (
	"context"
	"log/slog"
	"os"

	"nexttoyou/config"
	"nexttoyou/internal/delivery"
	"nexttoyou/internal/delivery/api"
	"nexttoyou/internal/delivery/api/middleware"
	"nexttoyou/internal/delivery/api/router/handler"
	"nexttoyou/internal/infra/auth"
	logs "nexttoyou/internal/infra/log"
	"nexttoyou/internal/infra/persistence/postgres"
	"nexttoyou/internal/infra/pubsub"
	"nexttoyou/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			postgres.NewCatalogRepository,
			postgres.NewTaskRepository,
			postgres.NewProfileRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProximityService,
			impl.NewTrackingService,
			impl.NewProfileService,
			impl.NewDeviceService,
			// History only; the API never pushes, so no NotificationService is wired.
			fx.Annotate(
				impl.NewNotificationService,
				fx.ParamTags(``, ``, ``, `optional:"true"`, ``),
			),
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProximityHandler,
			handler.NewTrackingHandler,
			handler.NewSettingsHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
