package main

import (
	"context"
	"log/slog"
	"os"

	"pharmaduty/config"
	"pharmaduty/internal/delivery"
	"pharmaduty/internal/delivery/api"
	"pharmaduty/internal/delivery/api/middleware"
	"pharmaduty/internal/delivery/api/router/handler"
	"pharmaduty/internal/domain/service"
	"pharmaduty/internal/infra/anonymizer"
	"pharmaduty/internal/infra/auth"
	"pharmaduty/internal/infra/clock"
	logs "pharmaduty/internal/infra/log"
	"pharmaduty/internal/infra/metrics"
	"pharmaduty/internal/infra/persistence"
	"pharmaduty/internal/infra/pubsub"
	"pharmaduty/internal/infra/qrcode"
	"pharmaduty/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.NewRegistry,
			metrics.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			anonymizer.NewAnonymizer,
			clock.NewSystemClock,
			qrcode.NewQRCodeService,
			fx.Annotate(
				func(m *metrics.Metrics) *metrics.Metrics { return m },
				fx.As(new(service.Metrics)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDiscoveryService,
			impl.NewPharmacyService,
			impl.NewDutyService,
			impl.NewRatingService,
			impl.NewFeedbackService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPharmacyHandler,
			handler.NewDutyHandler,
			handler.NewRatingHandler,
			handler.NewFeedbackHandler,
			handler.NewAdminHandler,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
