package main

import (
	"context"
	"log/slog"
	"os"

	"calbridge/config"
	"calbridge/internal/delivery"
	"calbridge/internal/delivery/api"
	"calbridge/internal/delivery/api/middleware"
	"calbridge/internal/delivery/api/router/handler"
	deliverymiddleware "calbridge/internal/delivery/middleware"
	"calbridge/internal/domain/service"
	"calbridge/internal/infra/auth"
	"calbridge/internal/infra/auth/google"
	"calbridge/internal/infra/calendar"
	"calbridge/internal/infra/crypto"
	logs "calbridge/internal/infra/log"
	"calbridge/internal/infra/metrics"
	"calbridge/internal/infra/persistence"
	"calbridge/internal/infra/pubsub"
	"calbridge/internal/infra/qrcode"
	"calbridge/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
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
			fx.Annotate(
				metrics.NewRegistry,
				fx.As(new(prometheus.Registerer)),
				fx.As(new(prometheus.Gatherer)),
			),
			fx.Annotate(
				metrics.New,
				fx.As(new(service.BrokerMetrics)),
				fx.As(new(deliverymiddleware.HTTPObserver)),
			),
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			crypto.NewCredentialCipher,
			auth.NewStateService,
			google.NewOAuthService,
			google.NewIDTokenVerifier,
			calendar.NewClientFactory,
			qrcode.NewFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionManager,
			impl.NewAuthFlowService,
			impl.NewCalendarRunner,
			impl.NewCalendarBroker,
			impl.NewTimeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCalendarHandler,
			handler.NewTimeHandler,
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
				os.Exit(1)
			}
		}()
	}
}
