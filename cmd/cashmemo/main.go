package main

import (
	"context"
	"log/slog"
	"os"

	"cashmemo/config"
	"cashmemo/internal/delivery"
	"cashmemo/internal/delivery/api"
	"cashmemo/internal/delivery/api/middleware"
	"cashmemo/internal/delivery/api/router/handler"
	"cashmemo/internal/infra/auth"
	"cashmemo/internal/infra/cache"
	logs "cashmemo/internal/infra/log"
	"cashmemo/internal/infra/media"
	"cashmemo/internal/infra/persistence/postgres"
	"cashmemo/internal/infra/pubsub"
	"cashmemo/internal/infra/qrcode"
	"cashmemo/internal/usecase/impl"

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
			postgres.NewRepositoryFactory,
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewAdRepository,
			postgres.NewReportRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewReferenceCache,
			media.NewMediaStore,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewQuotaService,
			impl.NewAuthService,
			impl.NewShopService,
			impl.NewSubscriptionService,
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewCustomerService,
			impl.NewOrderService,
			impl.NewInvoiceService,
			impl.NewPaymentMethodService,
			impl.NewNotificationService,
			impl.NewDeviceService,
			impl.NewUploadService,
			impl.NewAdService,
			impl.NewReportService,
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
			handler.NewAuthHandler,
			handler.NewShopHandler,
			handler.NewSubscriptionHandler,
			handler.NewCatalogHandler,
			handler.NewCustomerHandler,
			handler.NewOrderHandler,
			handler.NewInvoiceHandler,
			handler.NewPaymentMethodHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewUploadHandler,
			handler.NewReportHandler,
			handler.NewAdHandler,
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
