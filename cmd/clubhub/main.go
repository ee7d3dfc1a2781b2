package main

import (
	"context"
	"log/slog"
	"os"

	"clubhub/config"
	"clubhub/internal/delivery"
	"clubhub/internal/delivery/http"
	"clubhub/internal/delivery/http/middleware"
	"clubhub/internal/delivery/http/router/handler"
	"clubhub/internal/domain/service"
	"clubhub/internal/infra/completion"
	"clubhub/internal/infra/identity"
	logs "clubhub/internal/infra/log"
	"clubhub/internal/infra/persistence/firestore"
	"clubhub/internal/infra/pubsub"
	"clubhub/internal/infra/qrcode"
	"clubhub/internal/usecase/impl"

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserRepository,
			firestore.NewClubRepository,
			firestore.NewEventRepository,
			firestore.NewInvitationRepository,
			firestore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		identity.Module,
		pubsub.Module,
		fx.Provide(
			completion.NewCompletionService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewClubService,
			impl.NewEventService,
			impl.NewInvitationService,
			impl.NewRecommendationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewClubHandler,
			handler.NewEventHandler,
			handler.NewInvitationHandler,
			handler.NewRecommendationHandler,
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
