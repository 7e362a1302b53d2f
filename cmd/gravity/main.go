package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gravity/config"
	"gravity/internal/delivery"
	"gravity/internal/delivery/http"
	"gravity/internal/delivery/http/middleware"
	"gravity/internal/delivery/http/router/handler"
	"gravity/internal/domain/service"
	"gravity/internal/infra/auth"
	"gravity/internal/infra/blob"
	logs "gravity/internal/infra/log"
	"gravity/internal/infra/notification"
	"gravity/internal/infra/persistence/postgres"
	"gravity/internal/infra/photo"
	"gravity/internal/infra/provider/strava"
	"gravity/internal/infra/pubsub"
	"gravity/internal/infra/qrcode"
	"gravity/internal/infra/token"
	"gravity/internal/infra/vision"
	"gravity/internal/usecase/impl"

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
		postgres.New,
		blob.NewEvidenceStore,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewIntegrationRepository,
			postgres.NewDailyLogRepository,
			postgres.NewChallengeRepository,
			postgres.NewSocialRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			strava.NewClient,
			token.NewManager,
			photo.NewTimestamper,
			vision.NewFaceMatcher,
			vision.NewTextRecognizer,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
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
			impl.NewLogNotifier,
			impl.NewWebhookService,
			impl.NewIntegrationService,
			impl.NewEvidenceService,
			impl.NewChallengeService,
			impl.NewLogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewIntegrationHandler,
			handler.NewEvidenceHandler,
			handler.NewChallengeHandler,
			handler.NewLogHandler,
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
