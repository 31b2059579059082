package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"huddle/config"
	"huddle/internal/delivery"
	"huddle/internal/delivery/http"
	"huddle/internal/delivery/http/middleware"
	"huddle/internal/delivery/http/router/handler"
	"huddle/internal/domain/service"
	"huddle/internal/infra/auth"
	"huddle/internal/infra/auth/google"
	logs "huddle/internal/infra/log"
	"huddle/internal/infra/persistence/postgres"
	"huddle/internal/infra/pubsub"
	"huddle/internal/infra/push"
	"huddle/internal/infra/push/apns"
	"huddle/internal/infra/push/fcm"
	"huddle/internal/infra/qrcode"
	"huddle/internal/usecase/impl"
	"huddle/internal/util"

	"github.com/pkg/errors"
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
		injectPush(),
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
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewFriendshipRepository,
			postgres.NewSessionRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// injectPush wires the APNs and FCM transports with their shared retry
// policy. The two retriers are named so the dispatcher can route by
// device platform.
func injectPush() fx.Option {
	return fx.Options(
		fx.Provide(
			// Expose the APNs section for the transport constructor
			func(cfg *config.Config) *config.APNsConfig {
				return cfg.APNs
			},
			newAPNsCredentials,
			apns.NewTransport,
			newFCMTransport,
			fx.Annotate(
				newAPNsRetrier,
				fx.ResultTags(`name:"apnsPush"`),
			),
			fx.Annotate(
				newFCMRetrier,
				fx.ResultTags(`name:"fcmPush"`),
			),
		),
	)
}

// newAPNsCredentials loads the provider token signing key and exposes it
// both as the concrete type the transport needs and as the credential
// source the dispatcher refreshes per batch.
func newAPNsCredentials(cfg *config.Config, logger *slog.Logger) (*apns.Credentials, service.PushCredentialSource, error) {
	if cfg.APNs == nil {
		return nil, nil, errors.New("apns configuration is required")
	}

	creds, err := apns.NewCredentials(cfg.APNs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load APNs credentials: %w", err)
	}

	// Log the key checksum so a wrong key file is visible in the logs
	// before the first rejected push.
	if checksum, err := util.CalculateFileChecksum(cfg.APNs.KeyPath); err == nil {
		logger.Info("Loaded APNs signing key",
			slog.String("keyID", cfg.APNs.KeyID),
			slog.String("checksum", checksum[:8]))
	}

	return creds, creds, nil
}

func newFCMTransport(ctx context.Context, cfg *config.Config) (*fcm.Transport, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	return fcm.NewTransport(ctx, cfg.Firebase.CredentialsPath)
}

func newAPNsRetrier(transport *apns.Transport, cfg *config.Config, logger *slog.Logger) service.PushRetrier {
	dispatch := cfg.Dispatch

	return push.NewRetrier(transport, dispatch.MaxRetries, dispatch.RetryDelay, dispatch.EnableFallback, logger)
}

// newFCMRetrier never toggles delivery paths: FCM has a single endpoint.
func newFCMRetrier(transport *fcm.Transport, cfg *config.Config, logger *slog.Logger) service.PushRetrier {
	dispatch := cfg.Dispatch

	return push.NewRetrier(transport, dispatch.MaxRetries, dispatch.RetryDelay, false, logger)
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
			impl.NewFriendService,
			impl.NewSessionService,
			impl.NewDeviceService,
			impl.NewNotificationService,
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
			handler.NewFriendHandler,
			handler.NewSessionHandler,
			handler.NewDeviceHandler,
			handler.NewTestHandler,
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
