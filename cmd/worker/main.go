package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"huddle/config"
	"huddle/internal/delivery"
	"huddle/internal/delivery/worker"
	"huddle/internal/delivery/worker/handler"
	"huddle/internal/domain/service"
	logs "huddle/internal/infra/log"
	"huddle/internal/infra/persistence/postgres"
	"huddle/internal/infra/pubsub"
	"huddle/internal/infra/push"
	"huddle/internal/infra/push/apns"
	"huddle/internal/infra/push/fcm"
	"huddle/internal/usecase/impl"
	"huddle/internal/util"

	"github.com/pkg/errors"
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
		injectPush(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
			postgres.NewFriendshipRepository,
		),
	)
}

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

func newAPNsCredentials(cfg *config.Config, logger *slog.Logger) (*apns.Credentials, service.PushCredentialSource, error) {
	if cfg.APNs == nil {
		return nil, nil, errors.New("apns configuration is required")
	}

	creds, err := apns.NewCredentials(cfg.APNs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load APNs credentials: %w", err)
	}

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

func newFCMRetrier(transport *fcm.Transport, cfg *config.Config, logger *slog.Logger) service.PushRetrier {
	dispatch := cfg.Dispatch

	return push.NewRetrier(transport, dispatch.MaxRetries, dispatch.RetryDelay, false, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
