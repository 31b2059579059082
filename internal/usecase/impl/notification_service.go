package impl

import (
	"context"
	"log/slog"
	"sync"

	"huddle/config"
	deliverycontext "huddle/internal/delivery/context"
	"huddle/internal/domain/constants"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/domain/service"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface. It is
// the fan-out core: one event in, one concurrent send per audience device.
type notificationService struct {
	deviceRepo     repository.DeviceRepository
	friendshipRepo repository.FriendshipRepository
	publisher      service.EventPublisher
	credentials    service.PushCredentialSource
	apnsRetrier    service.PushRetrier
	fcmRetrier     service.PushRetrier
	mode           string
	logger         *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Config         *config.Config
	DeviceRepo     repository.DeviceRepository
	FriendshipRepo repository.FriendshipRepository
	Publisher      service.EventPublisher
	Credentials    service.PushCredentialSource
	APNsRetrier    service.PushRetrier `name:"apnsPush"`
	FCMRetrier     service.PushRetrier `name:"fcmPush"`
	Logger         *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	mode := constants.DispatchModeInline
	if params.Config != nil && params.Config.Dispatch != nil && params.Config.Dispatch.Mode != "" {
		mode = params.Config.Dispatch.Mode
	}

	return &notificationService{
		deviceRepo:     params.DeviceRepo,
		friendshipRepo: params.FriendshipRepo,
		publisher:      params.Publisher,
		credentials:    params.Credentials,
		apnsRetrier:    params.APNsRetrier,
		fcmRetrier:     params.FCMRetrier,
		mode:           mode,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Notify resolves the event's audience and hands it off for delivery.
// Events whose audience resolves to nobody are dropped here, before any
// transport or credential work happens. The returned summary is what
// the triggering operation reports back to its caller.
func (s *notificationService) Notify(ctx context.Context, event *service.NotificationEvent) (*usecase.DispatchSummary, error) {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	if err := s.resolveAudience(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to resolve notification audience")
	}

	if len(event.AudienceIDs) == 0 {
		s.log(ctx).Debug("Notification event has no audience, dropping",
			slog.String("eventID", event.EventID),
			slog.String("type", event.Type))

		return &usecase.DispatchSummary{Status: usecase.DispatchStatusDropped}, nil
	}

	if s.mode == constants.DispatchModeQueue {
		if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
			return nil, errors.Wrap(err, "failed to publish notification event")
		}

		return &usecase.DispatchSummary{Status: usecase.DispatchStatusQueued}, nil
	}

	report, err := s.Dispatch(ctx, event)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNotificationDispatchFailed, err.Error())
	}

	// Best effort: a failed purge only logs, the next dispatch collects
	// the same tokens again.
	if err := s.PurgeInvalidEndpoints(ctx, report.InvalidTokens); err != nil {
		s.log(ctx).Warn("Failed to purge invalid device tokens",
			slog.Int("count", len(report.InvalidTokens)),
			slog.Any("error", err))
	}

	s.log(ctx).Info("Notification dispatched inline",
		slog.String("eventID", event.EventID),
		slog.String("type", event.Type),
		slog.Int("delivered", report.Delivered),
		slog.Int("failed", report.Failed))

	return &usecase.DispatchSummary{
		Status:    usecase.DispatchStatusSent,
		Delivered: report.Delivered,
		Failed:    report.Failed,
	}, nil
}

// resolveAudience fills in AudienceIDs for event types whose audience is
// the actor's friend list. Other event types (responses, friend requests)
// target specific users and arrive with their audience already set.
func (s *notificationService) resolveAudience(ctx context.Context, event *service.NotificationEvent) error {
	if len(event.AudienceIDs) > 0 {
		return nil
	}

	switch event.Type {
	case service.EventNewSession, service.EventSessionEnded:
		actorID, err := uuid.Parse(event.ActorID)
		if err != nil {
			return errors.Wrap(err, "failed to parse actor ID")
		}

		friendIDs, err := s.friendshipRepo.FindAcceptedFriendIDs(ctx, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to find accepted friend IDs")
		}

		audience := make([]string, 0, len(friendIDs))
		for _, id := range friendIDs {
			audience = append(audience, id.String())
		}
		event.AudienceIDs = audience
	}

	return nil
}

// Dispatch fans the event out to every device of its pre-resolved
// audience. Sends run concurrently, one goroutine per device, and the
// outcomes are aggregated into a single report. Dispatch performs
// network calls only and never writes domain state; tokens a gateway
// reported permanently invalid come back in the report for the caller
// to purge.
func (s *notificationService) Dispatch(ctx context.Context, event *service.NotificationEvent) (*service.FanoutReport, error) {
	report := &service.FanoutReport{}

	userIDs := make([]uuid.UUID, 0, len(event.AudienceIDs))
	for _, raw := range event.AudienceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(domainerrors.ErrEventNotDeliverable, "failed to parse audience user ID: %v", err)
		}
		userIDs = append(userIDs, id)
	}

	devices, err := s.deviceRepo.FindDevicesByUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find audience devices")
	}
	if len(devices) == 0 {
		return report, nil
	}

	msg, err := BuildPushMessage(event)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrEventNotDeliverable, "failed to build push message: %v", err)
	}

	// One credential refresh per batch; every concurrent send below
	// shares the refreshed bearer read-only.
	if err := s.credentials.Refresh(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to refresh push credentials")
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, device := range devices {
		wg.Add(1)
		go func(device *entity.UserDevice) {
			defer wg.Done()

			outcome := s.sendToDevice(ctx, device, msg)

			mu.Lock()
			defer mu.Unlock()

			if outcome.Delivered {
				report.Delivered++

				return
			}

			report.Failed++
			if outcome.Invalid {
				report.InvalidTokens = append(report.InvalidTokens, device.PushToken)
			}
		}(device)
	}
	wg.Wait()

	return report, nil
}

// sendToDevice routes one send to the platform's retrier and normalizes
// the result into a terminal outcome.
func (s *notificationService) sendToDevice(ctx context.Context, device *entity.UserDevice, msg *service.PushMessage) *service.DeliveryOutcome {
	var retrier service.PushRetrier
	switch device.Platform {
	case entity.PlatformIOS:
		retrier = s.apnsRetrier
	case entity.PlatformAndroid:
		retrier = s.fcmRetrier
	default:
		s.log(ctx).Warn("Device has unknown platform, skipping",
			slog.Any("deviceID", device.ID),
			slog.String("platform", device.Platform))

		return &service.DeliveryOutcome{
			Class:  service.FailureValidation,
			Reason: "unknown platform",
		}
	}

	outcome, err := retrier.Send(ctx, device.PushToken, msg)
	if err != nil {
		// Only context cancellation surfaces as an error from a retrier.
		s.log(ctx).Warn("Push send aborted",
			slog.Any("deviceID", device.ID),
			slog.Any("error", err))

		return &service.DeliveryOutcome{
			Class:  service.FailureNetwork,
			Reason: err.Error(),
		}
	}

	return outcome
}

// PurgeInvalidEndpoints removes devices the gateways told us to never
// send to again. Callers run this after reading a dispatch report, so
// the purge stays out of the delivery path.
func (s *notificationService) PurgeInvalidEndpoints(ctx context.Context, pushTokens []string) error {
	if len(pushTokens) == 0 {
		return nil
	}

	if err := s.deviceRepo.DeleteDevicesByTokens(ctx, pushTokens); err != nil {
		return errors.Wrap(err, "failed to delete invalid device tokens")
	}

	s.log(ctx).Info("Removed invalid device tokens", slog.Int("count", len(pushTokens)))

	return nil
}
