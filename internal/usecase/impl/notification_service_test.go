package impl

import (
	"context"
	"testing"

	"huddle/internal/domain/constants"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/service"
	mockRepo "huddle/internal/mocks/repository"
	mockSvc "huddle/internal/mocks/service"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service        usecase.NotificationUsecase
	deviceRepo     *mockRepo.MockDeviceRepository
	friendshipRepo *mockRepo.MockFriendshipRepository
	publisher      *mockSvc.MockEventPublisher
	credentials    *mockSvc.MockPushCredentialSource
	apnsRetrier    *mockSvc.MockPushRetrier
	fcmRetrier     *mockSvc.MockPushRetrier
}

func createTestNotificationService(t *testing.T, mode string) notificationServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	credentials := mockSvc.NewMockPushCredentialSource(t)
	apnsRetrier := mockSvc.NewMockPushRetrier(t)
	fcmRetrier := mockSvc.NewMockPushRetrier(t)

	service := NewNotificationService(NotificationServiceParams{
		Config:         newDispatchConfig(mode),
		DeviceRepo:     deviceRepo,
		FriendshipRepo: friendshipRepo,
		Publisher:      publisher,
		Credentials:    credentials,
		APNsRetrier:    apnsRetrier,
		FCMRetrier:     fcmRetrier,
		Logger:         newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:        service,
		deviceRepo:     deviceRepo,
		friendshipRepo: friendshipRepo,
		publisher:      publisher,
		credentials:    credentials,
		apnsRetrier:    apnsRetrier,
		fcmRetrier:     fcmRetrier,
	}
}

func deliveredOutcome() *service.DeliveryOutcome {
	return &service.DeliveryOutcome{Delivered: true, Attempts: 1, Path: service.PathDefault}
}

// An event whose audience resolves to nobody is dropped before any
// transport or credential work happens.
func TestNotificationService_Notify_EmptyAudienceDropped(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	event := &service.NotificationEvent{
		Type:      service.EventFriendRequest,
		ActorID:   uuid.New().String(),
		ActorName: "Alice",
	}

	summary, err := fx.service.Notify(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, usecase.DispatchStatusDropped, summary.Status)
	fx.deviceRepo.AssertNotCalled(t, "FindDevicesByUsers", mock.Anything, mock.Anything)
	fx.credentials.AssertNotCalled(t, "Refresh", mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishNotificationEvent", mock.Anything, mock.Anything)
}

// Session events resolve their audience from the actor's friend list.
func TestNotificationService_Notify_QueueModePublishes(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeQueue)

	ctx := context.Background()
	actorID := uuid.New()
	friendA := uuid.New()
	friendB := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindAcceptedFriendIDs(ctx, actorID).
		Return([]uuid.UUID{friendA, friendB}, nil)

	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, []string{friendA.String(), friendB.String()}, event.AudienceIDs)
		}).
		Return(nil)

	summary, err := fx.service.Notify(ctx, &service.NotificationEvent{
		Type:    service.EventNewSession,
		ActorID: actorID.String(),
	})

	assert.NoError(t, err)
	assert.Equal(t, usecase.DispatchStatusQueued, summary.Status)
	fx.deviceRepo.AssertNotCalled(t, "FindDevicesByUsers", mock.Anything, mock.Anything)
}

func TestNotificationService_Notify_InlineDispatches(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	ctx := context.Background()
	recipientID := uuid.New()
	token := "apns-token-1"

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, PushToken: token, Platform: entity.PlatformIOS},
		}, nil)

	fx.credentials.EXPECT().Refresh(ctx).Return(nil)

	fx.apnsRetrier.EXPECT().
		Send(ctx, token, mock.AnythingOfType("*service.PushMessage")).
		Return(deliveredOutcome(), nil)

	summary, err := fx.service.Notify(ctx, &service.NotificationEvent{
		Type:        service.EventFriendRequest,
		ActorID:     uuid.New().String(),
		ActorName:   "Alice",
		AudienceIDs: []string{recipientID.String()},
	})

	assert.NoError(t, err)
	assert.Equal(t, usecase.DispatchStatusSent, summary.Status)
	assert.Equal(t, 1, summary.Delivered)
	assert.Equal(t, 0, summary.Failed)
}

func TestNotificationService_Notify_InlineDispatchFailure(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return(nil, errors.New("connection refused"))

	summary, err := fx.service.Notify(ctx, &service.NotificationEvent{
		Type:        service.EventFriendRequest,
		ActorID:     uuid.New().String(),
		AudienceIDs: []string{recipientID.String()},
	})

	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationDispatchFailed))
}

func TestNotificationService_Dispatch_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{}, nil)

	report, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Type:        service.EventFriendRequest,
		ActorID:     uuid.New().String(),
		AudienceIDs: []string{recipientID.String()},
	})

	require.NoError(t, err)
	assert.Zero(t, report.Delivered)
	assert.Zero(t, report.Failed)
	fx.credentials.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestNotificationService_Dispatch_BadAudienceID(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	report, err := fx.service.Dispatch(context.Background(), &service.NotificationEvent{
		Type:        service.EventFriendRequest,
		AudienceIDs: []string{"not-a-uuid"},
	})

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domainerrors.ErrEventNotDeliverable))
	fx.deviceRepo.AssertNotCalled(t, "FindDevicesByUsers", mock.Anything, mock.Anything)
}

// Devices route to the transport matching their platform, and the
// credential source is refreshed exactly once for the whole batch.
func TestNotificationService_Dispatch_PlatformRouting(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, PushToken: "ios-token", Platform: entity.PlatformIOS},
			{ID: uuid.New(), UserID: recipientID, PushToken: "android-token", Platform: entity.PlatformAndroid},
		}, nil)

	fx.credentials.EXPECT().Refresh(ctx).Return(nil).Once()

	fx.apnsRetrier.EXPECT().
		Send(ctx, "ios-token", mock.AnythingOfType("*service.PushMessage")).
		Return(deliveredOutcome(), nil)
	fx.fcmRetrier.EXPECT().
		Send(ctx, "android-token", mock.AnythingOfType("*service.PushMessage")).
		Return(deliveredOutcome(), nil)

	report, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Type:        service.EventFriendAccepted,
		ActorID:     uuid.New().String(),
		ActorName:   "Alice",
		AudienceIDs: []string{recipientID.String()},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, report.Delivered)
	assert.Zero(t, report.Failed)
}

func TestNotificationService_Dispatch_UnknownPlatform(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, PushToken: "token", Platform: "windows"},
		}, nil)

	fx.credentials.EXPECT().Refresh(ctx).Return(nil)

	report, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Type:        service.EventFriendRequest,
		ActorID:     uuid.New().String(),
		AudienceIDs: []string{recipientID.String()},
	})

	require.NoError(t, err)
	assert.Zero(t, report.Delivered)
	assert.Equal(t, 1, report.Failed)
	fx.apnsRetrier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	fx.fcmRetrier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

// Tokens a gateway reported permanently invalid are removed before the
// dispatch returns.
// Dispatch reports permanently invalid tokens without touching the
// device store; the purge is the caller's call.
func TestNotificationService_Dispatch_CollectsInvalidTokens(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	ctx := context.Background()
	recipientID := uuid.New()
	badToken := "unregistered-token"

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, PushToken: badToken, Platform: entity.PlatformIOS},
		}, nil)

	fx.credentials.EXPECT().Refresh(ctx).Return(nil)

	fx.apnsRetrier.EXPECT().
		Send(ctx, badToken, mock.AnythingOfType("*service.PushMessage")).
		Return(&service.DeliveryOutcome{
			Class:   service.FailureRejected,
			Reason:  "Unregistered",
			Invalid: true,
		}, nil)

	report, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Type:        service.EventFriendRequest,
		ActorID:     uuid.New().String(),
		AudienceIDs: []string{recipientID.String()},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []string{badToken}, report.InvalidTokens)
	fx.deviceRepo.AssertNotCalled(t, "DeleteDevicesByTokens", mock.Anything, mock.Anything)
}

// The inline path purges invalid tokens after reading the report, and a
// failed purge never fails the notification.
func TestNotificationService_Notify_InlinePurgeBestEffort(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	ctx := context.Background()
	recipientID := uuid.New()
	badToken := "unregistered-token"

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, PushToken: badToken, Platform: entity.PlatformIOS},
		}, nil)

	fx.credentials.EXPECT().Refresh(ctx).Return(nil)

	fx.apnsRetrier.EXPECT().
		Send(ctx, badToken, mock.AnythingOfType("*service.PushMessage")).
		Return(&service.DeliveryOutcome{Class: service.FailureRejected, Invalid: true}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevicesByTokens(ctx, []string{badToken}).
		Return(errors.New("connection refused"))

	summary, err := fx.service.Notify(ctx, &service.NotificationEvent{
		Type:        service.EventFriendRequest,
		ActorID:     uuid.New().String(),
		AudienceIDs: []string{recipientID.String()},
	})

	assert.NoError(t, err)
	assert.Equal(t, usecase.DispatchStatusSent, summary.Status)
	assert.Equal(t, 1, summary.Failed)
}

func TestNotificationService_PurgeInvalidEndpoints(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	ctx := context.Background()
	tokens := []string{"bad-1", "bad-2"}

	fx.deviceRepo.EXPECT().
		DeleteDevicesByTokens(ctx, tokens).
		Return(nil)

	err := fx.service.PurgeInvalidEndpoints(ctx, tokens)

	assert.NoError(t, err)
}

func TestNotificationService_PurgeInvalidEndpoints_Empty(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	err := fx.service.PurgeInvalidEndpoints(context.Background(), nil)

	assert.NoError(t, err)
	fx.deviceRepo.AssertNotCalled(t, "DeleteDevicesByTokens", mock.Anything, mock.Anything)
}

func TestNotificationService_Dispatch_RetrierError(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, PushToken: "token", Platform: entity.PlatformAndroid},
		}, nil)

	fx.credentials.EXPECT().Refresh(ctx).Return(nil)

	fx.fcmRetrier.EXPECT().
		Send(ctx, "token", mock.AnythingOfType("*service.PushMessage")).
		Return(nil, context.Canceled)

	report, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Type:        service.EventFriendRequest,
		ActorID:     uuid.New().String(),
		AudienceIDs: []string{recipientID.String()},
	})

	require.NoError(t, err)
	assert.Zero(t, report.Delivered)
	assert.Equal(t, 1, report.Failed)
}

func TestNotificationService_Dispatch_CredentialRefreshError(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, PushToken: "token", Platform: entity.PlatformIOS},
		}, nil)

	fx.credentials.EXPECT().Refresh(ctx).Return(errors.New("key expired"))

	report, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Type:        service.EventFriendRequest,
		ActorID:     uuid.New().String(),
		AudienceIDs: []string{recipientID.String()},
	})

	assert.Error(t, err)
	assert.Nil(t, report)
	fx.apnsRetrier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_Dispatch_UnknownEventType(t *testing.T) {
	fx := createTestNotificationService(t, constants.DispatchModeInline)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, PushToken: "token", Platform: entity.PlatformIOS},
		}, nil)

	report, err := fx.service.Dispatch(ctx, &service.NotificationEvent{
		Type:        "mystery_event",
		AudienceIDs: []string{recipientID.String()},
	})

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domainerrors.ErrEventNotDeliverable))
	fx.credentials.AssertNotCalled(t, "Refresh", mock.Anything)
}
