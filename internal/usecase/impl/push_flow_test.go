package impl

import (
	"context"
	"testing"

	"huddle/internal/domain/constants"
	"huddle/internal/domain/entity"
	"huddle/internal/domain/repository"
	"huddle/internal/domain/service"
	mockRepo "huddle/internal/mocks/repository"
	mockSvc "huddle/internal/mocks/service"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushFlowFixtures wires a real session service to a real inline
// notification service, so a session mutation drives friend resolution
// and device fan-out end to end. Only repositories and transports are
// mocked.
type pushFlowFixtures struct {
	service        usecase.SessionUsecase
	txManager      *mockRepo.MockTransactionManager
	deviceRepo     *mockRepo.MockDeviceRepository
	friendshipRepo *mockRepo.MockFriendshipRepository
	apnsRetrier    *mockSvc.MockPushRetrier
	credentials    *mockSvc.MockPushCredentialSource
}

func createTestPushFlow(t *testing.T) pushFlowFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	credentials := mockSvc.NewMockPushCredentialSource(t)
	apnsRetrier := mockSvc.NewMockPushRetrier(t)
	fcmRetrier := mockSvc.NewMockPushRetrier(t)

	notifier := NewNotificationService(NotificationServiceParams{
		Config:         newDispatchConfig(constants.DispatchModeInline),
		DeviceRepo:     deviceRepo,
		FriendshipRepo: friendshipRepo,
		Publisher:      publisher,
		Credentials:    credentials,
		APNsRetrier:    apnsRetrier,
		FCMRetrier:     fcmRetrier,
		Logger:         newDiscardLogger(),
	})

	sessionService := NewSessionService(SessionServiceParams{
		TxManager:      txManager,
		SessionRepo:    sessionRepo,
		FriendshipRepo: friendshipRepo,
		UserRepo:       userRepo,
		Notifier:       notifier,
		Logger:         newDiscardLogger(),
	})

	return pushFlowFixtures{
		service:        sessionService,
		txManager:      txManager,
		deviceRepo:     deviceRepo,
		friendshipRepo: friendshipRepo,
		apnsRetrier:    apnsRetrier,
		credentials:    credentials,
	}
}

func expectStartSessionTx(t *testing.T, fx pushFlowFixtures, ctx context.Context, owner *entity.User) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
			mockUserRepo.EXPECT().AcquireSessionMutex(ctx, owner.ID).Return(nil)

			mockSessionRepo.EXPECT().
				FindActiveSessionByOwner(ctx, owner.ID).
				Return(nil, repository.ErrSessionNotFound)

			mockSessionRepo.EXPECT().
				CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(ctx context.Context, session *entity.Session) {
					session.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})
}

// Starting a session resolves the owner's friends, fans out to their
// devices, and reports the delivery counts back to the caller. A friend
// with no registered device simply contributes nothing to the counts.
func TestStartSession_FansOutToFriendDevices(t *testing.T) {
	fx := createTestPushFlow(t)

	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), DisplayName: "Alice"}
	friendWithPhone := uuid.New()
	friendWithout := uuid.New()
	token := "apns-token-1"

	expectStartSessionTx(t, fx, ctx, owner)

	fx.friendshipRepo.EXPECT().
		FindAcceptedFriendIDs(ctx, owner.ID).
		Return([]uuid.UUID{friendWithPhone, friendWithout}, nil)

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{friendWithPhone, friendWithout}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: friendWithPhone, PushToken: token, Platform: entity.PlatformIOS},
		}, nil)

	fx.credentials.EXPECT().Refresh(ctx).Return(nil)

	fx.apnsRetrier.EXPECT().
		Send(ctx, token, mock.AnythingOfType("*service.PushMessage")).
		Run(func(ctx context.Context, deviceToken string, msg *service.PushMessage) {
			assert.Contains(t, msg.Alert.Body, "Alice")
		}).
		Return(deliveredOutcome(), nil)

	session, summary, err := fx.service.StartSession(ctx, owner.ID, &usecase.StartSessionInput{Title: "打麻將"})

	require.NoError(t, err)
	assert.Equal(t, owner.ID, session.OwnerID)
	assert.Equal(t, usecase.DispatchStatusSent, summary.Status)
	assert.Equal(t, 1, summary.Delivered)
	assert.Equal(t, 0, summary.Failed)
	fx.deviceRepo.AssertNotCalled(t, "DeleteDevicesByTokens", mock.Anything, mock.Anything)
}

// A token the gateway rejects as permanently bad counts as a failure in
// the caller's summary and gets purged, while the session itself still
// starts.
func TestStartSession_RejectedTokenCountedAndPurged(t *testing.T) {
	fx := createTestPushFlow(t)

	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), DisplayName: "Alice"}
	friendID := uuid.New()
	badToken := "unregistered-token"

	expectStartSessionTx(t, fx, ctx, owner)

	fx.friendshipRepo.EXPECT().
		FindAcceptedFriendIDs(ctx, owner.ID).
		Return([]uuid.UUID{friendID}, nil)

	fx.deviceRepo.EXPECT().
		FindDevicesByUsers(ctx, []uuid.UUID{friendID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: friendID, PushToken: badToken, Platform: entity.PlatformIOS},
		}, nil)

	fx.credentials.EXPECT().Refresh(ctx).Return(nil)

	fx.apnsRetrier.EXPECT().
		Send(ctx, badToken, mock.AnythingOfType("*service.PushMessage")).
		Return(&service.DeliveryOutcome{
			Class:   service.FailureRejected,
			Reason:  "BadDeviceToken",
			Invalid: true,
		}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevicesByTokens(ctx, []string{badToken}).
		Return(nil)

	session, summary, err := fx.service.StartSession(ctx, owner.ID, &usecase.StartSessionInput{Title: "打麻將"})

	require.NoError(t, err)
	assert.NotNil(t, session)
	assert.Equal(t, usecase.DispatchStatusSent, summary.Status)
	assert.Equal(t, 0, summary.Delivered)
	assert.Equal(t, 1, summary.Failed)
}
