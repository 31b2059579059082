package impl

import (
	"context"
	"testing"

	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/domain/service"
	mockRepo "huddle/internal/mocks/repository"
	mockSvc "huddle/internal/mocks/service"
	mockUsecase "huddle/internal/mocks/usecase"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// friendServiceFixtures holds all test dependencies for friend service tests.
type friendServiceFixtures struct {
	service        usecase.FriendUsecase
	txManager      *mockRepo.MockTransactionManager
	friendshipRepo *mockRepo.MockFriendshipRepository
	userRepo       *mockRepo.MockUserRepository
	qrcodeService  *mockSvc.MockQRCodeService
	notifier       *mockUsecase.MockNotificationUsecase
}

func createTestFriendService(t *testing.T) friendServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	notifier := mockUsecase.NewMockNotificationUsecase(t)

	service := NewFriendService(FriendServiceParams{
		TxManager:      txManager,
		FriendshipRepo: friendshipRepo,
		UserRepo:       userRepo,
		QRCodeService:  qrcodeService,
		Notifier:       notifier,
		Logger:         newDiscardLogger(),
	})

	return friendServiceFixtures{
		service:        service,
		txManager:      txManager,
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		qrcodeService:  qrcodeService,
		notifier:       notifier,
	}
}

func TestFriendService_SendFriendRequest_Success(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	addresseeID := uuid.New()
	requester := &entity.User{ID: requesterID, DisplayName: "Alice"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().FriendshipRepo().Return(mockFriendshipRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, addresseeID).
				Return(&entity.User{ID: addresseeID, DisplayName: "Bob"}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, requesterID).Return(requester, nil)

			mockFriendshipRepo.EXPECT().
				FindFriendshipBetween(ctx, requesterID, addresseeID).
				Return(nil, repository.ErrFriendshipNotFound)

			mockFriendshipRepo.EXPECT().
				CreateFriendship(ctx, mock.AnythingOfType("*entity.Friendship")).
				Run(func(ctx context.Context, friendship *entity.Friendship) {
					friendship.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.notifier.EXPECT().
		Notify(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			assert.Equal(t, service.EventFriendRequest, event.Type)
			assert.Equal(t, requesterID.String(), event.ActorID)
			assert.Equal(t, "Alice", event.ActorName)
			assert.Equal(t, []string{addresseeID.String()}, event.AudienceIDs)
		}).
		Return(&usecase.DispatchSummary{Status: usecase.DispatchStatusSent, Delivered: 1}, nil)

	friendship, summary, err := fx.service.SendFriendRequest(ctx, requesterID, addresseeID)

	require.NoError(t, err)
	assert.Equal(t, entity.FriendshipStatusPending, friendship.Status)
	assert.Equal(t, requesterID, friendship.RequesterID)
	assert.Equal(t, addresseeID, friendship.AddresseeID)
	assert.Equal(t, usecase.DispatchStatusSent, summary.Status)
}

func TestFriendService_SendFriendRequest_Self(t *testing.T) {
	fx := createTestFriendService(t)

	userID := uuid.New()

	friendship, summary, err := fx.service.SendFriendRequest(context.Background(), userID, userID)

	assert.Error(t, err)
	assert.Nil(t, friendship)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrFriendshipSelf))
}

func TestFriendService_SendFriendRequest_AlreadyExists(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	addresseeID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().FriendshipRepo().Return(mockFriendshipRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, addresseeID).
				Return(&entity.User{ID: addresseeID}, nil)
			mockUserRepo.EXPECT().
				FindByID(ctx, requesterID).
				Return(&entity.User{ID: requesterID}, nil)

			mockFriendshipRepo.EXPECT().
				FindFriendshipBetween(ctx, requesterID, addresseeID).
				Return(&entity.Friendship{
					ID:          uuid.New(),
					RequesterID: addresseeID,
					AddresseeID: requesterID,
					Status:      entity.FriendshipStatusPending,
				}, nil)

			return fn(mockFactory)
		})

	friendship, summary, err := fx.service.SendFriendRequest(ctx, requesterID, addresseeID)

	assert.Error(t, err)
	assert.Nil(t, friendship)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrFriendshipExists))
}

// A previously declined request is reopened instead of erroring, with the
// direction reset to the new requester.
func TestFriendService_SendFriendRequest_RetryAfterDecline(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	addresseeID := uuid.New()

	declined := &entity.Friendship{
		ID:          uuid.New(),
		RequesterID: addresseeID,
		AddresseeID: requesterID,
		Status:      entity.FriendshipStatusDeclined,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().FriendshipRepo().Return(mockFriendshipRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, addresseeID).
				Return(&entity.User{ID: addresseeID}, nil)
			mockUserRepo.EXPECT().
				FindByID(ctx, requesterID).
				Return(&entity.User{ID: requesterID, DisplayName: "Alice"}, nil)

			mockFriendshipRepo.EXPECT().
				FindFriendshipBetween(ctx, requesterID, addresseeID).
				Return(declined, nil)

			mockFriendshipRepo.EXPECT().
				UpdateFriendship(ctx, mock.AnythingOfType("*entity.Friendship")).
				Run(func(ctx context.Context, friendship *entity.Friendship) {
					assert.Equal(t, entity.FriendshipStatusPending, friendship.Status)
					assert.Equal(t, requesterID, friendship.RequesterID)
					assert.Equal(t, addresseeID, friendship.AddresseeID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.notifier.EXPECT().
		Notify(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(&usecase.DispatchSummary{Status: usecase.DispatchStatusSent, Delivered: 1}, nil)

	friendship, _, err := fx.service.SendFriendRequest(ctx, requesterID, addresseeID)

	require.NoError(t, err)
	assert.Equal(t, entity.FriendshipStatusPending, friendship.Status)
	assert.Equal(t, requesterID, friendship.RequesterID)
}

func TestFriendService_AcceptFriendRequest_Success(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	addresseeID := uuid.New()
	friendshipID := uuid.New()

	pending := &entity.Friendship{
		ID:          friendshipID,
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      entity.FriendshipStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().FriendshipRepo().Return(mockFriendshipRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockFriendshipRepo.EXPECT().
				FindFriendshipByID(ctx, friendshipID).
				Return(pending, nil)
			mockUserRepo.EXPECT().
				FindByID(ctx, addresseeID).
				Return(&entity.User{ID: addresseeID, DisplayName: "Bob"}, nil)

			mockFriendshipRepo.EXPECT().
				UpdateFriendship(ctx, mock.AnythingOfType("*entity.Friendship")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.notifier.EXPECT().
		Notify(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			assert.Equal(t, service.EventFriendAccepted, event.Type)
			assert.Equal(t, []string{requesterID.String()}, event.AudienceIDs)
		}).
		Return(&usecase.DispatchSummary{Status: usecase.DispatchStatusSent, Delivered: 1}, nil)

	friendship, summary, err := fx.service.AcceptFriendRequest(ctx, addresseeID, friendshipID)

	require.NoError(t, err)
	assert.Equal(t, entity.FriendshipStatusAccepted, friendship.Status)
	assert.Equal(t, 1, summary.Delivered)
}

func TestFriendService_AcceptFriendRequest_NotAddressee(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	friendshipID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)

			mockFactory.EXPECT().FriendshipRepo().Return(mockFriendshipRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

			mockFriendshipRepo.EXPECT().
				FindFriendshipByID(ctx, friendshipID).
				Return(&entity.Friendship{
					ID:          friendshipID,
					RequesterID: uuid.New(),
					AddresseeID: uuid.New(),
					Status:      entity.FriendshipStatusPending,
				}, nil)

			return fn(mockFactory)
		})

	friendship, summary, err := fx.service.AcceptFriendRequest(ctx, uuid.New(), friendshipID)

	assert.Error(t, err)
	assert.Nil(t, friendship)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrFriendshipNotAddressee))
}

// Declining is silent: the requester is never notified.
func TestFriendService_DeclineFriendRequest_NoPush(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	addresseeID := uuid.New()
	friendshipID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)

			mockFactory.EXPECT().FriendshipRepo().Return(mockFriendshipRepo)

			mockFriendshipRepo.EXPECT().
				FindFriendshipByID(ctx, friendshipID).
				Return(&entity.Friendship{
					ID:          friendshipID,
					RequesterID: uuid.New(),
					AddresseeID: addresseeID,
					Status:      entity.FriendshipStatusPending,
				}, nil)

			mockFriendshipRepo.EXPECT().
				UpdateFriendship(ctx, mock.AnythingOfType("*entity.Friendship")).
				Run(func(ctx context.Context, friendship *entity.Friendship) {
					assert.Equal(t, entity.FriendshipStatusDeclined, friendship.Status)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeclineFriendRequest(ctx, addresseeID, friendshipID)

	assert.NoError(t, err)
	fx.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestFriendService_Unfriend_Success(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()
	friendshipID := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindFriendshipBetween(ctx, userID, friendID).
		Return(&entity.Friendship{
			ID:          friendshipID,
			RequesterID: friendID,
			AddresseeID: userID,
			Status:      entity.FriendshipStatusAccepted,
		}, nil)
	fx.friendshipRepo.EXPECT().DeleteFriendship(ctx, friendshipID).Return(nil)

	err := fx.service.Unfriend(ctx, userID, friendID)

	assert.NoError(t, err)
}

func TestFriendService_ListFriends(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	friendA := uuid.New()
	friendB := uuid.New()

	friendships := []*entity.Friendship{
		{ID: uuid.New(), RequesterID: userID, AddresseeID: friendA, Status: entity.FriendshipStatusAccepted},
		{ID: uuid.New(), RequesterID: friendB, AddresseeID: userID, Status: entity.FriendshipStatusAccepted},
	}

	fx.friendshipRepo.EXPECT().
		FindFriendshipsByUser(ctx, userID, entity.FriendshipStatusAccepted).
		Return(friendships, nil)

	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{friendA, friendB}).
		Return([]*entity.User{
			{ID: friendA, DisplayName: "Alice"},
			{ID: friendB, DisplayName: "Bob"},
		}, nil)

	friends, err := fx.service.ListFriends(ctx, userID)

	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "Alice", friends[0].User.DisplayName)
	assert.Equal(t, "Bob", friends[1].User.DisplayName)
}

func TestFriendService_ListPendingRequests_OnlyIncoming(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	requesterID := uuid.New()
	outgoingTarget := uuid.New()

	friendships := []*entity.Friendship{
		// Incoming request, should be listed.
		{ID: uuid.New(), RequesterID: requesterID, AddresseeID: userID, Status: entity.FriendshipStatusPending},
		// Outgoing request, waiting on the other side, not listed.
		{ID: uuid.New(), RequesterID: userID, AddresseeID: outgoingTarget, Status: entity.FriendshipStatusPending},
	}

	fx.friendshipRepo.EXPECT().
		FindFriendshipsByUser(ctx, userID, entity.FriendshipStatusPending).
		Return(friendships, nil)

	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{requesterID}).
		Return([]*entity.User{{ID: requesterID, DisplayName: "Alice"}}, nil)

	requests, err := fx.service.ListPendingRequests(ctx, userID)

	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, requesterID, requests[0].Friendship.RequesterID)
	assert.Equal(t, "Alice", requests[0].Requester.DisplayName)
}

func TestFriendService_GenerateInviteQR(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.qrcodeService.EXPECT().GenerateFriendInviteQR(userID).Return(png, nil)

	result, err := fx.service.GenerateInviteQR(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, png, result)
}

func TestFriendService_AddFriendByInvite_InvalidPayload(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()

	fx.qrcodeService.EXPECT().
		ParseFriendInviteQR("not-a-valid-invite").
		Return(uuid.Nil, errors.New("malformed payload"))

	friendship, summary, err := fx.service.AddFriendByInvite(ctx, uuid.New(), "not-a-valid-invite")

	assert.Error(t, err)
	assert.Nil(t, friendship)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
