package impl

import (
	"context"
	"testing"
	"time"

	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/domain/service"
	mockRepo "huddle/internal/mocks/repository"
	mockUsecase "huddle/internal/mocks/usecase"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service        usecase.SessionUsecase
	txManager      *mockRepo.MockTransactionManager
	sessionRepo    *mockRepo.MockSessionRepository
	friendshipRepo *mockRepo.MockFriendshipRepository
	userRepo       *mockRepo.MockUserRepository
	notifier       *mockUsecase.MockNotificationUsecase
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notifier := mockUsecase.NewMockNotificationUsecase(t)

	service := NewSessionService(SessionServiceParams{
		TxManager:      txManager,
		SessionRepo:    sessionRepo,
		FriendshipRepo: friendshipRepo,
		UserRepo:       userRepo,
		Notifier:       notifier,
		Logger:         newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:        service,
		txManager:      txManager,
		sessionRepo:    sessionRepo,
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		notifier:       notifier,
	}
}

func TestSessionService_StartSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owner := &entity.User{ID: ownerID, DisplayName: "Alice"}
	input := &usecase.StartSessionInput{Title: "打麻將", Message: "缺一腳"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, ownerID).Return(owner, nil)
			mockUserRepo.EXPECT().AcquireSessionMutex(ctx, ownerID).Return(nil)

			mockSessionRepo.EXPECT().
				FindActiveSessionByOwner(ctx, ownerID).
				Return(nil, repository.ErrSessionNotFound)

			mockSessionRepo.EXPECT().
				CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(ctx context.Context, session *entity.Session) {
					session.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.notifier.EXPECT().
		Notify(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			assert.Equal(t, service.EventNewSession, event.Type)
			assert.Equal(t, ownerID.String(), event.ActorID)
			assert.Equal(t, "Alice", event.ActorName)
			assert.Equal(t, "打麻將", event.SessionTitle)
			assert.Equal(t, "缺一腳", event.Message)
			assert.Empty(t, event.AudienceIDs)
		}).
		Return(&usecase.DispatchSummary{Status: usecase.DispatchStatusSent, Delivered: 2}, nil)

	session, summary, err := fx.service.StartSession(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, ownerID, session.OwnerID)
	assert.Equal(t, "打麻將", session.Title)
	assert.False(t, session.StartedAt.IsZero())
	assert.Nil(t, session.EndedAt)
	assert.Equal(t, usecase.DispatchStatusSent, summary.Status)
	assert.Equal(t, 2, summary.Delivered)
}

func TestSessionService_StartSession_MissingTitle(t *testing.T) {
	fx := createTestSessionService(t)

	session, summary, err := fx.service.StartSession(context.Background(), uuid.New(), &usecase.StartSessionInput{})

	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSessionService_StartSession_AlreadyActive(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, ownerID).
				Return(&entity.User{ID: ownerID}, nil)
			mockUserRepo.EXPECT().AcquireSessionMutex(ctx, ownerID).Return(nil)

			mockSessionRepo.EXPECT().
				FindActiveSessionByOwner(ctx, ownerID).
				Return(&entity.Session{ID: uuid.New(), OwnerID: ownerID}, nil)

			return fn(mockFactory)
		})

	session, summary, err := fx.service.StartSession(ctx, ownerID, &usecase.StartSessionInput{Title: "吃宵夜"})

	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionAlreadyActive))
}

// Concurrent starts serialize on the owner lock; if the lock cannot be
// taken the session is never created.
func TestSessionService_StartSession_LockFailureAborts(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, ownerID).
				Return(&entity.User{ID: ownerID}, nil)
			mockUserRepo.EXPECT().
				AcquireSessionMutex(ctx, ownerID).
				Return(errors.New("lock timeout"))

			err := fn(mockFactory)
			mockSessionRepo.AssertNotCalled(t, "FindActiveSessionByOwner", mock.Anything, mock.Anything)
			mockSessionRepo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)

			return err
		})

	session, summary, err := fx.service.StartSession(ctx, ownerID, &usecase.StartSessionInput{Title: "吃宵夜"})

	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Nil(t, summary)
}

func TestSessionService_EndSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sessionID := uuid.New()

	active := &entity.Session{
		ID:        sessionID,
		OwnerID:   ownerID,
		Title:     "打麻將",
		StartedAt: time.Now().Add(-time.Hour),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockSessionRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(active, nil)
			mockUserRepo.EXPECT().
				FindByID(ctx, ownerID).
				Return(&entity.User{ID: ownerID, DisplayName: "Alice"}, nil)

			mockSessionRepo.EXPECT().
				UpdateSession(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(ctx context.Context, session *entity.Session) {
					assert.NotNil(t, session.EndedAt)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.notifier.EXPECT().
		Notify(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			assert.Equal(t, service.EventSessionEnded, event.Type)
			assert.Equal(t, sessionID.String(), event.SessionID)
		}).
		Return(&usecase.DispatchSummary{Status: usecase.DispatchStatusSent, Delivered: 2}, nil)

	session, summary, err := fx.service.EndSession(ctx, ownerID, sessionID)

	require.NoError(t, err)
	assert.NotNil(t, session.EndedAt)
	assert.Equal(t, usecase.DispatchStatusSent, summary.Status)
}

func TestSessionService_EndSession_NotOwner(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

			mockSessionRepo.EXPECT().
				FindSessionByID(ctx, sessionID).
				Return(&entity.Session{
					ID:        sessionID,
					OwnerID:   uuid.New(),
					StartedAt: time.Now(),
				}, nil)

			return fn(mockFactory)
		})

	session, summary, err := fx.service.EndSession(ctx, uuid.New(), sessionID)

	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotOwner))
}

func TestSessionService_EndSession_AlreadyEnded(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sessionID := uuid.New()
	endedAt := time.Now().Add(-time.Minute)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

			mockSessionRepo.EXPECT().
				FindSessionByID(ctx, sessionID).
				Return(&entity.Session{
					ID:        sessionID,
					OwnerID:   ownerID,
					StartedAt: time.Now().Add(-time.Hour),
					EndedAt:   &endedAt,
				}, nil)

			return fn(mockFactory)
		})

	session, summary, err := fx.service.EndSession(ctx, ownerID, sessionID)

	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionEnded))
}

func TestSessionService_RespondToSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	responderID := uuid.New()
	sessionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().FriendshipRepo().Return(mockFriendshipRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockSessionRepo.EXPECT().
				FindSessionByID(ctx, sessionID).
				Return(&entity.Session{
					ID:        sessionID,
					OwnerID:   ownerID,
					Title:     "打麻將",
					StartedAt: time.Now(),
				}, nil)

			mockFriendshipRepo.EXPECT().
				FindFriendshipBetween(ctx, ownerID, responderID).
				Return(&entity.Friendship{
					ID:          uuid.New(),
					RequesterID: ownerID,
					AddresseeID: responderID,
					Status:      entity.FriendshipStatusAccepted,
				}, nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, responderID).
				Return(&entity.User{ID: responderID, DisplayName: "Bob"}, nil)

			mockSessionRepo.EXPECT().
				CreateSessionResponse(ctx, mock.AnythingOfType("*entity.SessionResponse")).
				Run(func(ctx context.Context, response *entity.SessionResponse) {
					response.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.notifier.EXPECT().
		Notify(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			assert.Equal(t, service.EventSessionResponse, event.Type)
			assert.Equal(t, entity.SessionResponseJoin, event.ResponseKind)
			assert.Equal(t, []string{ownerID.String()}, event.AudienceIDs)
		}).
		Return(&usecase.DispatchSummary{Status: usecase.DispatchStatusSent, Delivered: 1}, nil)

	response, summary, err := fx.service.RespondToSession(ctx, responderID, sessionID, entity.SessionResponseJoin)

	require.NoError(t, err)
	assert.Equal(t, entity.SessionResponseJoin, response.Kind)
	assert.Equal(t, responderID, response.ResponderID)
	assert.Equal(t, usecase.DispatchStatusSent, summary.Status)
}

func TestSessionService_RespondToSession_InvalidKind(t *testing.T) {
	fx := createTestSessionService(t)

	response, summary, err := fx.service.RespondToSession(context.Background(), uuid.New(), uuid.New(), "maybe")

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSessionService_RespondToSession_OwnSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sessionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().FriendshipRepo().Return(mockRepo.NewMockFriendshipRepository(t))
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

			mockSessionRepo.EXPECT().
				FindSessionByID(ctx, sessionID).
				Return(&entity.Session{
					ID:        sessionID,
					OwnerID:   ownerID,
					StartedAt: time.Now(),
				}, nil)

			return fn(mockFactory)
		})

	response, summary, err := fx.service.RespondToSession(ctx, ownerID, sessionID, entity.SessionResponseJoin)

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSessionService_RespondToSession_NotFriends(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	responderID := uuid.New()
	sessionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().FriendshipRepo().Return(mockFriendshipRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

			mockSessionRepo.EXPECT().
				FindSessionByID(ctx, sessionID).
				Return(&entity.Session{
					ID:        sessionID,
					OwnerID:   ownerID,
					StartedAt: time.Now(),
				}, nil)

			mockFriendshipRepo.EXPECT().
				FindFriendshipBetween(ctx, ownerID, responderID).
				Return(nil, repository.ErrFriendshipNotFound)

			return fn(mockFactory)
		})

	response, summary, err := fx.service.RespondToSession(ctx, responderID, sessionID, entity.SessionResponseDecline)

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFriends))
}

func TestSessionService_RespondToSession_Duplicate(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	responderID := uuid.New()
	sessionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().FriendshipRepo().Return(mockFriendshipRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockSessionRepo.EXPECT().
				FindSessionByID(ctx, sessionID).
				Return(&entity.Session{
					ID:        sessionID,
					OwnerID:   ownerID,
					StartedAt: time.Now(),
				}, nil)

			mockFriendshipRepo.EXPECT().
				FindFriendshipBetween(ctx, ownerID, responderID).
				Return(&entity.Friendship{
					RequesterID: responderID,
					AddresseeID: ownerID,
					Status:      entity.FriendshipStatusAccepted,
				}, nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, responderID).
				Return(&entity.User{ID: responderID}, nil)

			mockSessionRepo.EXPECT().
				CreateSessionResponse(ctx, mock.AnythingOfType("*entity.SessionResponse")).
				Return(repository.ErrDuplicateSessionResponse)

			return fn(mockFactory)
		})

	response, summary, err := fx.service.RespondToSession(ctx, responderID, sessionID, entity.SessionResponseLater)

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionResponseExists))
}

func TestSessionService_GetFriendFeed_NoFriends(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindAcceptedFriendIDs(ctx, userID).
		Return([]uuid.UUID{}, nil)

	feed, err := fx.service.GetFriendFeed(ctx, userID, true)

	require.NoError(t, err)
	assert.Empty(t, feed)
	fx.sessionRepo.AssertNotCalled(t, "FindSessionsByOwners", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_GetFriendFeed_JoinsOwners(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()
	sessionID := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindAcceptedFriendIDs(ctx, userID).
		Return([]uuid.UUID{friendID}, nil)

	fx.sessionRepo.EXPECT().
		FindSessionsByOwners(ctx, []uuid.UUID{friendID}, true).
		Return([]*entity.Session{
			{ID: sessionID, OwnerID: friendID, Title: "打麻將", StartedAt: time.Now()},
		}, nil)

	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{friendID}).
		Return([]*entity.User{{ID: friendID, DisplayName: "Alice"}}, nil)

	feed, err := fx.service.GetFriendFeed(ctx, userID, true)

	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, sessionID, feed[0].Session.ID)
	assert.Equal(t, "Alice", feed[0].Owner.DisplayName)
}

func TestSessionService_GetSessionResponses_NotOwner(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindSessionByID(ctx, sessionID).
		Return(&entity.Session{
			ID:        sessionID,
			OwnerID:   uuid.New(),
			StartedAt: time.Now(),
		}, nil)

	responses, err := fx.service.GetSessionResponses(ctx, uuid.New(), sessionID)

	assert.Error(t, err)
	assert.Nil(t, responses)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotOwner))
}

func TestSessionService_GetSessionResponses_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sessionID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindSessionByID(ctx, sessionID).
		Return(&entity.Session{
			ID:        sessionID,
			OwnerID:   ownerID,
			StartedAt: time.Now(),
		}, nil)

	fx.sessionRepo.EXPECT().
		FindSessionResponses(ctx, sessionID).
		Return([]*entity.SessionResponse{
			{ID: uuid.New(), SessionID: sessionID, Kind: entity.SessionResponseJoin},
		}, nil)

	responses, err := fx.service.GetSessionResponses(ctx, ownerID, sessionID)

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, entity.SessionResponseJoin, responses[0].Kind)
}
