// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "huddle/internal/delivery/context"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/domain/service"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager      repository.TransactionManager
	sessionRepo    repository.SessionRepository
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	notifier       usecase.NotificationUsecase
	logger         *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	SessionRepo    repository.SessionRepository
	FriendshipRepo repository.FriendshipRepository
	UserRepo       repository.UserRepository
	Notifier       usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:      params.TxManager,
		sessionRepo:    params.SessionRepo,
		friendshipRepo: params.FriendshipRepo,
		userRepo:       params.UserRepo,
		notifier:       params.Notifier,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartSession creates an active session and fans a push out to the
// owner's friends. The session commits first; a failed push never rolls
// back a started session.
func (srv *sessionService) StartSession(ctx context.Context, ownerID uuid.UUID, input *usecase.StartSessionInput) (*entity.Session, *usecase.DispatchSummary, error) {
	if input.Title == "" {
		return nil, nil, errors.Wrap(domainerrors.ErrValidationFailed, "session title is required")
	}

	var (
		session *entity.Session
		owner   *entity.User
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()
		userRepo := repoFactory.UserRepo()

		var err error
		owner, err = userRepo.FindByID(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to find session owner")
		}

		// Serialize concurrent starts by the same owner so the
		// active-session check below cannot race with another insert.
		if err := userRepo.AcquireSessionMutex(ctx, ownerID); err != nil {
			return errors.Wrap(err, "failed to lock owner for session start")
		}

		_, err = sessionRepo.FindActiveSessionByOwner(ctx, ownerID)
		if err == nil {
			return errors.Wrap(domainerrors.ErrSessionAlreadyActive, "an active session already exists")
		}
		if !errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(err, "failed to check for active session")
		}

		session = &entity.Session{
			OwnerID:   ownerID,
			Title:     input.Title,
			Message:   input.Message,
			StartedAt: time.Now(),
		}
		if err := sessionRepo.CreateSession(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to start session",
			slog.Any("ownerID", ownerID),
			slog.Any("error", err))

		return nil, nil, errors.Wrap(err, "failed to execute start session transaction")
	}

	summary := srv.notifySessionEvent(ctx, &service.NotificationEvent{
		Type:         service.EventNewSession,
		ActorID:      owner.ID.String(),
		ActorName:    owner.DisplayName,
		SessionID:    session.ID.String(),
		SessionTitle: session.Title,
		Message:      session.Message,
	})

	return session, summary, nil
}

// EndSession marks the owner's session as ended and silently refreshes
// the friends' feeds.
func (srv *sessionService) EndSession(ctx context.Context, ownerID, sessionID uuid.UUID) (*entity.Session, *usecase.DispatchSummary, error) {
	var (
		session *entity.Session
		owner   *entity.User
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()
		userRepo := repoFactory.UserRepo()

		var err error
		session, err = sessionRepo.FindSessionByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		if session.OwnerID != ownerID {
			return errors.Wrap(domainerrors.ErrSessionNotOwner, "only the owner can end a session")
		}
		if !session.Active() {
			return errors.Wrap(domainerrors.ErrSessionEnded, "session already ended")
		}

		owner, err = userRepo.FindByID(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to find session owner")
		}

		now := time.Now()
		session.EndedAt = &now
		if err := sessionRepo.UpdateSession(ctx, session); err != nil {
			return errors.Wrap(err, "failed to update session")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to end session",
			slog.Any("ownerID", ownerID),
			slog.Any("sessionID", sessionID),
			slog.Any("error", err))

		return nil, nil, errors.Wrap(err, "failed to execute end session transaction")
	}

	summary := srv.notifySessionEvent(ctx, &service.NotificationEvent{
		Type:         service.EventSessionEnded,
		ActorID:      owner.ID.String(),
		ActorName:    owner.DisplayName,
		SessionID:    session.ID.String(),
		SessionTitle: session.Title,
	})

	return session, summary, nil
}

// RespondToSession records a friend's answer and notifies the owner.
func (srv *sessionService) RespondToSession(ctx context.Context, responderID, sessionID uuid.UUID, kind string) (*entity.SessionResponse, *usecase.DispatchSummary, error) {
	switch kind {
	case entity.SessionResponseJoin, entity.SessionResponseDecline, entity.SessionResponseLater:
	default:
		return nil, nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid session response kind")
	}

	var (
		response  *entity.SessionResponse
		session   *entity.Session
		responder *entity.User
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()
		friendshipRepo := repoFactory.FriendshipRepo()
		userRepo := repoFactory.UserRepo()

		var err error
		session, err = sessionRepo.FindSessionByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		if !session.Active() {
			return errors.Wrap(domainerrors.ErrSessionEnded, "session already ended")
		}
		if session.OwnerID == responderID {
			return errors.Wrap(domainerrors.ErrValidationFailed, "cannot respond to your own session")
		}

		// Only accepted friends of the owner may answer.
		friendship, err := friendshipRepo.FindFriendshipBetween(ctx, session.OwnerID, responderID)
		if err != nil || friendship.Status != entity.FriendshipStatusAccepted {
			return errors.Wrap(domainerrors.ErrNotFriends, "responder is not a friend of the session owner")
		}

		responder, err = userRepo.FindByID(ctx, responderID)
		if err != nil {
			return errors.Wrap(err, "failed to find responder")
		}

		response = &entity.SessionResponse{
			SessionID:   sessionID,
			ResponderID: responderID,
			Kind:        kind,
		}
		if err := sessionRepo.CreateSessionResponse(ctx, response); err != nil {
			if errors.Is(err, repository.ErrDuplicateSessionResponse) {
				return errors.Wrap(domainerrors.ErrSessionResponseExists, "session already answered")
			}

			return errors.Wrap(err, "failed to create session response")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to respond to session",
			slog.Any("responderID", responderID),
			slog.Any("sessionID", sessionID),
			slog.Any("error", err))

		return nil, nil, errors.Wrap(err, "failed to execute session response transaction")
	}

	summary := srv.notifySessionEvent(ctx, &service.NotificationEvent{
		Type:         service.EventSessionResponse,
		ActorID:      responder.ID.String(),
		ActorName:    responder.DisplayName,
		SessionID:    session.ID.String(),
		SessionTitle: session.Title,
		ResponseKind: kind,
		AudienceIDs:  []string{session.OwnerID.String()},
	})

	return response, summary, nil
}

// GetFriendFeed returns sessions started by the user's friends.
func (srv *sessionService) GetFriendFeed(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*usecase.SessionFeedItem, error) {
	friendIDs, err := srv.friendshipRepo.FindAcceptedFriendIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accepted friend IDs")
	}
	if len(friendIDs) == 0 {
		return []*usecase.SessionFeedItem{}, nil
	}

	sessions, err := srv.sessionRepo.FindSessionsByOwners(ctx, friendIDs, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friend sessions")
	}

	owners, err := srv.userRepo.FindByIDs(ctx, friendIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session owners")
	}

	ownersByID := make(map[uuid.UUID]*entity.User, len(owners))
	for _, owner := range owners {
		ownersByID[owner.ID] = owner
	}

	feed := make([]*usecase.SessionFeedItem, 0, len(sessions))
	for _, session := range sessions {
		feed = append(feed, &usecase.SessionFeedItem{
			Session: session,
			Owner:   ownersByID[session.OwnerID],
		})
	}

	return feed, nil
}

// GetSessionResponses returns the answers recorded for one of the owner's sessions.
func (srv *sessionService) GetSessionResponses(ctx context.Context, ownerID, sessionID uuid.UUID) ([]*entity.SessionResponse, error) {
	session, err := srv.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrSessionNotOwner, "only the owner can list session responses")
	}

	responses, err := srv.sessionRepo.FindSessionResponses(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find session responses")
	}

	return responses, nil
}

// notifySessionEvent pushes a session event and returns the summary the
// handler reports back. Delivery failures only log; the state change
// already committed.
func (srv *sessionService) notifySessionEvent(ctx context.Context, event *service.NotificationEvent) *usecase.DispatchSummary {
	summary, err := srv.notifier.Notify(ctx, event)
	if err != nil {
		srv.log(ctx).Warn("Failed to send session notification",
			slog.String("type", event.Type),
			slog.String("sessionID", event.SessionID),
			slog.Any("error", err))

		return &usecase.DispatchSummary{Status: usecase.DispatchStatusFailed}
	}

	return summary
}
