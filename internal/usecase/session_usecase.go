package usecase

import (
	"context"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
)

// StartSessionInput defines the data required to start a hangout session.
type StartSessionInput struct {
	Title   string
	Message string
}

// SessionFeedItem pairs a session with its owner's profile for feed rendering.
type SessionFeedItem struct {
	Session *entity.Session `json:"session"`
	Owner   *entity.User    `json:"owner"`
}

// SessionUsecase defines the interface for hangout session operations.
// Starting a session fans a push notification out to the owner's friends;
// responding notifies the owner.
type SessionUsecase interface {
	// StartSession creates an active session for the owner. A user can
	// have at most one active session at a time. The summary reports
	// the outcome of the friend push fan-out.
	StartSession(ctx context.Context, ownerID uuid.UUID, input *StartSessionInput) (*entity.Session, *DispatchSummary, error)

	// EndSession marks the owner's session as ended.
	EndSession(ctx context.Context, ownerID, sessionID uuid.UUID) (*entity.Session, *DispatchSummary, error)

	// RespondToSession records a friend's answer (join, decline, later)
	// to an active session. Only friends of the owner may respond, and
	// each responder gets one answer per session.
	RespondToSession(ctx context.Context, responderID, sessionID uuid.UUID, kind string) (*entity.SessionResponse, *DispatchSummary, error)

	// GetFriendFeed returns sessions started by the user's friends,
	// most recent first.
	GetFriendFeed(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*SessionFeedItem, error)

	// GetSessionResponses returns the answers recorded for one of the
	// owner's sessions.
	GetSessionResponses(ctx context.Context, ownerID, sessionID uuid.UUID) ([]*entity.SessionResponse, error)
}
