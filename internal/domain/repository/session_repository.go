// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrDuplicateSessionResponse is returned when a user has already responded to a session.
	ErrDuplicateSessionResponse = errors.New("session response already exists")
)

// SessionRepository defines the interface for hangout session persistence.
type SessionRepository interface {
	// CreateSession persists a new session.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByID retrieves a session by its unique ID.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindActiveSessionByOwner retrieves the owner's currently active session, if any.
	FindActiveSessionByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Session, error)

	// FindSessionsByOwners retrieves sessions started by any of the
	// given owners, most recent first, e.g., a friend activity feed.
	FindSessionsByOwners(ctx context.Context, ownerIDs []uuid.UUID, activeOnly bool) ([]*entity.Session, error)

	// UpdateSession persists changes to a session, e.g., setting EndedAt.
	UpdateSession(ctx context.Context, session *entity.Session) error

	// CreateSessionResponse persists a friend's answer to a session.
	CreateSessionResponse(ctx context.Context, response *entity.SessionResponse) error

	// FindSessionResponses retrieves all responses recorded for a session.
	FindSessionResponses(ctx context.Context, sessionID uuid.UUID) ([]*entity.SessionResponse, error)
}
