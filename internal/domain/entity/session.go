// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session response kinds sent by friends of the session owner.
const (
	SessionResponseJoin    = "join"
	SessionResponseDecline = "decline"
	SessionResponseLater   = "later"
)

// Session represents a hangout announced by a user to their friends.
// Starting a session triggers a push notification fan-out to every
// accepted friend of the owner.
type Session struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the session.
	OwnerID   uuid.UUID  // The user who started the session.
	Title     string     // Short display title, e.g., "Board games at my place".
	Message   string     // Optional free-form note shown in the notification body.
	StartedAt time.Time  // Timestamp of when the session was started.
	EndedAt   *time.Time // Timestamp of when the session ended; nil while active.
	CreatedAt time.Time  // Timestamp of when this record was created.
	UpdatedAt time.Time  // Timestamp of the last modification.
}

// Active reports whether the session has not ended yet.
func (s *Session) Active() bool {
	return s.EndedAt == nil
}

// SessionResponse records a friend's answer to an active session.
// Responding notifies the session owner.
type SessionResponse struct {
	ID          uuid.UUID // The unique ID for this response record.
	SessionID   uuid.UUID // The session being answered.
	ResponderID uuid.UUID // The friend who responded.
	Kind        string    // Response kind: join, decline, or later.
	CreatedAt   time.Time // Timestamp of when the response was recorded.
}
