// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Friendship statuses. A friendship starts pending when requested and
// becomes accepted or declined by the addressee.
const (
	FriendshipStatusPending  = "pending"
	FriendshipStatusAccepted = "accepted"
	FriendshipStatusDeclined = "declined"
)

// Friendship represents a directed friend relationship between two users.
// The requester sent the invite and the addressee answers it. Once the
// status is accepted the relationship is treated as mutual regardless of
// direction.
type Friendship struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the friendship record.
	RequesterID uuid.UUID // The user who sent the friend request.
	AddresseeID uuid.UUID // The user who received the friend request.
	Status      string    // Current status: pending, accepted, or declined.
	CreatedAt   time.Time // Timestamp of when the request was sent.
	UpdatedAt   time.Time // Timestamp of the last status change.
}

// OtherUser returns the participant that is not the given user.
func (f *Friendship) OtherUser(userID uuid.UUID) uuid.UUID {
	if f.RequesterID == userID {
		return f.AddresseeID
	}

	return f.RequesterID
}

// Involves reports whether the given user is a participant of this friendship.
func (f *Friendship) Involves(userID uuid.UUID) bool {
	return f.RequesterID == userID || f.AddresseeID == userID
}
