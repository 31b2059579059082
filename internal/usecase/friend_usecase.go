package usecase

import (
	"context"
	"time"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
)

// FriendInfo pairs an accepted friend with the friendship record linking them.
type FriendInfo struct {
	FriendshipID uuid.UUID    `json:"friendship_id"`
	User         *entity.User `json:"user"`
	Since        time.Time    `json:"since"`
}

// FriendRequestInfo pairs a pending request with the user who sent it.
type FriendRequestInfo struct {
	Friendship *entity.Friendship `json:"friendship"`
	Requester  *entity.User       `json:"requester"`
}

// FriendUsecase defines the interface for friend graph operations.
// Sending and accepting requests notifies the other party via push.
type FriendUsecase interface {
	// SendFriendRequest creates a pending request from requester to
	// addressee. The summary reports the outcome of the addressee push.
	SendFriendRequest(ctx context.Context, requesterID, addresseeID uuid.UUID) (*entity.Friendship, *DispatchSummary, error)

	// AcceptFriendRequest marks a pending request as accepted. Only the
	// addressee may accept.
	AcceptFriendRequest(ctx context.Context, userID, friendshipID uuid.UUID) (*entity.Friendship, *DispatchSummary, error)

	// DeclineFriendRequest marks a pending request as declined. Only the
	// addressee may decline. Declines are silent, no push is sent.
	DeclineFriendRequest(ctx context.Context, userID, friendshipID uuid.UUID) error

	// Unfriend removes an accepted friendship in either direction.
	Unfriend(ctx context.Context, userID, friendID uuid.UUID) error

	// ListFriends returns the user's accepted friends with their profiles.
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*FriendInfo, error)

	// ListPendingRequests returns requests waiting for the user's answer.
	ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]*FriendRequestInfo, error)

	// GenerateInviteQR renders the user's friend invite as a QR code PNG.
	GenerateInviteQR(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// AddFriendByInvite sends a friend request to the user encoded in a
	// scanned invite payload.
	AddFriendByInvite(ctx context.Context, userID uuid.UUID, payload string) (*entity.Friendship, *DispatchSummary, error)
}
