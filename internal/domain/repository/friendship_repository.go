// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for friendship persistence.
var (
	// ErrFriendshipNotFound is returned when a friendship record is not found.
	ErrFriendshipNotFound = errors.New("friendship not found")
	// ErrDuplicateFriendship is returned when a request already exists between two users.
	ErrDuplicateFriendship = errors.New("friendship already exists")
)

// FriendshipRepository defines the interface for friend graph operations.
type FriendshipRepository interface {
	// CreateFriendship persists a new pending friend request.
	CreateFriendship(ctx context.Context, friendship *entity.Friendship) error

	// FindFriendshipByID retrieves a friendship record by its unique ID.
	FindFriendshipByID(ctx context.Context, id uuid.UUID) (*entity.Friendship, error)

	// FindFriendshipBetween retrieves the friendship record between two
	// users regardless of who requested it.
	FindFriendshipBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.Friendship, error)

	// UpdateFriendship persists a status change (accept, decline).
	UpdateFriendship(ctx context.Context, friendship *entity.Friendship) error

	// DeleteFriendship removes a friendship record, e.g., when unfriending.
	DeleteFriendship(ctx context.Context, id uuid.UUID) error

	// FindFriendshipsByUser retrieves all friendships involving a user,
	// optionally filtered by status (empty string means all).
	FindFriendshipsByUser(ctx context.Context, userID uuid.UUID, status string) ([]*entity.Friendship, error)

	// FindAcceptedFriendIDs returns the IDs of every user with an
	// accepted friendship with the given user, in either direction.
	FindAcceptedFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
