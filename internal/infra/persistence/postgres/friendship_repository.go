// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// friendshipRepository implements the repository.FriendshipRepository interface.
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{
		db: db,
	}
}

// CreateFriendship persists a new pending friend request.
func (repo *friendshipRepository) CreateFriendship(ctx context.Context, friendship *entity.Friendship) error {
	friendshipM := fromFriendshipDomain(friendship)

	if err := repo.db.WithContext(ctx).Create(friendshipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFriendship
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required friendship information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create friendship")
	}

	// Update the entity with generated values
	friendship.ID = friendshipM.ID
	friendship.CreatedAt = friendshipM.CreatedAt
	friendship.UpdatedAt = friendshipM.UpdatedAt

	return nil
}

// FindFriendshipByID retrieves a friendship record by its unique ID.
func (repo *friendshipRepository) FindFriendshipByID(ctx context.Context, id uuid.UUID) (*entity.Friendship, error) {
	var friendshipM model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&friendshipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find friendship by ID")
	}

	return toFriendshipDomain(&friendshipM), nil
}

// FindFriendshipBetween retrieves the friendship record between two users
// regardless of which of them sent the request.
func (repo *friendshipRepository) FindFriendshipBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.Friendship, error) {
	var friendshipM model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		First(&friendshipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find friendship between users")
	}

	return toFriendshipDomain(&friendshipM), nil
}

// UpdateFriendship persists a status change.
func (repo *friendshipRepository) UpdateFriendship(ctx context.Context, friendship *entity.Friendship) error {
	friendshipM := fromFriendshipDomain(friendship)

	if err := repo.db.WithContext(ctx).Save(friendshipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFriendship
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid friendship status")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to update friendship")
	}

	friendship.UpdatedAt = friendshipM.UpdatedAt

	return nil
}

// DeleteFriendship removes a friendship record.
func (repo *friendshipRepository) DeleteFriendship(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FriendshipModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete friendship")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFriendshipNotFound
	}

	return nil
}

// FindFriendshipsByUser retrieves all friendships involving a user,
// optionally filtered by status. An empty status returns every record.
func (repo *friendshipRepository) FindFriendshipsByUser(ctx context.Context, userID uuid.UUID, status string) ([]*entity.Friendship, error) {
	var friendshipModels []*model.FriendshipModel

	query := repo.db.WithContext(ctx).
		Where("requester_id = ? OR addressee_id = ?", userID, userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.
		Order("created_at DESC").
		Find(&friendshipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find friendships by user")
	}

	friendships := make([]*entity.Friendship, 0, len(friendshipModels))
	for _, friendshipM := range friendshipModels {
		friendships = append(friendships, toFriendshipDomain(friendshipM))
	}

	return friendships, nil
}

// FindAcceptedFriendIDs returns the IDs of every user with an accepted
// friendship with the given user, in either direction. This is the audience
// query behind the notification fan-out.
func (repo *friendshipRepository) FindAcceptedFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var friendshipModels []*model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
			userID, userID, entity.FriendshipStatusAccepted).
		Find(&friendshipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accepted friend IDs")
	}

	friendIDs := make([]uuid.UUID, 0, len(friendshipModels))
	for _, friendshipM := range friendshipModels {
		if friendshipM.RequesterID == userID {
			friendIDs = append(friendIDs, friendshipM.AddresseeID)
		} else {
			friendIDs = append(friendIDs, friendshipM.RequesterID)
		}
	}

	return friendIDs, nil
}

// --- Mapper Functions ---

// toFriendshipDomain converts a GORM FriendshipModel to a domain Friendship entity.
func toFriendshipDomain(data *model.FriendshipModel) *entity.Friendship {
	if data == nil {
		return nil
	}

	return &entity.Friendship{
		ID:          data.ID,
		RequesterID: data.RequesterID,
		AddresseeID: data.AddresseeID,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromFriendshipDomain converts a domain Friendship entity to a GORM FriendshipModel.
func fromFriendshipDomain(data *entity.Friendship) *model.FriendshipModel {
	if data == nil {
		return nil
	}

	return &model.FriendshipModel{
		ID:          data.ID,
		RequesterID: data.RequesterID,
		AddresseeID: data.AddresseeID,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
