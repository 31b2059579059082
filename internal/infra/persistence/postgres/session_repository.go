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

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// CreateSession persists a new hangout session.
func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required session information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	// Update the entity with generated values
	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindSessionByID retrieves a session by its unique ID.
func (repo *sessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by ID")
	}

	return toSessionDomain(&sessionM), nil
}

// FindActiveSessionByOwner retrieves the owner's currently active session.
// Returns ErrSessionNotFound when the owner has no active session.
func (repo *sessionRepository) FindActiveSessionByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND ended_at IS NULL", ownerID).
		Order("started_at DESC").
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active session by owner")
	}

	return toSessionDomain(&sessionM), nil
}

// FindSessionsByOwners retrieves sessions started by any of the given
// owners, most recent first.
func (repo *sessionRepository) FindSessionsByOwners(ctx context.Context, ownerIDs []uuid.UUID, activeOnly bool) ([]*entity.Session, error) {
	if len(ownerIDs) == 0 {
		return []*entity.Session{}, nil
	}

	var sessionModels []*model.SessionModel

	query := repo.db.WithContext(ctx).
		Where("owner_id IN ?", ownerIDs)
	if activeOnly {
		query = query.Where("ended_at IS NULL")
	}

	if err := query.
		Order("started_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sessions by owners")
	}

	sessions := make([]*entity.Session, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

// UpdateSession persists changes to a session.
func (repo *sessionRepository) UpdateSession(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Save(sessionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required session information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to update session")
	}

	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// CreateSessionResponse persists a friend's answer to a session.
func (repo *sessionRepository) CreateSessionResponse(ctx context.Context, response *entity.SessionResponse) error {
	responseM := fromSessionResponseDomain(response)

	if err := repo.db.WithContext(ctx).Create(responseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSessionResponse
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSessionNotFound.WrapMessage("invalid session reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required response information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session response")
	}

	// Update the entity with generated values
	response.ID = responseM.ID
	response.CreatedAt = responseM.CreatedAt

	return nil
}

// FindSessionResponses retrieves all responses recorded for a session.
func (repo *sessionRepository) FindSessionResponses(ctx context.Context, sessionID uuid.UUID) ([]*entity.SessionResponse, error) {
	var responseModels []*model.SessionResponseModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&responseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find session responses")
	}

	responses := make([]*entity.SessionResponse, 0, len(responseModels))
	for _, responseM := range responseModels {
		responses = append(responses, toSessionResponseDomain(responseM))
	}

	return responses, nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Title:     data.Title,
		Message:   data.Message,
		StartedAt: data.StartedAt,
		EndedAt:   data.EndedAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Title:     data.Title,
		Message:   data.Message,
		StartedAt: data.StartedAt,
		EndedAt:   data.EndedAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toSessionResponseDomain converts a GORM SessionResponseModel to a domain SessionResponse entity.
func toSessionResponseDomain(data *model.SessionResponseModel) *entity.SessionResponse {
	if data == nil {
		return nil
	}

	return &entity.SessionResponse{
		ID:          data.ID,
		SessionID:   data.SessionID,
		ResponderID: data.ResponderID,
		Kind:        data.Kind,
		CreatedAt:   data.CreatedAt,
	}
}

// fromSessionResponseDomain converts a domain SessionResponse entity to a GORM SessionResponseModel.
func fromSessionResponseDomain(data *entity.SessionResponse) *model.SessionResponseModel {
	if data == nil {
		return nil
	}

	return &model.SessionResponseModel{
		ID:          data.ID,
		SessionID:   data.SessionID,
		ResponderID: data.ResponderID,
		Kind:        data.Kind,
		CreatedAt:   data.CreatedAt,
	}
}
