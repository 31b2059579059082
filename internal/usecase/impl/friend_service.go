package impl

import (
	"context"
	"log/slog"

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

// friendService implements the FriendUsecase interface.
type friendService struct {
	txManager      repository.TransactionManager
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	qrcodeService  service.QRCodeService
	notifier       usecase.NotificationUsecase
	logger         *slog.Logger
}

// FriendServiceParams holds dependencies for FriendService, injected by Fx.
type FriendServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	FriendshipRepo repository.FriendshipRepository
	UserRepo       repository.UserRepository
	QRCodeService  service.QRCodeService
	Notifier       usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NewFriendService is the constructor for friendService.
func NewFriendService(params FriendServiceParams) usecase.FriendUsecase {
	return &friendService{
		txManager:      params.TxManager,
		friendshipRepo: params.FriendshipRepo,
		userRepo:       params.UserRepo,
		qrcodeService:  params.QRCodeService,
		notifier:       params.Notifier,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *friendService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendFriendRequest creates a pending request and notifies the addressee.
func (srv *friendService) SendFriendRequest(ctx context.Context, requesterID, addresseeID uuid.UUID) (*entity.Friendship, *usecase.DispatchSummary, error) {
	if requesterID == addresseeID {
		return nil, nil, errors.Wrap(domainerrors.ErrFriendshipSelf, "cannot send friend request to yourself")
	}

	var (
		friendship *entity.Friendship
		requester  *entity.User
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendshipRepo := repoFactory.FriendshipRepo()
		userRepo := repoFactory.UserRepo()

		// The addressee must exist before a request is recorded.
		if _, err := userRepo.FindByID(ctx, addresseeID); err != nil {
			return errors.Wrap(err, "failed to find addressee")
		}

		var err error
		requester, err = userRepo.FindByID(ctx, requesterID)
		if err != nil {
			return errors.Wrap(err, "failed to find requester")
		}

		existing, err := friendshipRepo.FindFriendshipBetween(ctx, requesterID, addresseeID)
		if err != nil && !errors.Is(err, repository.ErrFriendshipNotFound) {
			return errors.Wrap(err, "failed to check existing friendship")
		}

		if existing != nil {
			if existing.Status != entity.FriendshipStatusDeclined {
				return errors.Wrap(domainerrors.ErrFriendshipExists, "friendship already exists")
			}

			// A declined request can be retried. The declining side may
			// change their mind, so the direction is reset to the new
			// requester.
			existing.RequesterID = requesterID
			existing.AddresseeID = addresseeID
			existing.Status = entity.FriendshipStatusPending
			if err := friendshipRepo.UpdateFriendship(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to renew declined friendship")
			}
			friendship = existing

			return nil
		}

		friendship = &entity.Friendship{
			RequesterID: requesterID,
			AddresseeID: addresseeID,
			Status:      entity.FriendshipStatusPending,
		}
		if err := friendshipRepo.CreateFriendship(ctx, friendship); err != nil {
			return errors.Wrap(err, "failed to create friendship")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to send friend request",
			slog.Any("requesterID", requesterID),
			slog.Any("addresseeID", addresseeID),
			slog.Any("error", err))

		return nil, nil, errors.Wrap(err, "failed to execute friend request transaction")
	}

	summary := srv.notifyFriendEvent(ctx, service.EventFriendRequest, requester, addresseeID)

	return friendship, summary, nil
}

// AcceptFriendRequest marks a pending request as accepted and notifies the requester.
func (srv *friendService) AcceptFriendRequest(ctx context.Context, userID, friendshipID uuid.UUID) (*entity.Friendship, *usecase.DispatchSummary, error) {
	var (
		friendship *entity.Friendship
		accepter   *entity.User
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendshipRepo := repoFactory.FriendshipRepo()
		userRepo := repoFactory.UserRepo()

		var err error
		friendship, err = srv.loadPendingForAddressee(ctx, friendshipRepo, userID, friendshipID)
		if err != nil {
			return err
		}

		accepter, err = userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find accepting user")
		}

		friendship.Status = entity.FriendshipStatusAccepted
		if err := friendshipRepo.UpdateFriendship(ctx, friendship); err != nil {
			return errors.Wrap(err, "failed to update friendship")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to accept friend request",
			slog.Any("userID", userID),
			slog.Any("friendshipID", friendshipID),
			slog.Any("error", err))

		return nil, nil, errors.Wrap(err, "failed to execute accept friend request transaction")
	}

	summary := srv.notifyFriendEvent(ctx, service.EventFriendAccepted, accepter, friendship.RequesterID)

	return friendship, summary, nil
}

// DeclineFriendRequest marks a pending request as declined. No push is sent.
func (srv *friendService) DeclineFriendRequest(ctx context.Context, userID, friendshipID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendshipRepo := repoFactory.FriendshipRepo()

		friendship, err := srv.loadPendingForAddressee(ctx, friendshipRepo, userID, friendshipID)
		if err != nil {
			return err
		}

		friendship.Status = entity.FriendshipStatusDeclined
		if err := friendshipRepo.UpdateFriendship(ctx, friendship); err != nil {
			return errors.Wrap(err, "failed to update friendship")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to decline friend request",
			slog.Any("userID", userID),
			slog.Any("friendshipID", friendshipID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to execute decline friend request transaction")
	}

	return nil
}

// loadPendingForAddressee loads a friendship and verifies the caller is
// the addressee of a still pending request.
func (srv *friendService) loadPendingForAddressee(ctx context.Context, friendshipRepo repository.FriendshipRepository, userID, friendshipID uuid.UUID) (*entity.Friendship, error) {
	friendship, err := friendshipRepo.FindFriendshipByID(ctx, friendshipID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFriendshipNotFound, "friend request not found")
		}

		return nil, errors.Wrap(err, "failed to find friendship")
	}

	if friendship.AddresseeID != userID {
		return nil, errors.Wrap(domainerrors.ErrFriendshipNotAddressee, "only the addressee can answer a friend request")
	}
	if friendship.Status != entity.FriendshipStatusPending {
		return nil, errors.Wrap(domainerrors.ErrFriendshipNotPending, "friend request already answered")
	}

	return friendship, nil
}

// Unfriend removes the friendship between the user and a friend.
func (srv *friendService) Unfriend(ctx context.Context, userID, friendID uuid.UUID) error {
	friendship, err := srv.friendshipRepo.FindFriendshipBetween(ctx, userID, friendID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return errors.Wrap(domainerrors.ErrFriendshipNotFound, "friendship not found")
		}

		return errors.Wrap(err, "failed to find friendship")
	}

	if err := srv.friendshipRepo.DeleteFriendship(ctx, friendship.ID); err != nil {
		return errors.Wrap(err, "failed to delete friendship")
	}

	srv.log(ctx).Info("Friendship removed",
		slog.Any("userID", userID),
		slog.Any("friendID", friendID))

	return nil
}

// ListFriends returns the user's accepted friends with their profiles.
func (srv *friendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]*usecase.FriendInfo, error) {
	friendships, err := srv.friendshipRepo.FindFriendshipsByUser(ctx, userID, entity.FriendshipStatusAccepted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accepted friendships")
	}

	friendIDs := make([]uuid.UUID, 0, len(friendships))
	for _, friendship := range friendships {
		friendIDs = append(friendIDs, friendship.OtherUser(userID))
	}

	users, err := srv.userRepo.FindByIDs(ctx, friendIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load friend profiles")
	}

	usersByID := make(map[uuid.UUID]*entity.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	friends := make([]*usecase.FriendInfo, 0, len(friendships))
	for _, friendship := range friendships {
		user, ok := usersByID[friendship.OtherUser(userID)]
		if !ok {
			// Friend row without a user row, skip rather than fail the list.
			continue
		}

		friends = append(friends, &usecase.FriendInfo{
			FriendshipID: friendship.ID,
			User:         user,
			Since:        friendship.UpdatedAt,
		})
	}

	return friends, nil
}

// ListPendingRequests returns requests waiting for the user's answer.
func (srv *friendService) ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]*usecase.FriendRequestInfo, error) {
	friendships, err := srv.friendshipRepo.FindFriendshipsByUser(ctx, userID, entity.FriendshipStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending friendships")
	}

	// Only requests addressed TO the user need an answer; requests the
	// user sent are excluded.
	incoming := make([]*entity.Friendship, 0, len(friendships))
	requesterIDs := make([]uuid.UUID, 0, len(friendships))
	for _, friendship := range friendships {
		if friendship.AddresseeID != userID {
			continue
		}
		incoming = append(incoming, friendship)
		requesterIDs = append(requesterIDs, friendship.RequesterID)
	}

	users, err := srv.userRepo.FindByIDs(ctx, requesterIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load requester profiles")
	}

	usersByID := make(map[uuid.UUID]*entity.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	requests := make([]*usecase.FriendRequestInfo, 0, len(incoming))
	for _, friendship := range incoming {
		requests = append(requests, &usecase.FriendRequestInfo{
			Friendship: friendship,
			Requester:  usersByID[friendship.RequesterID],
		})
	}

	return requests, nil
}

// GenerateInviteQR renders the user's friend invite as a QR code PNG.
func (srv *friendService) GenerateInviteQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to find inviting user")
	}

	png, err := srv.qrcodeService.GenerateFriendInviteQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate friend invite QR code")
	}

	return png, nil
}

// AddFriendByInvite sends a friend request to the user encoded in a
// scanned invite payload.
func (srv *friendService) AddFriendByInvite(ctx context.Context, userID uuid.UUID, payload string) (*entity.Friendship, *usecase.DispatchSummary, error) {
	inviterID, err := srv.qrcodeService.ParseFriendInviteQR(payload)
	if err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid friend invite payload")
	}

	return srv.SendFriendRequest(ctx, userID, inviterID)
}

// notifyFriendEvent pushes a friend graph event to a single recipient
// and returns the summary the handler reports back. Delivery failures
// only log; the state change already committed.
func (srv *friendService) notifyFriendEvent(ctx context.Context, eventType string, actor *entity.User, recipientID uuid.UUID) *usecase.DispatchSummary {
	event := &service.NotificationEvent{
		Type:        eventType,
		ActorID:     actor.ID.String(),
		ActorName:   actor.DisplayName,
		AudienceIDs: []string{recipientID.String()},
	}

	summary, err := srv.notifier.Notify(ctx, event)
	if err != nil {
		srv.log(ctx).Warn("Failed to send friend notification",
			slog.String("type", eventType),
			slog.Any("recipientID", recipientID),
			slog.Any("error", err))

		return &usecase.DispatchSummary{Status: usecase.DispatchStatusFailed}
	}

	return summary
}
