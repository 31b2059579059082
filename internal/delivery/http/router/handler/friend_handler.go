package handler

import (
	"log/slog"
	"net/http"

	"huddle/internal/delivery/http/response"
	"huddle/internal/domain/entity"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FriendHandlerParams holds dependencies for FriendHandler, injected by Fx.
type FriendHandlerParams struct {
	fx.In

	FriendUC usecase.FriendUsecase
	Logger   *slog.Logger
}

// FriendHandler holds dependencies for friend graph handlers.
type FriendHandler struct {
	friendUC usecase.FriendUsecase
	logger   *slog.Logger
}

// NewFriendHandler is the constructor for FriendHandler
func NewFriendHandler(params FriendHandlerParams) *FriendHandler {
	return &FriendHandler{
		friendUC: params.FriendUC,
		logger:   params.Logger,
	}
}

// SendFriendRequestRequest represents the request body for sending a friend request
type SendFriendRequestRequest struct {
	AddresseeID string `json:"addressee_id" validate:"required,uuid"`
}

// AddFriendByInviteRequest represents the request body for a scanned invite
type AddFriendByInviteRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// FriendshipMutationResponse pairs a friendship mutation result with
// the outcome of the push fan-out it triggered.
type FriendshipMutationResponse struct {
	Friendship   *entity.Friendship       `json:"friendship"`
	Notification *usecase.DispatchSummary `json:"notification"`
}

// SendFriendRequest handles sending a friend request
func (h *FriendHandler) SendFriendRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SendFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	addresseeID, err := uuid.Parse(req.AddresseeID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid addressee ID")
	}

	friendship, summary, err := h.friendUC.SendFriendRequest(c.Request().Context(), userID, addresseeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &FriendshipMutationResponse{
		Friendship:   friendship,
		Notification: summary,
	}, "Friend request sent successfully")
}

// AcceptFriendRequest handles accepting a pending friend request
func (h *FriendHandler) AcceptFriendRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	friendshipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid friendship ID")
	}

	friendship, summary, err := h.friendUC.AcceptFriendRequest(c.Request().Context(), userID, friendshipID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &FriendshipMutationResponse{
		Friendship:   friendship,
		Notification: summary,
	}, "Friend request accepted successfully")
}

// DeclineFriendRequest handles declining a pending friend request
func (h *FriendHandler) DeclineFriendRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	friendshipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid friendship ID")
	}

	if err := h.friendUC.DeclineFriendRequest(c.Request().Context(), userID, friendshipID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Friend request declined"}, "Friend request declined successfully")
}

// Unfriend handles removing a friend
func (h *FriendHandler) Unfriend(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid friend ID")
	}

	if err := h.friendUC.Unfriend(c.Request().Context(), userID, friendID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Friend removed"}, "Friend removed successfully")
}

// ListFriends handles listing the current user's friends
func (h *FriendHandler) ListFriends(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	friends, err := h.friendUC.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, friends, "Friends retrieved successfully")
}

// ListPendingRequests handles listing friend requests awaiting the user's answer
func (h *FriendHandler) ListPendingRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.friendUC.ListPendingRequests(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Pending friend requests retrieved successfully")
}

// GenerateInviteQR renders the user's friend invite as a QR code image
func (h *FriendHandler) GenerateInviteQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	png, err := h.friendUC.GenerateInviteQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AddFriendByInvite handles a scanned friend invite QR payload
func (h *FriendHandler) AddFriendByInvite(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req AddFriendByInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	friendship, summary, err := h.friendUC.AddFriendByInvite(c.Request().Context(), userID, req.Payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &FriendshipMutationResponse{
		Friendship:   friendship,
		Notification: summary,
	}, "Friend request sent successfully")
}
