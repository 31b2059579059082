package handler

import (
	"net/http"

	"huddle/internal/delivery/http/response"
	"huddle/internal/domain/service"
	"huddle/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestHandler handles test endpoints for middleware and push validation.
// Its routes are only registered when testRoutes.enabled is set.
type TestHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(notificationUC usecase.NotificationUsecase) *TestHandler {
	return &TestHandler{notificationUC: notificationUC}
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid JWT token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID := c.Get("userID")

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  userID,
		"status":  "authenticated",
	}, "Authentication middleware test successful")
}

// TestPush sends a friend request push to the caller's own devices so
// the whole delivery chain can be exercised without a second account.
func (h *TestHandler) TestPush(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	event := &service.NotificationEvent{
		Type:        service.EventFriendRequest,
		ActorID:     userID.String(),
		ActorName:   "Push 測試",
		AudienceIDs: []string{userID.String()},
	}

	summary, err := h.notificationUC.Notify(c.Request().Context(), event)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"event_id":     event.EventID,
		"notification": summary,
	}, "Test push dispatched")
}
