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

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for hangout session handlers.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// StartSessionRequest represents the request body for starting a session
type StartSessionRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Message string `json:"message" validate:"max=500"`
}

// RespondToSessionRequest represents the request body for answering a session
type RespondToSessionRequest struct {
	Kind string `json:"kind" validate:"required,oneof=join decline later"`
}

// SessionMutationResponse pairs a session mutation result with the
// outcome of the push fan-out it triggered.
type SessionMutationResponse struct {
	Session      *entity.Session          `json:"session"`
	Notification *usecase.DispatchSummary `json:"notification"`
}

// SessionResponseResponse pairs a recorded answer with the outcome of
// the owner notification it triggered.
type SessionResponseResponse struct {
	Response     *entity.SessionResponse  `json:"response"`
	Notification *usecase.DispatchSummary `json:"notification"`
}

// StartSession handles starting a hangout session
func (h *SessionHandler) StartSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, summary, err := h.sessionUC.StartSession(c.Request().Context(), userID, &usecase.StartSessionInput{
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &SessionMutationResponse{
		Session:      session,
		Notification: summary,
	}, "Session started successfully")
}

// EndSession handles ending the user's session
func (h *SessionHandler) EndSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	session, summary, err := h.sessionUC.EndSession(c.Request().Context(), userID, sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &SessionMutationResponse{
		Session:      session,
		Notification: summary,
	}, "Session ended successfully")
}

// RespondToSession handles a friend's answer to a session
func (h *SessionHandler) RespondToSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req RespondToSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	sessionResponse, summary, err := h.sessionUC.RespondToSession(c.Request().Context(), userID, sessionID, req.Kind)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &SessionResponseResponse{
		Response:     sessionResponse,
		Notification: summary,
	}, "Response recorded successfully")
}

// GetFriendFeed handles listing sessions started by the user's friends
func (h *SessionHandler) GetFriendFeed(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	// The feed defaults to active sessions only; history is opt-in.
	activeOnly := c.QueryParam("include_ended") != "true"

	feed, err := h.sessionUC.GetFriendFeed(c.Request().Context(), userID, activeOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feed, "Friend feed retrieved successfully")
}

// GetSessionResponses handles listing the answers to one of the user's sessions
func (h *SessionHandler) GetSessionResponses(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	responses, err := h.sessionUC.GetSessionResponses(c.Request().Context(), userID, sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, responses, "Session responses retrieved successfully")
}
