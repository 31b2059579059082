// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"huddle/internal/delivery/http/response"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input *usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var input *usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout handles the user logout request.
func (h *UserHandler) Logout(c echo.Context) error {
	var input *usecase.LogoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.uc.Logout(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// LogoutAllDevices ends every login of the current user.
func (h *UserHandler) LogoutAllDevices(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.LogoutAllDevices(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out on all devices"}, "Logout successful")
}

// GoogleCallback handles the Google Sign-In callback (ID token flow).
func (h *UserHandler) GoogleCallback(c echo.Context) error {
	var input *usecase.GoogleCallbackInput

	// The mobile flow posts the ID token as a form value; the JSON
	// body is the fallback for web clients.
	if idToken := c.FormValue("id_token"); idToken != "" {
		input = &usecase.GoogleCallbackInput{IDToken: idToken}
	} else if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google callback input")
	}

	if input == nil || input.IDToken == "" {
		return response.BadRequest(c, "INVALID_INPUT", "ID token is required")
	}

	output, err := h.uc.GoogleCallback(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Google OAuth authentication successful")
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile handles updating the current user's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// GetActiveSessions lists the current user's logins.
func (h *UserHandler) GetActiveSessions(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	sessions, err := h.uc.GetActiveSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "Active sessions retrieved successfully")
}

// RevokeSession ends one of the current user's logins.
func (h *UserHandler) RevokeSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	if err := h.uc.RevokeSession(c.Request().Context(), userID, tokenID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session revoked"}, "Session revoked successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// getUserID extracts the authenticated user's ID from the context. On
// a missing or malformed ID it writes the 401 itself and returns a
// non-nil error so callers stop instead of proceeding with uuid.Nil.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		if err := response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token"); err != nil {
			return uuid.Nil, err
		}

		return uuid.Nil, echo.ErrUnauthorized
	}

	return userID, nil
}
