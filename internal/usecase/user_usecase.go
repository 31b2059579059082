// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	DisplayName string
	Email       string
	Password    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email      string
	Password   string
	DeviceName string
}

// RefreshTokenInput carries the raw refresh token presented by a client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the login being ended.
type LogoutInput struct {
	RefreshToken string
}

// GoogleCallbackInput carries the Google ID token from the client-side sign-in flow.
type GoogleCallbackInput struct {
	IDToken    string
	DeviceName string
}

// UpdateProfileInput defines the mutable profile fields. Empty strings leave
// the current value unchanged.
type UpdateProfileInput struct {
	DisplayName string
	AvatarURL   string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the newly issued access token. The refresh
// token itself is never rotated on refresh.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GoogleCallback(ctx context.Context, input *GoogleCallbackInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	LogoutAllDevices(ctx context.Context, userID uuid.UUID) error

	// GetActiveSessions lists the user's current logins (refresh tokens).
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// RevokeSession ends one login by deleting its refresh token.
	RevokeSession(ctx context.Context, userID, tokenID uuid.UUID) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
