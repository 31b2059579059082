package usecase

import (
	"context"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	PushToken string `json:"push_token"`
	Platform  string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a device for push delivery. A push token
	// already registered by another account is reassigned to the caller.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// GetUserDevices retrieves all devices registered by a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// RemoveDevice removes a device the user owns
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
