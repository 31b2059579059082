package impl

import (
	"context"
	"errors"
	"fmt"

	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a device endpoint for push delivery. A token
// already registered by another account is reassigned to this user.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if deviceInfo.PushToken == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("push token is required")
	}

	switch deviceInfo.Platform {
	case entity.PlatformIOS, entity.PlatformAndroid:
	default:
		return nil, domainerrors.ErrInvalidPlatform.WrapMessage(
			fmt.Sprintf("unsupported platform: %s", deviceInfo.Platform))
	}

	device := &entity.UserDevice{
		UserID:    userID,
		PushToken: deviceInfo.PushToken,
		Platform:  deviceInfo.Platform,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to upsert device: %w", err)
	}

	return device, nil
}

// GetUserDevices retrieves all registered devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by user: %w", err)
	}

	return devices, nil
}

// RemoveDevice deletes a device endpoint after verifying ownership
func (s *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return fmt.Errorf("failed to find device by ID: %w", err)
	}

	if device.UserID != userID {
		return domainerrors.ErrDeviceOwnershipViolation
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}
