// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice registers a device by push token. If the token is
	// already registered, the existing row is reassigned to the new
	// owner instead of creating a duplicate.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices registered by a specific user.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindDevicesByUsers retrieves all devices for a set of users, e.g., a notification audience.
	FindDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeleteDevicesByTokens removes devices whose push tokens were
	// reported permanently invalid by a push gateway.
	DeleteDevicesByTokens(ctx context.Context, tokens []string) error
}
