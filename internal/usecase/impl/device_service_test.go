package impl

import (
	"context"
	"testing"

	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	mockRepo "huddle/internal/mocks/repository"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		PushToken: "apns-token-abc",
		Platform:  entity.PlatformIOS,
	}

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(ctx context.Context, device *entity.UserDevice) {
			device.ID = uuid.New()
		}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.PushToken, device.PushToken)
	assert.Equal(t, entity.PlatformIOS, device.Platform)
}

func TestDeviceService_RegisterDevice_InvalidPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		PushToken: "some-token",
		Platform:  "windows",
	})

	assert.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPlatform))
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		Platform: entity.PlatformAndroid,
	})

	assert.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, PushToken: "token-1", Platform: entity.PlatformIOS},
		{ID: uuid.New(), UserID: userID, PushToken: "token-2", Platform: entity.PlatformAndroid},
	}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devices, nil)

	result, err := fx.service.GetUserDevices(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestDeviceService_RemoveDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

	err := fx.service.RemoveDevice(ctx, userID, deviceID)

	assert.NoError(t, err)
}

func TestDeviceService_RemoveDevice_NotOwner(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.RemoveDevice(ctx, uuid.New(), deviceID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceOwnershipViolation))
}

func TestDeviceService_RemoveDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.RemoveDevice(ctx, uuid.New(), deviceID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}
