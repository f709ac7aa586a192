package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "nexttoyou/internal/delivery/context"
	"nexttoyou/internal/domain/constants"
	"nexttoyou/internal/domain/entity"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/domain/repository"
	"nexttoyou/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.Device, error) {
	if err := validateDeviceInfo(deviceInfo); err != nil {
		return nil, err
	}

	existing, err := s.deviceRepo.FindDeviceByUserAndDeviceID(ctx, userID, deviceInfo.DeviceID)
	switch {
	case err == nil:
		if err := s.deviceRepo.UpdateFCMToken(ctx, existing.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updated, err := s.deviceRepo.FindDeviceByID(ctx, existing.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updated, nil
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, errors.Wrap(err, "failed to find device by user")
	}

	now := time.Now()
	device := &entity.Device{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrDeviceRegistrationFailed.WithDetails("FCM token is already registered")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device registered",
		slog.String("user_id", userID.String()),
		slog.String("device_id", device.ID.String()),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	// Fetch device to verify ownership
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return domainerrors.ErrDeviceOwnershipViolation
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

func validateDeviceInfo(info *usecase.DeviceInfo) error {
	if info == nil || strings.TrimSpace(info.FCMToken) == "" || strings.TrimSpace(info.DeviceID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}
	if !slices.Contains([]string{constants.PlatformIOS, constants.PlatformAndroid}, info.Platform) {
		return domainerrors.ErrValidationFailed.WithDetails("platform must be ios or android")
	}

	return nil
}
