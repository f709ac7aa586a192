package repository

import (
	"context"

	"nexttoyou/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when an FCM token is already registered.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores the devices that receive proximity alerts.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.Device) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDeviceByUserAndDeviceID looks up a registration by the client installation ID.
	FindDeviceByUserAndDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.Device, error)

	// FindActiveDevicesByUser returns devices that should receive pushes.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// DeleteDevice soft-deletes a device.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
