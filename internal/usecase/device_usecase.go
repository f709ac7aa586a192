package usecase

import (
	"context"

	"nexttoyou/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase manages the devices that receive proximity alerts.
type DeviceUsecase interface {
	// RegisterDevice registers a new device, or refreshes the token of a known one
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.Device, error)

	// GetUserDevices retrieves all active devices for a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// DeactivateDevice soft-deletes a device owned by the user
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
