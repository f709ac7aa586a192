package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is a phone registered to receive proximity alerts through FCM.
type Device struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"` // Client-generated installation ID
	Platform  string    `json:"platform"`  // ios | android
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Deliverable reports whether a push can be sent to this device.
func (d *Device) Deliverable() bool {
	return d != nil && d.IsActive && d.FCMToken != ""
}
