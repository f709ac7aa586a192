package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProximityNotification records one alert emitted by the gating policy and the
// outcome of delivering it.
type ProximityNotification struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	StoreID        uuid.UUID `json:"store_id"`
	StoreName      string    `json:"store_name"`
	ItemName       string    `json:"item_name"`
	Price          float64   `json:"price"`
	DistanceMeters int       `json:"distance_meters"`
	Latitude       float64   `json:"lat"`
	Longitude      float64   `json:"lon"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	TotalSent      int       `json:"total_sent"`
	TotalFailed    int       `json:"total_failed"`
	EmittedAt      time.Time `json:"emitted_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationLog is the delivery result for a single device.
type NotificationLog struct {
	ID             uuid.UUID `json:"id"`
	NotificationID uuid.UUID `json:"notification_id"`
	UserID         uuid.UUID `json:"user_id"`
	DeviceID       uuid.UUID `json:"device_id"`
	Status         string    `json:"status"` // sent | failed
	ErrorMessage   string    `json:"error_message,omitempty"`
	SentAt         time.Time `json:"sent_at"`
}
