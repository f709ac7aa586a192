package model

import (
	"time"

	"github.com/google/uuid"
)

// ProximityNotificationModel is the GORM-specific struct for the 'proximity_notifications' table.
// The ID is minted when the alert is emitted, so redelivered events collide on the primary key.
type ProximityNotificationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_proximity_notifications_user_emitted,priority:1"`
	StoreID        uuid.UUID `gorm:"type:uuid;not null"`
	StoreName      string    `gorm:"type:text;not null"`
	ItemName       string    `gorm:"type:text;not null"`
	Price          float64   `gorm:"type:numeric(10,2);not null"`
	DistanceMeters int       `gorm:"not null"`
	Latitude       float64   `gorm:"type:double precision;not null"`
	Longitude      float64   `gorm:"type:double precision;not null"`
	Title          string    `gorm:"type:text;not null"`
	Body           string    `gorm:"type:text;not null"`
	TotalSent      int       `gorm:"not null;default:0"`
	TotalFailed    int       `gorm:"not null;default:0"`
	EmittedAt      time.Time `gorm:"not null;index:idx_proximity_notifications_user_emitted,priority:2,sort:desc"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProximityNotificationModel) TableName() string {
	return "proximity_notifications"
}

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// It represents a log entry for a single notification sent to a user device.
type NotificationLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:text;not null;default:'sent'"`
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
