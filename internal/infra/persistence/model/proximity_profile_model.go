package model

import (
	"time"

	"github.com/google/uuid"
)

// ProximityProfileModel is the GORM-specific struct for the 'proximity_profiles' table.
type ProximityProfileModel struct {
	UserID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	NotificationRadiusMeters float64   `gorm:"type:double precision;not null;default:50"`
	ActiveStartHour          int       `gorm:"type:smallint;not null;default:8;check:active_start_hour BETWEEN 0 AND 23"`
	ActiveEndHour            int       `gorm:"type:smallint;not null;default:22;check:active_end_hour BETWEEN 0 AND 23"`
	TimeZone                 string    `gorm:"type:varchar(64);not null"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProximityProfileModel) TableName() string {
	return "proximity_profiles"
}
