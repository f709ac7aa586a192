package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
// A composite index on (latitude, longitude) backs the bounding-box pre-filter.
type StoreModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key"`
	Name      string           `gorm:"type:text;not null"`
	Category  string           `gorm:"type:varchar(100)"`
	Latitude  float64          `gorm:"type:double precision;not null;index:idx_stores_lat_lon,priority:1"`
	Longitude float64          `gorm:"type:double precision;not null;index:idx_stores_lat_lon,priority:2"`
	Address   string           `gorm:"type:text"`
	Items     []StoreItemModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// StoreItemModel is the GORM-specific struct for the 'store_items' table.
type StoreItemModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	StoreID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_store_items_store_name,priority:1"`
	Name     string    `gorm:"type:text;not null;uniqueIndex:idx_store_items_store_name,priority:2"`
	Price    float64   `gorm:"type:numeric(10,2);not null;check:price >= 0"`
	Position int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (StoreItemModel) TableName() string {
	return "store_items"
}
