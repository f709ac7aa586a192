// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a catalog record: a physical shop and the items it carries.
// Stores are written only by the administrative catalog load.
type Store struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"` // e.g. "Supermarket", "Pharmacy"
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Address   string          `json:"address,omitempty"`
	Inventory []InventoryItem `json:"inventory"` // Ordered as loaded
	UpdatedAt time.Time       `json:"updated_at"`
}

// InventoryItem is one (item, price) pair carried by a store.
type InventoryItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
