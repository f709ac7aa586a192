package entity

import (
	"github.com/google/uuid"
)

// ProximityMatch is a store within the search radius that carries at least one
// matching item. It is computed per request and never persisted.
type ProximityMatch struct {
	StoreID        uuid.UUID     `json:"store_id"`
	StoreName      string        `json:"store"`
	Category       string        `json:"category,omitempty"`
	Latitude       float64       `json:"lat"`
	Longitude      float64       `json:"lon"`
	Address        string        `json:"address,omitempty"`
	DistanceMeters int           `json:"distance"`    // Rounded to the nearest meter
	MatchedItems   []MatchedItem `json:"found_items"` // Ascending by price
}

// MatchedItem is one inventory entry that matched the query or a task title.
type MatchedItem struct {
	Name  string  `json:"item"`
	Price float64 `json:"price"`
}

// MatchKey identifies a (store, item) pair in notification memory.
func MatchKey(storeID uuid.UUID, itemName string) string {
	return storeID.String() + "|" + itemName
}
