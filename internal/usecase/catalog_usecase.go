package usecase

import (
	"context"
)

// CatalogSeed is the document consumed by the administrative catalog load.
type CatalogSeed struct {
	Stores []SeedStore `json:"stores"`
}

// SeedStore is one store in a CatalogSeed. Inventory maps item name to price.
type SeedStore struct {
	ID        string             `json:"id,omitempty"`
	Name      string             `json:"name"`
	Category  string             `json:"category,omitempty"`
	Latitude  float64            `json:"lat"`
	Longitude float64            `json:"lon"`
	Address   string             `json:"address,omitempty"`
	Inventory map[string]float64 `json:"inventory"`
}

// CatalogUsecase loads the catalog.
type CatalogUsecase interface {
	// ReplaceCatalog validates seed and swaps it in atomically. It returns the
	// number of stores written.
	ReplaceCatalog(ctx context.Context, seed *CatalogSeed) (int, error)
}
