// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nexttoyou/internal/domain/entity"

	"github.com/paulmach/orb"
)

// CatalogRepository reads and replaces the store catalog.
type CatalogRepository interface {
	// FindStoresWithinBound returns every store whose location lies inside bound,
	// with its inventory loaded. The result is read from one consistent snapshot.
	FindStoresWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Store, error)

	// CountStores returns the number of stores in the catalog.
	CountStores(ctx context.Context) (int64, error)

	// ReplaceCatalog deletes the current catalog and inserts stores.
	// Callers run it inside a transaction so readers never see a partial catalog.
	ReplaceCatalog(ctx context.Context, stores []*entity.Store) error
}
