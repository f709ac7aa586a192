// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"nexttoyou/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchQuery describes one proximity search around a position.
type SearchQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64

	// ItemQuery restricts matching to one item name. When nil the user's open
	// task titles are matched instead.
	ItemQuery *string
}

// ProximityUsecase finds nearby stores carrying wanted items.
// Implementations are stateless and safe for concurrent use.
type ProximityUsecase interface {
	// SearchNearby returns matches ranked by distance, then store ID.
	SearchNearby(ctx context.Context, userID uuid.UUID, query SearchQuery) ([]entity.ProximityMatch, error)

	// SearchByItemName searches for a single item. A zero radius selects the
	// configured exploration radius.
	SearchByItemName(ctx context.Context, lat, lon float64, itemName string, radiusMeters float64) ([]entity.ProximityMatch, error)
}
