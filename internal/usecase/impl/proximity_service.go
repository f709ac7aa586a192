// Package impl contains the application-specific business rules implementations.
package impl

import (
	"bytes"
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	"nexttoyou/config"
	deliverycontext "nexttoyou/internal/delivery/context"
	"nexttoyou/internal/domain/entity"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/domain/geo"
	"nexttoyou/internal/domain/matcher"
	"nexttoyou/internal/domain/repository"
	"nexttoyou/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type proximityService struct {
	catalogRepo   repository.CatalogRepository
	taskRepo      repository.TaskRepository
	logger        *slog.Logger
	exploreRadius float64
	maxRadius     float64
	queryTimeout  time.Duration
}

// NewProximityService creates the proximity search engine.
func NewProximityService(
	catalogRepo repository.CatalogRepository,
	taskRepo repository.TaskRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProximityUsecase {
	return &proximityService{
		catalogRepo:   catalogRepo,
		taskRepo:      taskRepo,
		logger:        logger,
		exploreRadius: cfg.Proximity.ExploreRadiusMeters,
		maxRadius:     cfg.Proximity.MaxSearchRadiusMeters,
		queryTimeout:  cfg.Proximity.QueryTimeout,
	}
}

// SearchNearby returns stores within the radius carrying an item that matches
// the query, or any open task of the user when no query is given.
func (s *proximityService) SearchNearby(ctx context.Context, userID uuid.UUID, query usecase.SearchQuery) ([]entity.ProximityMatch, error) {
	if err := s.validate(query.Latitude, query.Longitude, query.RadiusMeters); err != nil {
		return nil, err
	}

	// A blank single-item query can never match; skip the round trip.
	if query.ItemQuery != nil && matcher.Normalize(*query.ItemQuery) == "" {
		return []entity.ProximityMatch{}, nil
	}

	stores, titles, err := s.load(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	var m *matcher.Matcher
	if query.ItemQuery != nil {
		m = matcher.New(*query.ItemQuery)
	} else {
		m = matcher.New(titles...)
	}

	return s.rank(ctx, query, stores, m), nil
}

// SearchByItemName is SearchNearby for a single item name, defaulting to the exploration radius.
func (s *proximityService) SearchByItemName(ctx context.Context, lat, lon float64, itemName string, radiusMeters float64) ([]entity.ProximityMatch, error) {
	if radiusMeters == 0 {
		radiusMeters = s.exploreRadius
	}

	return s.SearchNearby(ctx, uuid.Nil, usecase.SearchQuery{
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radiusMeters,
		ItemQuery:    &itemName,
	})
}

func (s *proximityService) validate(lat, lon, radius float64) error {
	if err := geo.ValidateCoordinate(lat, lon); err != nil {
		return err
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return domainerrors.ErrInvalidRadius
	}
	if s.maxRadius > 0 && radius > s.maxRadius {
		return domainerrors.ErrInvalidRadius.WithDetails("radius exceeds the maximum search radius")
	}

	return nil
}

// load fetches the candidate stores and, in task mode, the user's open task
// titles concurrently under one timeout.
func (s *proximityService) load(ctx context.Context, userID uuid.UUID, query usecase.SearchQuery) ([]*entity.Store, []string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var (
		stores []*entity.Store
		titles []string
	)
	bound := geo.BoundAround(query.Latitude, query.Longitude, query.RadiusMeters)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.catalogRepo.FindStoresWithinBound(gctx, bound)
		if err != nil {
			return errors.Wrap(err, "failed to read catalog")
		}
		stores = found

		return nil
	})
	if query.ItemQuery == nil {
		g.Go(func() error {
			found, err := s.taskRepo.FindOpenTaskTitles(gctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to read open tasks")
			}
			titles = found

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrCatalogUnavailable, err.Error())
	}

	return stores, titles, nil
}

func (s *proximityService) rank(ctx context.Context, query usecase.SearchQuery, stores []*entity.Store, m *matcher.Matcher) []entity.ProximityMatch {
	matches := []entity.ProximityMatch{}
	if m.Empty() {
		return matches
	}

	origin := orb.Point{query.Longitude, query.Latitude}
	for _, store := range stores {
		if geo.ValidateCoordinate(store.Latitude, store.Longitude) != nil {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Skipping store with invalid coordinates",
				slog.String("store_id", store.ID.String()),
			)

			continue
		}

		distance := geo.PointDistance(origin, orb.Point{store.Longitude, store.Latitude})
		if distance > query.RadiusMeters {
			continue
		}

		items := matchInventory(store.Inventory, m)
		if len(items) == 0 {
			continue
		}

		matches = append(matches, entity.ProximityMatch{
			StoreID:        store.ID,
			StoreName:      store.Name,
			Category:       store.Category,
			Latitude:       store.Latitude,
			Longitude:      store.Longitude,
			Address:        store.Address,
			DistanceMeters: geo.RoundMeters(distance),
			MatchedItems:   items,
		})
	}

	slices.SortFunc(matches, func(a, b entity.ProximityMatch) int {
		if c := cmp.Compare(a.DistanceMeters, b.DistanceMeters); c != 0 {
			return c
		}

		return bytes.Compare(a.StoreID[:], b.StoreID[:])
	})

	return matches
}

// matchInventory returns the matching items once each, cheapest first.
func matchInventory(inventory []entity.InventoryItem, m *matcher.Matcher) []entity.MatchedItem {
	var items []entity.MatchedItem
	seen := make(map[string]struct{}, len(inventory))

	for _, item := range inventory {
		if _, dup := seen[item.Name]; dup {
			continue
		}
		if !m.MatchAny(item.Name) {
			continue
		}
		seen[item.Name] = struct{}{}
		items = append(items, entity.MatchedItem{Name: item.Name, Price: item.Price})
	}

	slices.SortStableFunc(items, func(a, b entity.MatchedItem) int {
		if c := cmp.Compare(a.Price, b.Price); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return items
}
