package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	deliverycontext "nexttoyou/internal/delivery/context"
	"nexttoyou/internal/domain/entity"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/domain/geo"
	"nexttoyou/internal/domain/repository"
	"nexttoyou/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// storeNamespace derives stable IDs for seed stores that do not carry one.
var storeNamespace = uuid.MustParse("6f1c1f9e-3a53-4d8e-9a8e-2f0d4c6b7a10")

type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCatalogService creates the administrative catalog loader.
func NewCatalogService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		txManager: txManager,
		logger:    logger,
	}
}

// ReplaceCatalog validates the whole seed before touching the database, then
// swaps the catalog in one transaction.
func (s *catalogService) ReplaceCatalog(ctx context.Context, seed *usecase.CatalogSeed) (int, error) {
	stores, err := storesFromSeed(seed, time.Now())
	if err != nil {
		return 0, err
	}

	var previous int64
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		catalogRepo := factory.NewCatalogRepository()

		count, err := catalogRepo.CountStores(ctx)
		if err != nil {
			return err
		}
		previous = count

		return catalogRepo.ReplaceCatalog(ctx, stores)
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to replace catalog")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Catalog replaced",
		slog.Int64("previous_stores", previous),
		slog.Int("stores", len(stores)),
	)

	return len(stores), nil
}

func storesFromSeed(seed *usecase.CatalogSeed, now time.Time) ([]*entity.Store, error) {
	if seed == nil || len(seed.Stores) == 0 {
		return nil, domainerrors.ErrCatalogInvalid.WithDetails("catalog has no stores")
	}

	stores := make([]*entity.Store, 0, len(seed.Stores))
	seen := make(map[uuid.UUID]struct{}, len(seed.Stores))

	for i, raw := range seed.Stores {
		store, err := storeFromSeed(raw, now)
		if err != nil {
			return nil, domainerrors.ErrCatalogInvalid.WithDetails(fmt.Sprintf("store #%d: %s", i, err))
		}
		if _, dup := seen[store.ID]; dup {
			return nil, domainerrors.ErrCatalogInvalid.WithDetails(fmt.Sprintf("store #%d: duplicate id %s", i, store.ID))
		}
		seen[store.ID] = struct{}{}
		stores = append(stores, store)
	}

	return stores, nil
}

func storeFromSeed(raw usecase.SeedStore, now time.Time) (*entity.Store, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if err := geo.ValidateCoordinate(raw.Latitude, raw.Longitude); err != nil {
		return nil, errors.Errorf("%s has invalid coordinates", name)
	}

	id := uuid.NewSHA1(storeNamespace, fmt.Appendf(nil, "%s|%.6f|%.6f", name, raw.Latitude, raw.Longitude))
	if raw.ID != "" {
		parsed, err := uuid.Parse(raw.ID)
		if err != nil {
			return nil, errors.Errorf("%s has invalid id %q", name, raw.ID)
		}
		id = parsed
	}

	inventory := make([]entity.InventoryItem, 0, len(raw.Inventory))
	for _, item := range slices.Sorted(maps.Keys(raw.Inventory)) {
		price := raw.Inventory[item]
		if strings.TrimSpace(item) == "" {
			return nil, errors.Errorf("%s has an unnamed item", name)
		}
		if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
			return nil, errors.Errorf("%s: %s has invalid price", name, item)
		}
		inventory = append(inventory, entity.InventoryItem{Name: item, Price: price})
	}

	return &entity.Store{
		ID:        id,
		Name:      name,
		Category:  strings.TrimSpace(raw.Category),
		Latitude:  raw.Latitude,
		Longitude: raw.Longitude,
		Address:   strings.TrimSpace(raw.Address),
		Inventory: inventory,
		UpdatedAt: now,
	}, nil
}
