package postgres

import (
	"context"
	"database/sql"

	"nexttoyou/internal/domain/entity"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/domain/repository"
	"nexttoyou/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const storeInsertBatchSize = 200

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// snapshotTxOptions gives every catalog read one consistent view even while a
// replace is committing.
var snapshotTxOptions = &sql.TxOptions{
	Isolation: sql.LevelRepeatableRead,
	ReadOnly:  true,
}

// FindStoresWithinBound retrieves the stores inside bound together with their inventory.
func (repo *catalogRepository) FindStoresWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Transaction(func(tx *gorm.DB) error {
			query := tx.
				Preload("Items", func(db *gorm.DB) *gorm.DB {
					return db.Order("position ASC")
				}).
				Where("latitude BETWEEN ? AND ?", max(bound.Min.Lat(), -90), min(bound.Max.Lat(), 90))

			return withinLongitude(query, bound).
				Order("id").
				Find(&storeModels).Error
		}, snapshotTxOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stores within bound")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// CountStores returns the number of stores in the catalog.
func (repo *catalogRepository) CountStores(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.StoreModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

// ReplaceCatalog deletes every store and item and inserts stores. It must run
// inside a transaction.
func (repo *catalogRepository) ReplaceCatalog(ctx context.Context, stores []*entity.Store) error {
	db := repo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})

	if err := db.Delete(&model.StoreItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear store items")
	}
	if err := db.Delete(&model.StoreModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear stores")
	}
	if len(stores) == 0 {
		return nil
	}

	storeModels := make([]*model.StoreModel, 0, len(stores))
	for _, store := range stores {
		storeModels = append(storeModels, fromStoreDomain(store))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(storeModels, storeInsertBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCatalogInvalid.WrapMessage("duplicate store or item")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrCatalogInvalid.WrapMessage("negative price")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert stores")
	}

	return nil
}

// withinLongitude restricts query to the bound's longitude span, splitting it
// when the bound crosses the antimeridian. Crossing bounds arrive either
// wrapped (Min.Lon > Max.Lon, as orb/geo builds them) or unwrapped past ±180.
func withinLongitude(query *gorm.DB, bound orb.Bound) *gorm.DB {
	minLon, maxLon := bound.Min.Lon(), bound.Max.Lon()

	switch {
	case maxLon-minLon >= 360:
		return query
	case minLon > maxLon:
		return query.Where("(longitude >= ? OR longitude <= ?)", minLon, maxLon)
	case minLon < -180:
		return query.Where("(longitude >= ? OR longitude <= ?)", minLon+360, maxLon)
	case maxLon > 180:
		return query.Where("(longitude >= ? OR longitude <= ?)", minLon, maxLon-360)
	default:
		return query.Where("longitude BETWEEN ? AND ?", minLon, maxLon)
	}
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	inventory := make([]entity.InventoryItem, 0, len(data.Items))
	for _, item := range data.Items {
		inventory = append(inventory, entity.InventoryItem{Name: item.Name, Price: item.Price})
	}

	return &entity.Store{
		ID:        data.ID,
		Name:      data.Name,
		Category:  data.Category,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Address:   data.Address,
		Inventory: inventory,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	items := make([]model.StoreItemModel, 0, len(data.Inventory))
	for i, item := range data.Inventory {
		items = append(items, model.StoreItemModel{
			StoreID:  data.ID,
			Name:     item.Name,
			Price:    item.Price,
			Position: i,
		})
	}

	return &model.StoreModel{
		ID:        data.ID,
		Name:      data.Name,
		Category:  data.Category,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Address:   data.Address,
		Items:     items,
		UpdatedAt: data.UpdatedAt,
	}
}
