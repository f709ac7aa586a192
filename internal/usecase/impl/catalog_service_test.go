package impl

import (
	"context"
	"math"
	"testing"

	"nexttoyou/internal/domain/entity"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/domain/repository"
	mockRepo "nexttoyou/internal/mocks/repository"
	"nexttoyou/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return catalogServiceFixtures{
		service:   NewCatalogService(txManager, newDiscardLogger()),
		txManager: txManager,
	}
}

func testSeed() *usecase.CatalogSeed {
	return &usecase.CatalogSeed{Stores: []usecase.SeedStore{
		{
			ID:        "00000000-0000-0000-0000-000000000001",
			Name:      "Super Yuda",
			Category:  "Supermarket",
			Latitude:  32.0850,
			Longitude: 34.7810,
			Inventory: map[string]float64{"milk": 6.90, "bread": 8.50},
		},
		{
			Name:      " Shufersal Deal ",
			Latitude:  32.0830,
			Longitude: 34.7800,
			Inventory: map[string]float64{"chocolate milk": 4.50},
		},
	}}
}

func TestCatalogService_ReplaceCatalog(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	var written []*entity.Store

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			catalogRepo := mockRepo.NewMockCatalogRepository(t)
			catalogRepo.EXPECT().CountStores(ctx).Return(7, nil)
			catalogRepo.EXPECT().
				ReplaceCatalog(ctx, mock.AnythingOfType("[]*entity.Store")).
				Run(func(_ context.Context, stores []*entity.Store) { written = stores }).
				Return(nil)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().NewCatalogRepository().Return(catalogRepo)

			return fn(mockFactory)
		})

	count, err := fx.service.ReplaceCatalog(ctx, testSeed())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, written, 2)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", written[0].ID.String())
	assert.Equal(t, []entity.InventoryItem{{Name: "bread", Price: 8.50}, {Name: "milk", Price: 6.90}}, written[0].Inventory)
	assert.Equal(t, "Shufersal Deal", written[1].Name)
	assert.NotEqual(t, written[0].ID, written[1].ID)
}

func TestCatalogService_ReplaceCatalog_DerivedIDsAreStable(t *testing.T) {
	first, err := storesFromSeed(testSeed(), nowForTest)
	require.NoError(t, err)
	second, err := storesFromSeed(testSeed(), nowForTest)
	require.NoError(t, err)

	assert.Equal(t, first[1].ID, second[1].ID)
}

func TestCatalogService_ReplaceCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(seed *usecase.CatalogSeed)
	}{
		{name: "no stores", mutate: func(seed *usecase.CatalogSeed) { seed.Stores = nil }},
		{name: "blank name", mutate: func(seed *usecase.CatalogSeed) { seed.Stores[0].Name = "  " }},
		{name: "latitude out of range", mutate: func(seed *usecase.CatalogSeed) { seed.Stores[0].Latitude = 91 }},
		{name: "negative price", mutate: func(seed *usecase.CatalogSeed) { seed.Stores[1].Inventory["chocolate milk"] = -1 }},
		{name: "NaN price", mutate: func(seed *usecase.CatalogSeed) { seed.Stores[1].Inventory["chocolate milk"] = math.NaN() }},
		{name: "bad id", mutate: func(seed *usecase.CatalogSeed) { seed.Stores[0].ID = "store-1" }},
		{name: "duplicate id", mutate: func(seed *usecase.CatalogSeed) { seed.Stores[1].ID = seed.Stores[0].ID }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			seed := testSeed()
			tt.mutate(seed)

			count, err := fx.service.ReplaceCatalog(context.Background(), seed)

			assert.Zero(t, count)
			assert.ErrorIs(t, err, domainerrors.ErrCatalogInvalid)
		})
	}
}

func TestCatalogService_ReplaceCatalog_TransactionError(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(errors.New("serialization failure"))

	count, err := fx.service.ReplaceCatalog(ctx, testSeed())

	assert.Zero(t, count)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to replace catalog")
}
