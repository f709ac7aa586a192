package postgres

import (
	"testing"
	"time"

	"nexttoyou/internal/domain/entity"
	"nexttoyou/internal/domain/geo"
	"nexttoyou/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=nexttoyou dbname=nexttoyou sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestWithinLongitude(t *testing.T) {
	tests := []struct {
		name     string
		bound    orb.Bound
		wantSQL  string
		wantVars []any
	}{
		{
			name:     "regular span",
			bound:    orb.Bound{Min: orb.Point{34.7, 32.0}, Max: orb.Point{34.8, 32.1}},
			wantSQL:  "longitude BETWEEN $1 AND $2",
			wantVars: []any{34.7, 34.8},
		},
		{
			name:     "crosses antimeridian westward",
			bound:    orb.Bound{Min: orb.Point{-180.5, 0}, Max: orb.Point{-179.5, 1}},
			wantSQL:  "(longitude >= $1 OR longitude <= $2)",
			wantVars: []any{179.5, -179.5},
		},
		{
			name:     "wrapped bound",
			bound:    orb.Bound{Min: orb.Point{179.5, 0}, Max: orb.Point{-179.5, 1}},
			wantSQL:  "(longitude >= $1 OR longitude <= $2)",
			wantVars: []any{179.5, -179.5},
		},
		{
			name:     "crosses antimeridian eastward",
			bound:    orb.Bound{Min: orb.Point{179.5, 0}, Max: orb.Point{180.5, 1}},
			wantSQL:  "(longitude >= $1 OR longitude <= $2)",
			wantVars: []any{179.5, -179.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDryRunDB(t)

			var stores []*model.StoreModel
			stmt := withinLongitude(db.Model(&model.StoreModel{}), tt.bound).Find(&stores).Statement

			assert.Contains(t, stmt.SQL.String(), tt.wantSQL)
			assert.Equal(t, tt.wantVars, stmt.Vars)
		})
	}
}

func TestWithinLongitude_BoundAroundAntimeridian(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
	}{
		{name: "east of the antimeridian", lon: 179.9999},
		{name: "west of the antimeridian", lon: -179.9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDryRunDB(t)

			bound := geo.BoundAround(0, tt.lon, 200)
			var stores []*model.StoreModel
			stmt := withinLongitude(db.Model(&model.StoreModel{}), bound).Find(&stores).Statement

			assert.Contains(t, stmt.SQL.String(), "(longitude >= $1 OR longitude <= $2)")
			require.Len(t, stmt.Vars, 2)

			lower, ok := stmt.Vars[0].(float64)
			require.True(t, ok)
			upper, ok := stmt.Vars[1].(float64)
			require.True(t, ok)
			// A store at the user's own longitude must satisfy the predicate.
			assert.True(t, tt.lon >= lower || tt.lon <= upper)
		})
	}
}

func TestWithinLongitude_WholeWorld(t *testing.T) {
	db := newDryRunDB(t)

	var stores []*model.StoreModel
	bound := orb.Bound{Min: orb.Point{-200, 80}, Max: orb.Point{200, 90}}
	stmt := withinLongitude(db.Model(&model.StoreModel{}), bound).Find(&stores).Statement

	assert.NotContains(t, stmt.SQL.String(), "longitude")
}

func TestStoreMappers(t *testing.T) {
	store := &entity.Store{
		ID:        uuid.New(),
		Name:      "Shufersal Deal",
		Category:  "supermarket",
		Latitude:  32.0853,
		Longitude: 34.7818,
		Address:   "Dizengoff 50",
		Inventory: []entity.InventoryItem{
			{Name: "bread", Price: 6.9},
			{Name: "milk", Price: 5.5},
		},
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	storeM := fromStoreDomain(store)

	require.Len(t, storeM.Items, 2)
	assert.Equal(t, store.ID, storeM.Items[1].StoreID)
	assert.Equal(t, 1, storeM.Items[1].Position)
	assert.Equal(t, store, toStoreDomain(storeM))
	assert.Nil(t, toStoreDomain(nil))
	assert.Nil(t, fromStoreDomain(nil))
}
