package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"nexttoyou/config"
	"nexttoyou/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testClock is a settable clock safe for concurrent use.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
}

func newTestConfig() *config.Config {
	return &config.Config{
		Proximity: &config.ProximityConfig{
			ExploreRadiusMeters:   10000,
			MaxSearchRadiusMeters: 50000,
			QueryTimeout:          time.Second,
		},
		Tracking: &config.TrackingConfig{
			SearchRadiusMeters: 200,
			MinInterval:        30 * time.Second,
			MinMovementMeters:  10,
			PublishTimeout:     time.Second,
		},
		Profile: &config.ProfileConfig{
			DefaultNotificationRadiusMeters: 50,
			MaxNotificationRadiusMeters:     5000,
			DefaultActiveStartHour:          8,
			DefaultActiveEndHour:            22,
			DefaultTimeZone:                 "UTC",
		},
	}
}

// Stores around Dizengoff, Tel Aviv.
var (
	storeSuperYuda = &entity.Store{
		ID:        uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Name:      "Super Yuda",
		Category:  "Supermarket",
		Latitude:  32.0850,
		Longitude: 34.7810,
		Inventory: []entity.InventoryItem{
			{Name: "milk", Price: 6.90},
			{Name: "bread", Price: 8.50},
			{Name: "eggs", Price: 14.90},
			{Name: "cheese", Price: 22.00},
		},
	}
	storeShufersal = &entity.Store{
		ID:        uuid.MustParse("00000000-0000-0000-0000-000000000002"),
		Name:      "Shufersal Deal",
		Category:  "Supermarket",
		Latitude:  32.0830,
		Longitude: 34.7800,
		Inventory: []entity.InventoryItem{
			{Name: "milk", Price: 5.90},
			{Name: "bread", Price: 7.90},
			{Name: "chocolate milk", Price: 4.50},
		},
	}
	storeSuperPharm = &entity.Store{
		ID:        uuid.MustParse("00000000-0000-0000-0000-000000000003"),
		Name:      "Super-Pharm",
		Category:  "Pharmacy",
		Latitude:  32.0860,
		Longitude: 34.7820,
		Inventory: []entity.InventoryItem{
			{Name: "shampoo", Price: 19.90},
			{Name: "toothpaste", Price: 12.90},
		},
	}
)

func strPtr(s string) *string {
	return &s
}

var nowForTest = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
