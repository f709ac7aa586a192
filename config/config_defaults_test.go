package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, float64(defaultExploreRadiusMeters), cfg.Proximity.ExploreRadiusMeters)
	assert.Equal(t, 10*time.Second, cfg.Proximity.QueryTimeout)
	assert.Equal(t, float64(200), cfg.Tracking.SearchRadiusMeters)
	assert.Equal(t, 30*time.Second, cfg.Tracking.MinInterval)
	assert.Equal(t, float64(10), cfg.Tracking.MinMovementMeters)
	assert.Equal(t, float64(50), cfg.Profile.DefaultNotificationRadiusMeters)
	assert.Equal(t, 8, cfg.Profile.DefaultActiveStartHour)
	assert.Equal(t, 22, cfg.Profile.DefaultActiveEndHour)
	assert.Equal(t, defaultTimeZone, cfg.Profile.DefaultTimeZone)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, defaultRateLimitBurst, cfg.RateLimit.Burst)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Proximity: &ProximityConfig{ExploreRadiusMeters: 2500, QueryTimeout: 3 * time.Second},
		Tracking:  &TrackingConfig{SearchRadiusMeters: 400},
		Profile:   &ProfileConfig{DefaultActiveStartHour: 22, DefaultActiveEndHour: 6, DefaultTimeZone: "UTC"},
	}

	applyDefaults(cfg)

	assert.Equal(t, float64(2500), cfg.Proximity.ExploreRadiusMeters)
	assert.Equal(t, 3*time.Second, cfg.Proximity.QueryTimeout)
	assert.Equal(t, float64(400), cfg.Tracking.SearchRadiusMeters)
	assert.Equal(t, 22, cfg.Profile.DefaultActiveStartHour)
	assert.Equal(t, 6, cfg.Profile.DefaultActiveEndHour)
	assert.Equal(t, "UTC", cfg.Profile.DefaultTimeZone)
}
