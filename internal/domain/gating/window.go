package gating

import (
	"time"

	"nexttoyou/internal/domain/entity"
)

// Watching reports whether the profile's active window covers the local hour at t.
// Outside the window no search runs and nothing is emitted.
func Watching(profile *entity.ProximityProfile, at time.Time, fallback *time.Location) bool {
	return profile.IsActiveHour(profile.LocalHour(at, fallback))
}
