package entity

import (
	"time"
	// Profiles name IANA zones; embed the database for minimal container images.
	_ "time/tzdata"

	"github.com/google/uuid"
)

// ProximityProfile holds a user's alerting preferences.
type ProximityProfile struct {
	UserID                   uuid.UUID `json:"user_id"`
	NotificationRadiusMeters float64   `json:"notification_radius_meters"`
	ActiveStartHour          int       `json:"active_start_hour"` // 0-23, inclusive
	ActiveEndHour            int       `json:"active_end_hour"`   // 0-23, exclusive
	TimeZone                 string    `json:"time_zone"`         // IANA name
	UpdatedAt                time.Time `json:"updated_at"`
}

// IsActiveHour reports whether hour falls inside [ActiveStartHour, ActiveEndHour).
//
// A window whose start is after its end wraps through midnight, so 22..6 is
// active from 22:00 to 05:59. Equal start and end means active all day.
func (p *ProximityProfile) IsActiveHour(hour int) bool {
	start, end := p.ActiveStartHour, p.ActiveEndHour

	switch {
	case start == end:
		return true
	case start < end:
		return hour >= start && hour < end
	default:
		return hour >= start || hour < end
	}
}

// LocalHour returns the hour of t in the profile's time zone, falling back to
// fallback when the profile zone is empty or unknown.
func (p *ProximityProfile) LocalHour(t time.Time, fallback *time.Location) int {
	loc := fallback
	if p.TimeZone != "" {
		if l, err := time.LoadLocation(p.TimeZone); err == nil {
			loc = l
		}
	}
	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc).Hour()
}
