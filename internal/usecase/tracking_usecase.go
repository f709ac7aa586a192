package usecase

import (
	"context"
	"time"

	"nexttoyou/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingState is the gating state of one user.
type TrackingState string

const (
	// StateSleeping means the local hour is outside the active window.
	StateSleeping TrackingState = "SLEEPING"
	// StateWatching means checks run and may emit alerts.
	StateWatching TrackingState = "WATCHING"
	// StateStopped means tracking was halted and no position is known.
	StateStopped TrackingState = "STOPPED"
)

// Reasons a position report did not run a proximity check.
const (
	SkipReasonThrottled   = "throttled"
	SkipReasonSleeping    = "sleeping"
	SkipReasonUnavailable = "catalog_unavailable"
	SkipReasonNotTracking = "not_tracking"
)

// Position is one fix from the device location provider.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"` // Zero means "now"
}

// Alert is one notification emitted by a check.
type Alert struct {
	NotificationID uuid.UUID `json:"notification_id"`
	StoreID        uuid.UUID `json:"store_id"`
	StoreName      string    `json:"store"`
	ItemName       string    `json:"item"`
	Price          float64   `json:"price"`
	DistanceMeters int       `json:"distance"`
	Latitude       float64   `json:"lat"`
	Longitude      float64   `json:"lon"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
}

// TrackingResult reports what a check did.
type TrackingResult struct {
	State      TrackingState           `json:"state"`
	Checked    bool                    `json:"checked"`
	SkipReason string                  `json:"skip_reason,omitempty"`
	Matches    []entity.ProximityMatch `json:"matches,omitempty"`
	Alerts     []Alert                 `json:"alerts"`
}

// TrackingUsecase drives the notification-gating policy from position reports.
// Updates for one user are serialized; different users proceed in parallel.
type TrackingUsecase interface {
	// ReportPosition records a fix and runs a check unless throttled or sleeping.
	ReportPosition(ctx context.Context, userID uuid.UUID, pos Position) (*TrackingResult, error)

	// InstantCheck re-runs the check at the last known position, bypassing the
	// throttle. It is called after the user's task list changes.
	InstantCheck(ctx context.Context, userID uuid.UUID) (*TrackingResult, error)

	// StopTracking forgets the last position but keeps notification memory.
	StopTracking(ctx context.Context, userID uuid.UUID) error

	// Logout stops tracking and clears notification memory.
	Logout(ctx context.Context, userID uuid.UUID) error
}
