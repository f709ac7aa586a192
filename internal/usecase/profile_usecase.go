package usecase

import (
	"context"

	"nexttoyou/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase manages the user's proximity settings.
type ProfileUsecase interface {
	// GetProfile returns ErrUnknownUser when the user has no profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.ProximityProfile, error)

	// UpdateProfile applies input over the current profile, or over the
	// configured defaults when none exists, and persists it.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.ProximityProfile, error)
}

// --- Input DTOs ---

// UpdateProfileInput holds the settings to change; nil fields are left as they are.
type UpdateProfileInput struct {
	NotificationRadiusMeters *float64 `json:"notification_radius_meters,omitempty"`
	ActiveStartHour          *int     `json:"active_start_hour,omitempty"`
	ActiveEndHour            *int     `json:"active_end_hour,omitempty"`
	TimeZone                 *string  `json:"time_zone,omitempty"`
}
