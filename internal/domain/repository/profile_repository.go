package repository

import (
	"context"

	"nexttoyou/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a user has no proximity profile.
var ErrProfileNotFound = errors.New("proximity profile not found")

// ProfileRepository persists user proximity profiles.
type ProfileRepository interface {
	// FindProfileByUserID returns ErrProfileNotFound when the user has none.
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProximityProfile, error)

	// UpsertProfile creates or replaces the user's profile.
	UpsertProfile(ctx context.Context, profile *entity.ProximityProfile) error
}
