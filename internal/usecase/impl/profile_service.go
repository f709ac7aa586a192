package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"nexttoyou/config"
	deliverycontext "nexttoyou/internal/delivery/context"
	"nexttoyou/internal/domain/entity"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/domain/repository"
	"nexttoyou/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	defaults    config.ProfileConfig
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		defaults:    *cfg.Profile,
		logger:      logger,
	}
}

// GetProfile retrieves the user's proximity settings.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.ProximityProfile, error) {
	profile, err := srv.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrUnknownUser
		}

		return nil, errors.Wrap(err, "failed to find proximity profile")
	}

	return profile, nil
}

// UpdateProfile applies input over the stored profile, creating it from the
// configured defaults on first use.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.ProximityProfile, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	profile, err := srv.profileRepo.FindProfileByUserID(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		profile = srv.defaultProfile(userID)
	case err != nil:
		return nil, errors.Wrap(err, "failed to find proximity profile")
	}

	if input != nil {
		applyProfileUpdates(profile, input)
	}
	if err := srv.validate(profile); err != nil {
		return nil, err
	}
	profile.UpdatedAt = time.Now()

	if err := srv.profileRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to upsert proximity profile")
	}

	logger.Info("Proximity profile updated",
		slog.String("user_id", userID.String()),
		slog.Float64("notification_radius_meters", profile.NotificationRadiusMeters),
		slog.Int("active_start_hour", profile.ActiveStartHour),
		slog.Int("active_end_hour", profile.ActiveEndHour),
	)

	return profile, nil
}

func (srv *profileService) defaultProfile(userID uuid.UUID) *entity.ProximityProfile {
	return &entity.ProximityProfile{
		UserID:                   userID,
		NotificationRadiusMeters: srv.defaults.DefaultNotificationRadiusMeters,
		ActiveStartHour:          srv.defaults.DefaultActiveStartHour,
		ActiveEndHour:            srv.defaults.DefaultActiveEndHour,
		TimeZone:                 srv.defaults.DefaultTimeZone,
	}
}

func (srv *profileService) validate(profile *entity.ProximityProfile) error {
	radius := profile.NotificationRadiusMeters
	if math.IsNaN(radius) || radius <= 0 || radius > srv.defaults.MaxNotificationRadiusMeters {
		return domainerrors.ErrInvalidRadius.WithDetails("notification radius must be within (0, max]")
	}
	if !validHour(profile.ActiveStartHour) || !validHour(profile.ActiveEndHour) {
		return domainerrors.ErrValidationFailed.WithDetails("active hours must be within 0..23")
	}
	if _, err := time.LoadLocation(profile.TimeZone); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("unknown time zone " + profile.TimeZone)
	}

	return nil
}

// applyProfileUpdates applies the non-nil fields of input
func applyProfileUpdates(profile *entity.ProximityProfile, input *usecase.UpdateProfileInput) {
	if input.NotificationRadiusMeters != nil {
		profile.NotificationRadiusMeters = *input.NotificationRadiusMeters
	}
	if input.ActiveStartHour != nil {
		profile.ActiveStartHour = *input.ActiveStartHour
	}
	if input.ActiveEndHour != nil {
		profile.ActiveEndHour = *input.ActiveEndHour
	}
	if input.TimeZone != nil {
		profile.TimeZone = *input.TimeZone
	}
}

func validHour(h int) bool {
	return h >= 0 && h <= 23
}
