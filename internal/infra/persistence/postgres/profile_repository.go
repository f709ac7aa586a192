package postgres

import (
	"context"

	"nexttoyou/internal/domain/entity"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/domain/repository"
	"nexttoyou/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindProfileByUserID retrieves the proximity profile of a user.
// It reads from the primary so a settings change applies to the next position report.
func (repo *profileRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProximityProfile, error) {
	var profileM model.ProximityProfileModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find proximity profile")
	}

	return toProfileDomain(&profileM), nil
}

// UpsertProfile creates the profile or overwrites its settings.
func (repo *profileRepository) UpsertProfile(ctx context.Context, profile *entity.ProximityProfile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"notification_radius_meters",
				"active_start_hour",
				"active_end_hour",
				"time_zone",
				"updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("profile violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert proximity profile")
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProximityProfileModel) *entity.ProximityProfile {
	if data == nil {
		return nil
	}

	return &entity.ProximityProfile{
		UserID:                   data.UserID,
		NotificationRadiusMeters: data.NotificationRadiusMeters,
		ActiveStartHour:          data.ActiveStartHour,
		ActiveEndHour:            data.ActiveEndHour,
		TimeZone:                 data.TimeZone,
		UpdatedAt:                data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.ProximityProfile) *model.ProximityProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProximityProfileModel{
		UserID:                   data.UserID,
		NotificationRadiusMeters: data.NotificationRadiusMeters,
		ActiveStartHour:          data.ActiveStartHour,
		ActiveEndHour:            data.ActiveEndHour,
		TimeZone:                 data.TimeZone,
		UpdatedAt:                data.UpdatedAt,
	}
}
