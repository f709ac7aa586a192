package impl

import (
	"context"
	"testing"

	"nexttoyou/internal/domain/entity"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/domain/repository"
	mockRepo "nexttoyou/internal/mocks/repository"
	"nexttoyou/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)

	return profileServiceFixtures{
		service:     NewProfileService(profileRepo, newTestConfig(), newDiscardLogger()),
		profileRepo: profileRepo,
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	want := &entity.ProximityProfile{UserID: userID, NotificationRadiusMeters: 80}

	fx.profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(want, nil)

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileService_GetProfile_UnknownUser(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUnknownUser)
}

func TestProfileService_GetProfile_RepoError(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(nil, errors.New("db down"))

	_, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUnknownUser)
}

func TestProfileService_UpdateProfile_CreatesFromDefaults(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().UpsertProfile(ctx, mock.AnythingOfType("*entity.ProximityProfile")).Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		NotificationRadiusMeters: floatPtr(120),
	})

	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, 120.0, profile.NotificationRadiusMeters)
	assert.Equal(t, 8, profile.ActiveStartHour)
	assert.Equal(t, 22, profile.ActiveEndHour)
	assert.Equal(t, "UTC", profile.TimeZone)
	assert.False(t, profile.UpdatedAt.IsZero())
}

func TestProfileService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.ProximityProfile{
		UserID:                   userID,
		NotificationRadiusMeters: 50,
		ActiveStartHour:          8,
		ActiveEndHour:            22,
		TimeZone:                 "Asia/Jerusalem",
	}

	fx.profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(existing, nil)
	fx.profileRepo.EXPECT().
		UpsertProfile(ctx, mock.MatchedBy(func(p *entity.ProximityProfile) bool {
			return p.ActiveStartHour == 22 && p.ActiveEndHour == 6 && p.NotificationRadiusMeters == 50
		})).
		Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		ActiveStartHour: intPtr(22),
		ActiveEndHour:   intPtr(6),
	})

	require.NoError(t, err)
	assert.Equal(t, "Asia/Jerusalem", profile.TimeZone)
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.UpdateProfileInput
		wantErr error
	}{
		{name: "zero radius", input: &usecase.UpdateProfileInput{NotificationRadiusMeters: floatPtr(0)}, wantErr: domainerrors.ErrInvalidRadius},
		{name: "radius above maximum", input: &usecase.UpdateProfileInput{NotificationRadiusMeters: floatPtr(5001)}, wantErr: domainerrors.ErrInvalidRadius},
		{name: "hour 24", input: &usecase.UpdateProfileInput{ActiveEndHour: intPtr(24)}, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative hour", input: &usecase.UpdateProfileInput{ActiveStartHour: intPtr(-1)}, wantErr: domainerrors.ErrValidationFailed},
		{name: "unknown zone", input: &usecase.UpdateProfileInput{TimeZone: strPtr("Mars/Olympus")}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			ctx := context.Background()
			userID := uuid.New()

			fx.profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

			_, err := fx.service.UpdateProfile(ctx, userID, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileService_UpdateProfile_UpsertError(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().UpsertProfile(ctx, mock.Anything).Return(errors.New("constraint violation"))

	_, err := fx.service.UpdateProfile(ctx, userID, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert proximity profile")
}
