package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"nexttoyou/internal/domain/entity"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/domain/repository"
	"nexttoyou/internal/domain/service"
	mockRepo "nexttoyou/internal/mocks/repository"
	mockService "nexttoyou/internal/mocks/service"
	mockUsecase "nexttoyou/internal/mocks/usecase"
	"nexttoyou/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// trackingServiceFixtures holds all test dependencies for tracking service tests.
type trackingServiceFixtures struct {
	service     *trackingService
	proximity   *mockUsecase.MockProximityUsecase
	profileRepo *mockRepo.MockProfileRepository
	publisher   *mockService.MockEventPublisher
	userID      uuid.UUID
	profile     *entity.ProximityProfile
	start       time.Time
	clock       *testClock
}

func createTestTrackingService(t *testing.T) trackingServiceFixtures {
	proximity := mockUsecase.NewMockProximityUsecase(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	start := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	clock := newTestClock(start)

	svc := newTrackingService(proximity, profileRepo, publisher, newTestConfig(), newDiscardLogger(), clock.Now)

	userID := uuid.New()

	return trackingServiceFixtures{
		service:     svc,
		proximity:   proximity,
		profileRepo: profileRepo,
		publisher:   publisher,
		userID:      userID,
		profile: &entity.ProximityProfile{
			UserID:                   userID,
			NotificationRadiusMeters: 50,
			ActiveStartHour:          8,
			ActiveEndHour:            22,
			TimeZone:                 "UTC",
		},
		start: start,
		clock: clock,
	}
}

func (fx trackingServiceFixtures) expectProfile() {
	fx.profileRepo.EXPECT().
		FindProfileByUserID(mock.Anything, fx.userID).
		Return(fx.profile, nil)
}

// at returns a fix near Dizengoff, offset seconds after the fixture start,
// and moves the service clock to the same instant.
func (fx trackingServiceFixtures) at(seconds int) usecase.Position {
	return fx.atTime(fx.start.Add(time.Duration(seconds) * time.Second))
}

func (fx trackingServiceFixtures) atTime(ts time.Time) usecase.Position {
	fx.clock.Set(ts)

	return usecase.Position{
		Latitude:  32.0800,
		Longitude: 34.7804,
		Timestamp: ts,
	}
}

func milkMatch(distance int) entity.ProximityMatch {
	return entity.ProximityMatch{
		StoreID:        storeSuperYuda.ID,
		StoreName:      storeSuperYuda.Name,
		Latitude:       storeSuperYuda.Latitude,
		Longitude:      storeSuperYuda.Longitude,
		DistanceMeters: distance,
		MatchedItems:   []entity.MatchedItem{{Name: "milk", Price: 6.90}},
	}
}

func TestTrackingService_ReportPosition_EmitsOncePerEpisode(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	inRange := []entity.ProximityMatch{milkMatch(38)}

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).Return(inRange, nil).Times(2)
	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).Return([]entity.ProximityMatch{}, nil).Once()
	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).Return(inRange, nil).Once()

	var published []*service.ProximityEvent
	fx.publisher.EXPECT().
		PublishProximityEvent(mock.Anything, mock.AnythingOfType("*service.ProximityEvent")).
		Run(func(_ context.Context, event *service.ProximityEvent) {
			published = append(published, event)
		}).
		Return(nil).
		Times(2)

	first, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)
	assert.Equal(t, usecase.StateWatching, first.State)
	assert.True(t, first.Checked)
	require.Len(t, first.Alerts, 1)
	assert.Equal(t, "milk", first.Alerts[0].ItemName)
	assert.Equal(t, 38, first.Alerts[0].DistanceMeters)
	assert.Equal(t, "🎯 Deal Found!", first.Alerts[0].Title)
	assert.Equal(t, "Go to: Super Yuda\nFound: milk for 6.9₪", first.Alerts[0].Body)

	second, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(31))
	require.NoError(t, err)
	assert.True(t, second.Checked)
	assert.Empty(t, second.Alerts)

	left, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(62))
	require.NoError(t, err)
	assert.True(t, left.Checked)
	assert.Empty(t, left.Alerts)

	back, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(93))
	require.NoError(t, err)
	require.Len(t, back.Alerts, 1)

	require.Len(t, published, 2)
	assert.Equal(t, fx.userID.String(), published[0].UserID)
	assert.Equal(t, storeSuperYuda.ID.String(), published[0].StoreID)
	assert.Equal(t, first.Alerts[0].NotificationID.String(), published[0].NotificationID)
	assert.NotEqual(t, published[0].NotificationID, published[1].NotificationID)
}

func TestTrackingService_ReportPosition_NotificationRadiusGate(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	withRadius := mock.MatchedBy(func(q usecase.SearchQuery) bool {
		return q.RadiusMeters == 200 && q.ItemQuery == nil
	})
	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, withRadius).
		Return([]entity.ProximityMatch{milkMatch(120)}, nil).Once()
	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, withRadius).
		Return([]entity.ProximityMatch{milkMatch(50)}, nil).Once()
	fx.publisher.EXPECT().PublishProximityEvent(mock.Anything, mock.Anything).Return(nil).Once()

	far, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)
	assert.True(t, far.Checked)
	assert.Len(t, far.Matches, 1)
	assert.Empty(t, far.Alerts)

	// Approaching the same store alerts once it is within the notification radius.
	near, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(31))
	require.NoError(t, err)
	require.Len(t, near.Alerts, 1)
	assert.Equal(t, 50, near.Alerts[0].DistanceMeters)
}

func TestTrackingService_ReportPosition_SearchRadiusNeverBelowNotificationRadius(t *testing.T) {
	fx := createTestTrackingService(t)
	fx.profile.NotificationRadiusMeters = 800
	fx.expectProfile()

	fx.proximity.EXPECT().
		SearchNearby(mock.Anything, fx.userID, mock.MatchedBy(func(q usecase.SearchQuery) bool {
			return q.RadiusMeters == 800
		})).
		Return([]entity.ProximityMatch{}, nil)

	result, err := fx.service.ReportPosition(context.Background(), fx.userID, fx.at(0))
	require.NoError(t, err)
	assert.True(t, result.Checked)
}

func TestTrackingService_ReportPosition_Sleeping(t *testing.T) {
	fx := createTestTrackingService(t)
	fx.expectProfile()

	pos := fx.at(0)
	pos.Timestamp = time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC)

	result, err := fx.service.ReportPosition(context.Background(), fx.userID, pos)

	require.NoError(t, err)
	assert.Equal(t, usecase.StateSleeping, result.State)
	assert.False(t, result.Checked)
	assert.Equal(t, usecase.SkipReasonSleeping, result.SkipReason)
	assert.Empty(t, result.Alerts)
}

func TestTrackingService_ReportPosition_SleepingKeepsMemory(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{milkMatch(38)}, nil).Times(2)
	fx.publisher.EXPECT().PublishProximityEvent(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)

	night := fx.atTime(time.Date(2026, 10, 18, 22, 30, 0, 0, time.UTC))
	sleeping, err := fx.service.ReportPosition(ctx, fx.userID, night)
	require.NoError(t, err)
	assert.Equal(t, usecase.StateSleeping, sleeping.State)

	morning := fx.atTime(time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC))
	awake, err := fx.service.ReportPosition(ctx, fx.userID, morning)
	require.NoError(t, err)
	assert.Equal(t, usecase.StateWatching, awake.State)
	assert.Empty(t, awake.Alerts)
}

func TestTrackingService_ReportPosition_Throttled(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{}, nil).Times(2)

	_, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)

	// About one meter away after ten seconds.
	still := fx.at(10)
	still.Latitude += 0.00001
	throttled, err := fx.service.ReportPosition(ctx, fx.userID, still)
	require.NoError(t, err)
	assert.False(t, throttled.Checked)
	assert.Equal(t, usecase.SkipReasonThrottled, throttled.SkipReason)

	// About 111 meters away, still within the interval.
	moved := fx.at(15)
	moved.Latitude += 0.001
	result, err := fx.service.ReportPosition(ctx, fx.userID, moved)
	require.NoError(t, err)
	assert.True(t, result.Checked)
}

func TestTrackingService_ReportPosition_ClientClockAheadDoesNotThrottle(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{}, nil).Times(3)

	// The device clock runs an hour ahead of the server.
	skewed := fx.at(0)
	skewed.Timestamp = skewed.Timestamp.Add(time.Hour)
	first, err := fx.service.ReportPosition(ctx, fx.userID, skewed)
	require.NoError(t, err)
	assert.True(t, first.Checked)

	for _, seconds := range []int{60, 600} {
		result, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(seconds))
		require.NoError(t, err)
		assert.True(t, result.Checked, "report after %ds", seconds)
		assert.Empty(t, result.SkipReason)
	}
}

func TestTrackingService_ReportPosition_ClockGoingBackwardsDoesNotThrottle(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{}, nil).Times(2)

	_, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(600))
	require.NoError(t, err)

	result, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)
	assert.True(t, result.Checked)
}

func TestTrackingService_ReportPosition_CatalogUnavailable(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return(nil, domainerrors.ErrCatalogUnavailable).Once()
	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{milkMatch(38)}, nil).Once()
	fx.publisher.EXPECT().PublishProximityEvent(mock.Anything, mock.Anything).Return(nil).Once()

	skipped, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)
	assert.Equal(t, usecase.StateWatching, skipped.State)
	assert.False(t, skipped.Checked)
	assert.Equal(t, usecase.SkipReasonUnavailable, skipped.SkipReason)

	// A failed cycle does not count as a check, so the next fix is not throttled.
	result, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(5))
	require.NoError(t, err)
	assert.Len(t, result.Alerts, 1)
}

func TestTrackingService_ReportPosition_PublishFailureRetries(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{milkMatch(38)}, nil).Times(2)
	fx.publisher.EXPECT().PublishProximityEvent(mock.Anything, mock.Anything).
		Return(errors.New("broker down")).Once()
	fx.publisher.EXPECT().PublishProximityEvent(mock.Anything, mock.Anything).
		Return(nil).Once()

	failed, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)
	assert.True(t, failed.Checked)
	assert.Empty(t, failed.Alerts)

	retried, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(31))
	require.NoError(t, err)
	assert.Len(t, retried.Alerts, 1)
}

func TestTrackingService_ReportPosition_UnknownUser(t *testing.T) {
	fx := createTestTrackingService(t)

	fx.profileRepo.EXPECT().
		FindProfileByUserID(mock.Anything, fx.userID).
		Return(nil, repository.ErrProfileNotFound)

	result, err := fx.service.ReportPosition(context.Background(), fx.userID, fx.at(0))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownUser)
}

func TestTrackingService_ReportPosition_ProfileStoreDown(t *testing.T) {
	fx := createTestTrackingService(t)

	fx.profileRepo.EXPECT().
		FindProfileByUserID(mock.Anything, fx.userID).
		Return(nil, errors.New("connection reset"))

	result, err := fx.service.ReportPosition(context.Background(), fx.userID, fx.at(0))

	require.NoError(t, err)
	assert.False(t, result.Checked)
	assert.Equal(t, usecase.SkipReasonUnavailable, result.SkipReason)
}

func TestTrackingService_ReportPosition_InvalidCoordinate(t *testing.T) {
	fx := createTestTrackingService(t)

	pos := fx.at(0)
	pos.Latitude = 95

	_, err := fx.service.ReportPosition(context.Background(), fx.userID, pos)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestTrackingService_ReportPosition_ZeroTimestampUsesClock(t *testing.T) {
	fx := createTestTrackingService(t)
	fx.expectProfile()

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{}, nil)

	pos := fx.at(0)
	pos.Timestamp = time.Time{}
	result, err := fx.service.ReportPosition(context.Background(), fx.userID, pos)

	require.NoError(t, err)
	assert.True(t, result.Checked)
}

func TestTrackingService_InstantCheck_NotTracking(t *testing.T) {
	fx := createTestTrackingService(t)

	result, err := fx.service.InstantCheck(context.Background(), fx.userID)

	require.NoError(t, err)
	assert.Equal(t, usecase.StateStopped, result.State)
	assert.Equal(t, usecase.SkipReasonNotTracking, result.SkipReason)
}

func TestTrackingService_InstantCheck_BypassesThrottle(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{}, nil).Once()
	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{milkMatch(38)}, nil).Once()
	fx.publisher.EXPECT().PublishProximityEvent(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)

	// The user just added "milk" to the list while standing still.
	result, err := fx.service.InstantCheck(ctx, fx.userID)
	require.NoError(t, err)
	assert.True(t, result.Checked)
	assert.Len(t, result.Alerts, 1)
}

func TestTrackingService_StopTracking_KeepsMemory(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{milkMatch(38)}, nil).Times(2)
	fx.publisher.EXPECT().PublishProximityEvent(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)

	require.NoError(t, fx.service.StopTracking(ctx, fx.userID))

	stopped, err := fx.service.InstantCheck(ctx, fx.userID)
	require.NoError(t, err)
	assert.Equal(t, usecase.StateStopped, stopped.State)

	resumed, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(5))
	require.NoError(t, err)
	assert.True(t, resumed.Checked)
	assert.Empty(t, resumed.Alerts)
}

func TestTrackingService_Logout_ClearsMemory(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{milkMatch(38)}, nil).Times(2)
	fx.publisher.EXPECT().PublishProximityEvent(mock.Anything, mock.Anything).Return(nil).Times(2)

	first, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)
	assert.Len(t, first.Alerts, 1)

	require.NoError(t, fx.service.Logout(ctx, fx.userID))

	again, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(5))
	require.NoError(t, err)
	assert.Len(t, again.Alerts, 1)
}

func TestTrackingService_ReportPosition_LogoutDuringReportStartsFreshSession(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindProfileByUserID(mock.Anything, fx.userID).Return(fx.profile, nil).Once()
	fx.profileRepo.EXPECT().
		FindProfileByUserID(mock.Anything, fx.userID).
		Run(func(ctx context.Context, userID uuid.UUID) {
			require.NoError(t, fx.service.Logout(ctx, userID))
		}).
		Return(fx.profile, nil).
		Once()
	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{milkMatch(38)}, nil).Times(2)
	fx.publisher.EXPECT().PublishProximityEvent(mock.Anything, mock.Anything).Return(nil).Times(2)

	_, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)
	stale := fx.service.session(fx.userID, false)
	require.NotNil(t, stale)

	result, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(31))
	require.NoError(t, err)
	assert.Len(t, result.Alerts, 1)

	live := fx.service.session(fx.userID, false)
	require.NotNil(t, live)
	assert.NotSame(t, stale, live)
	assert.True(t, stale.closed)
	assert.Equal(t, 1, live.memory.Len())
}

func TestTrackingService_InstantCheck_LogoutWhileLoadingProfile(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindProfileByUserID(mock.Anything, fx.userID).Return(fx.profile, nil).Once()
	fx.profileRepo.EXPECT().
		FindProfileByUserID(mock.Anything, fx.userID).
		Run(func(ctx context.Context, userID uuid.UUID) {
			require.NoError(t, fx.service.Logout(ctx, userID))
		}).
		Return(fx.profile, nil).
		Once()
	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{}, nil).Once()

	_, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(0))
	require.NoError(t, err)

	result, err := fx.service.InstantCheck(ctx, fx.userID)
	require.NoError(t, err)
	assert.False(t, result.Checked)
	assert.Equal(t, usecase.SkipReasonNotTracking, result.SkipReason)
	assert.Nil(t, fx.service.session(fx.userID, false))
}

func TestTrackingService_LockSessionSkipsClosedSession(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	stale := fx.service.session(fx.userID, true)
	require.NoError(t, fx.service.Logout(ctx, fx.userID))

	assert.Nil(t, fx.service.lockSession(fx.userID, false))

	fresh := fx.service.lockSession(fx.userID, true)
	require.NotNil(t, fresh)
	fresh.mu.Unlock()

	assert.NotSame(t, stale, fresh)
	assert.False(t, fresh.closed)
}

func TestTrackingService_ReportPosition_ConcurrentReportsAlertOnce(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	fx.expectProfile()

	fx.proximity.EXPECT().SearchNearby(mock.Anything, fx.userID, mock.Anything).
		Return([]entity.ProximityMatch{milkMatch(38)}, nil)
	fx.publisher.EXPECT().PublishProximityEvent(mock.Anything, mock.Anything).Return(nil).Once()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		alerts int
	)
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			result, err := fx.service.ReportPosition(ctx, fx.userID, fx.at(i*31))
			if err != nil {
				return
			}

			mu.Lock()
			alerts += len(result.Alerts)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, alerts)
}
