package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"nexttoyou/config"
	deliverycontext "nexttoyou/internal/delivery/context"
	"nexttoyou/internal/domain/entity"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/domain/gating"
	"nexttoyou/internal/domain/geo"
	"nexttoyou/internal/domain/repository"
	"nexttoyou/internal/domain/service"
	"nexttoyou/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const alertTitle = "🎯 Deal Found!"

// trackingSession is the gating state of one user. mu serializes checks so
// memory is never read and committed by two reports at once. lastCheckAt is
// server time; client timestamps only decide active hours.
type trackingSession struct {
	mu           sync.Mutex
	closed       bool
	memory       *gating.Memory
	state        usecase.TrackingState
	lastPos      *usecase.Position
	lastCheckAt  time.Time
	lastCheckPos *usecase.Position
}

type trackingService struct {
	proximity   usecase.ProximityUsecase
	profileRepo repository.ProfileRepository
	publisher   service.EventPublisher
	logger      *slog.Logger

	searchRadius   float64
	minInterval    time.Duration
	minMovement    float64
	publishTimeout time.Duration
	fallback       *time.Location
	now            func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*trackingSession
}

// NewTrackingService creates the notification gating service.
func NewTrackingService(
	proximity usecase.ProximityUsecase,
	profileRepo repository.ProfileRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return newTrackingService(proximity, profileRepo, publisher, cfg, logger, time.Now)
}

func newTrackingService(
	proximity usecase.ProximityUsecase,
	profileRepo repository.ProfileRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
	now func() time.Time,
) *trackingService {
	fallback, err := time.LoadLocation(cfg.Profile.DefaultTimeZone)
	if err != nil {
		logger.Warn("Unknown default time zone, using UTC",
			slog.String("time_zone", cfg.Profile.DefaultTimeZone),
		)
		fallback = time.UTC
	}

	return &trackingService{
		proximity:      proximity,
		profileRepo:    profileRepo,
		publisher:      publisher,
		logger:         logger,
		searchRadius:   cfg.Tracking.SearchRadiusMeters,
		minInterval:    cfg.Tracking.MinInterval,
		minMovement:    cfg.Tracking.MinMovementMeters,
		publishTimeout: cfg.Tracking.PublishTimeout,
		fallback:       fallback,
		now:            now,
		sessions:       make(map[uuid.UUID]*trackingSession),
	}
}

// ReportPosition records a fix and runs a gating check unless the user barely
// moved since the previous check or is outside their active hours.
func (s *trackingService) ReportPosition(ctx context.Context, userID uuid.UUID, pos usecase.Position) (*usecase.TrackingResult, error) {
	if err := geo.ValidateCoordinate(pos.Latitude, pos.Longitude); err != nil {
		return nil, err
	}
	if pos.Timestamp.IsZero() {
		pos.Timestamp = s.now()
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess := s.lockSession(userID, true)
	defer sess.mu.Unlock()

	sess.lastPos = &pos
	if profile == nil {
		return s.skipped(sess.state, usecase.SkipReasonUnavailable), nil
	}

	if s.throttled(sess, pos, s.now()) {
		return s.skipped(sess.state, usecase.SkipReasonThrottled), nil
	}

	return s.check(ctx, userID, sess, profile, pos), nil
}

// InstantCheck re-runs the check at the last known position.
func (s *trackingService) InstantCheck(ctx context.Context, userID uuid.UUID) (*usecase.TrackingResult, error) {
	if s.session(userID, false) == nil {
		return s.skipped(usecase.StateStopped, usecase.SkipReasonNotTracking), nil
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess := s.lockSession(userID, false)
	if sess == nil {
		return s.skipped(usecase.StateStopped, usecase.SkipReasonNotTracking), nil
	}
	defer sess.mu.Unlock()

	if sess.lastPos == nil {
		return s.skipped(usecase.StateStopped, usecase.SkipReasonNotTracking), nil
	}
	if profile == nil {
		return s.skipped(sess.state, usecase.SkipReasonUnavailable), nil
	}

	pos := *sess.lastPos
	pos.Timestamp = s.now()

	return s.check(ctx, userID, sess, profile, pos), nil
}

// StopTracking forgets where the user is. Memory survives so resuming inside
// the same range does not alert again.
func (s *trackingService) StopTracking(ctx context.Context, userID uuid.UUID) error {
	sess := s.lockSession(userID, false)
	if sess == nil {
		return nil
	}
	defer sess.mu.Unlock()

	sess.state = usecase.StateStopped
	sess.lastPos = nil
	sess.lastCheckPos = nil
	sess.lastCheckAt = time.Time{}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Tracking stopped",
		slog.String("user_id", userID.String()),
	)

	return nil
}

// Logout drops all gating state of the user.
func (s *trackingService) Logout(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()

	if ok {
		sess.mu.Lock()
		sess.closed = true
		sess.memory.Reset()
		sess.lastPos = nil
		sess.lastCheckPos = nil
		sess.state = usecase.StateStopped
		sess.mu.Unlock()
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Notification memory cleared",
		slog.String("user_id", userID.String()),
	)

	return nil
}

func (s *trackingService) session(userID uuid.UUID, create bool) *trackingSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok && create {
		sess = &trackingSession{
			memory: gating.NewMemory(),
			state:  usecase.StateWatching,
		}
		s.sessions[userID] = sess
	}

	return sess
}

// lockSession returns the user's session with its lock held. A session that
// Logout closed while the caller waited is no longer in the map, so the lookup
// is repeated; without create, a missing session yields nil.
func (s *trackingService) lockSession(userID uuid.UUID, create bool) *trackingSession {
	for {
		sess := s.session(userID, create)
		if sess == nil {
			return nil
		}

		sess.mu.Lock()
		if !sess.closed {
			return sess
		}
		sess.mu.Unlock()
	}
}

// loadProfile returns ErrUnknownUser for users without a profile. Any other
// failure is logged and yields a nil profile so the caller can skip softly.
func (s *trackingService) loadProfile(ctx context.Context, userID uuid.UUID) (*entity.ProximityProfile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrUnknownUser
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to load proximity profile",
		slog.String("user_id", userID.String()),
		slog.Any("error", err),
	)

	return nil, nil
}

// throttled reports whether pos is both too soon and too close to the last check.
// A clock that went backwards never throttles.
func (s *trackingService) throttled(sess *trackingSession, pos usecase.Position, now time.Time) bool {
	if sess.lastCheckPos == nil {
		return false
	}

	elapsed := now.Sub(sess.lastCheckAt)
	if elapsed < 0 {
		return false
	}
	moved, err := geo.Distance(sess.lastCheckPos.Latitude, sess.lastCheckPos.Longitude, pos.Latitude, pos.Longitude)
	if err != nil {
		return false
	}

	return elapsed < s.minInterval && moved < s.minMovement
}

func (s *trackingService) check(
	ctx context.Context,
	userID uuid.UUID,
	sess *trackingSession,
	profile *entity.ProximityProfile,
	pos usecase.Position,
) *usecase.TrackingResult {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if !gating.Watching(profile, pos.Timestamp, s.fallback) {
		sess.state = usecase.StateSleeping

		return s.skipped(usecase.StateSleeping, usecase.SkipReasonSleeping)
	}
	sess.state = usecase.StateWatching

	matches, err := s.proximity.SearchNearby(ctx, userID, usecase.SearchQuery{
		Latitude:     pos.Latitude,
		Longitude:    pos.Longitude,
		RadiusMeters: max(s.searchRadius, profile.NotificationRadiusMeters),
	})
	if err != nil {
		logger.Warn("Proximity check skipped",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return s.skipped(usecase.StateWatching, usecase.SkipReasonUnavailable)
	}

	findings := sess.memory.NewFindings(matches, profile.NotificationRadiusMeters)
	alerts := make([]usecase.Alert, 0, len(findings))
	emitted := make([]string, 0, len(findings))

	for _, finding := range findings {
		alert := newAlert(finding)
		if err := s.publish(ctx, userID, &alert); err != nil {
			logger.Warn("Failed to publish proximity event",
				slog.String("user_id", userID.String()),
				slog.String("store_id", finding.StoreID.String()),
				slog.String("item", finding.ItemName),
				slog.Any("error", err),
			)

			continue
		}

		alerts = append(alerts, alert)
		emitted = append(emitted, finding.Key)
	}

	sess.memory.Commit(matches, emitted)
	sess.lastCheckAt = s.now()
	sess.lastCheckPos = &pos

	if len(alerts) > 0 {
		logger.Info("Proximity alerts emitted",
			slog.String("user_id", userID.String()),
			slog.Int("count", len(alerts)),
		)
	}

	return &usecase.TrackingResult{
		State:   usecase.StateWatching,
		Checked: true,
		Matches: matches,
		Alerts:  alerts,
	}
}

func (s *trackingService) publish(ctx context.Context, userID uuid.UUID, alert *usecase.Alert) error {
	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	event := &service.ProximityEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: alert.NotificationID.String(),
		UserID:         userID.String(),
		Title:          alert.Title,
		Body:           alert.Body,
		StoreID:        alert.StoreID.String(),
		StoreName:      alert.StoreName,
		ItemName:       alert.ItemName,
		Price:          alert.Price,
		DistanceMeters: alert.DistanceMeters,
		Latitude:       alert.Latitude,
		Longitude:      alert.Longitude,
	}

	return errors.Wrap(s.publisher.PublishProximityEvent(ctx, event), "publish proximity event")
}

func (s *trackingService) skipped(state usecase.TrackingState, reason string) *usecase.TrackingResult {
	return &usecase.TrackingResult{
		State:      state,
		SkipReason: reason,
		Alerts:     []usecase.Alert{},
	}
}

func newAlert(f gating.Finding) usecase.Alert {
	return usecase.Alert{
		NotificationID: uuid.New(),
		StoreID:        f.StoreID,
		StoreName:      f.StoreName,
		ItemName:       f.ItemName,
		Price:          f.Price,
		DistanceMeters: f.DistanceMeters,
		Latitude:       f.Latitude,
		Longitude:      f.Longitude,
		Title:          alertTitle,
		Body:           alertBody(f.StoreName, f.ItemName, f.Price),
	}
}

func alertBody(store, item string, price float64) string {
	return "Go to: " + store + "\nFound: " + item + " for " + strconv.FormatFloat(price, 'f', -1, 64) + "₪"
}
