package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"time"

	deliverycontext "nexttoyou/internal/delivery/context"
	"nexttoyou/internal/domain/constants"
	"nexttoyou/internal/domain/entity"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/domain/repository"
	"nexttoyou/internal/domain/service"
	"nexttoyou/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100

	invalidTokenMessage = "invalid or unregistered token"
)

type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	notificationSvc  service.NotificationService
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	txManager repository.TransactionManager,
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        txManager,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		notificationSvc:  notificationSvc,
		logger:           logger,
	}
}

// DeliverProximityEvent sends the alert to the user's devices in multicast batches.
// The notification row is inserted before anything is sent and acts as the
// delivery claim: a redelivered event whose row already exists is acknowledged
// without pushing again.
func (s *notificationService) DeliverProximityEvent(ctx context.Context, event *service.ProximityEvent) (*entity.ProximityNotification, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	notification, err := notificationFromEvent(event)
	if err != nil {
		return nil, err
	}
	if s.notificationSvc == nil {
		return nil, errors.Wrap(domainerrors.ErrPushUnavailable, "no push provider configured")
	}

	claimed, err := s.notificationRepo.CreateNotification(ctx, notification)
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim notification")
	}
	if !claimed {
		delivered, err := s.notificationRepo.FindNotificationByID(ctx, notification.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load delivered notification")
		}

		logger.Info("Proximity notification already delivered",
			slog.String("notification_id", notification.ID.String()),
		)

		return delivered, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, notification.UserID)
	if err != nil {
		s.releaseClaim(ctx, notification.ID)

		return nil, errors.Wrap(err, "failed to find active devices")
	}

	deviceByToken := make(map[string]*entity.Device, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if !device.Deliverable() {
			continue
		}
		if _, dup := deviceByToken[device.FCMToken]; dup {
			continue
		}
		deviceByToken[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	msg := service.PushMessage{
		Title: notification.Title,
		Body:  notification.Body,
		Data:  pushData(event),
	}

	var (
		logs          []*entity.NotificationLog
		invalidTokens []string
		sendErr       error
	)
	for batch := range slices.Chunk(tokens, service.MaxMulticastTokens) {
		result, err := s.notificationSvc.SendMulticast(ctx, batch, msg)
		if err != nil {
			logger.Error("Multicast batch failed",
				slog.String("notification_id", notification.ID.String()),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			notification.TotalFailed += len(batch)
			logs = append(logs, s.batchLogs(notification, batch, deviceByToken, nil, err.Error())...)
			sendErr = err

			continue
		}

		notification.TotalSent += result.SuccessCount
		notification.TotalFailed += result.FailureCount
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
		logs = append(logs, s.batchLogs(notification, batch, deviceByToken, result.InvalidTokens, "")...)
	}

	// Nothing reached any device; drop the claim and let the queue redeliver.
	if sendErr != nil && notification.TotalSent == 0 {
		s.releaseClaim(ctx, notification.ID)

		return nil, errors.Wrap(domainerrors.ErrPushUnavailable, sendErr.Error())
	}

	s.deactivateDevices(ctx, invalidTokens, deviceByToken)

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewNotificationRepository()

		if err := repo.UpdateDeliveryCounts(ctx, notification.ID, notification.TotalSent, notification.TotalFailed); err != nil {
			return errors.Wrap(err, "failed to update delivery counts")
		}
		if len(logs) == 0 {
			return nil
		}

		return errors.Wrap(repo.BatchCreateNotificationLogs(ctx, logs), "failed to create notification logs")
	})
	if err != nil {
		// The push already went out and the claim stays, so a retry cannot repair this.
		logger.Error("Failed to record delivery results",
			slog.String("notification_id", notification.ID.String()),
			slog.Int("total_sent", notification.TotalSent),
			slog.Int("total_failed", notification.TotalFailed),
			slog.Any("error", err),
		)
	}

	logger.Info("Proximity notification delivered",
		slog.String("notification_id", notification.ID.String()),
		slog.Int("total_sent", notification.TotalSent),
		slog.Int("total_failed", notification.TotalFailed),
	)

	return notification, nil
}

// releaseClaim deletes the claim row of an alert that reached no device.
func (s *notificationService) releaseClaim(ctx context.Context, id uuid.UUID) {
	if err := s.notificationRepo.DeleteNotification(ctx, id); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to release notification claim",
			slog.String("notification_id", id.String()),
			slog.Any("error", err),
		)
	}
}

// GetNotificationHistory retrieves the user's alerts with pagination
func (s *notificationService) GetNotificationHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ProximityNotification, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)
	offset = max(offset, 0)

	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	return notifications, nil
}

func (s *notificationService) batchLogs(
	notification *entity.ProximityNotification,
	batch []string,
	deviceByToken map[string]*entity.Device,
	invalidTokens []string,
	failure string,
) []*entity.NotificationLog {
	now := time.Now()
	logs := make([]*entity.NotificationLog, 0, len(batch))

	for _, token := range batch {
		device := deviceByToken[token]
		status, errorMsg := constants.DeliveryStatusSent, ""

		switch {
		case failure != "":
			status, errorMsg = constants.DeliveryStatusFailed, failure
		case slices.Contains(invalidTokens, token):
			status, errorMsg = constants.DeliveryStatusFailed, invalidTokenMessage
		}

		logs = append(logs, &entity.NotificationLog{
			ID:             uuid.New(),
			NotificationID: notification.ID,
			UserID:         device.UserID,
			DeviceID:       device.ID,
			Status:         status,
			ErrorMessage:   errorMsg,
			SentAt:         now,
		})
	}

	return logs
}

// deactivateDevices soft-deletes devices whose token the provider rejected.
func (s *notificationService) deactivateDevices(ctx context.Context, tokens []string, deviceByToken map[string]*entity.Device) {
	if len(tokens) == 0 {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, token := range tokens {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}

		g.Go(func() error {
			if err := s.deviceRepo.DeleteDevice(gctx, device.ID); err != nil {
				logger.Warn("Failed to deactivate device with invalid token",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", err),
				)
			}

			return nil
		})
	}
	_ = g.Wait()
}

func notificationFromEvent(event *service.ProximityEvent) (*entity.ProximityNotification, error) {
	if event == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty event")
	}

	id, err := uuid.Parse(event.NotificationID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid notification_id")
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid user_id")
	}
	storeID, err := uuid.Parse(event.StoreID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid store_id")
	}

	now := time.Now()

	return &entity.ProximityNotification{
		ID:             id,
		UserID:         userID,
		StoreID:        storeID,
		StoreName:      event.StoreName,
		ItemName:       event.ItemName,
		Price:          event.Price,
		DistanceMeters: event.DistanceMeters,
		Latitude:       event.Latitude,
		Longitude:      event.Longitude,
		Title:          event.Title,
		Body:           event.Body,
		EmittedAt:      now,
		CreatedAt:      now,
	}, nil
}

func pushData(event *service.ProximityEvent) map[string]string {
	return map[string]string{
		"notification_id": event.NotificationID,
		"store_id":        event.StoreID,
		"store":           event.StoreName,
		"item":            event.ItemName,
		"price":           strconv.FormatFloat(event.Price, 'f', -1, 64),
		"distance":        strconv.Itoa(event.DistanceMeters),
		"lat":             strconv.FormatFloat(event.Latitude, 'f', 6, 64),
		"lon":             strconv.FormatFloat(event.Longitude, 'f', 6, 64),
	}
}
