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

const notificationLogBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists an emitted alert and reports whether the row was
// inserted. A second insert of the same ID is ignored and reported as false.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.ProximityNotification) (bool, error) {
	notificationM := fromNotificationDomain(notification)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(notificationM)
	if err := result.Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return false, domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	notification.CreatedAt = notificationM.CreatedAt

	return true, nil
}

// FindNotificationByID retrieves an alert from the primary, since it is read
// right after a conflicting insert.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.ProximityNotification, error) {
	var notificationM model.ProximityNotificationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// DeleteNotification removes an alert and its delivery logs in one transaction.
func (repo *notificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_id = ?", id).Delete(&model.NotificationLogModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete notification logs")
		}

		result := tx.Where("id = ?", id).Delete(&model.ProximityNotificationModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete notification")
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotificationNotFound
		}

		return nil
	})
}

// UpdateDeliveryCounts sets the total sent and failed counts for a notification.
func (repo *notificationRepository) UpdateDeliveryCounts(ctx context.Context, id uuid.UUID, totalSent, totalFailed int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProximityNotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_sent":   totalSent,
			"total_failed": totalFailed,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery counts")
	}

	return nil
}

// FindNotificationsByUser retrieves the user's alerts with pagination, newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ProximityNotification, error) {
	var notificationModels []*model.ProximityNotificationModel

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ?", userID).
		Order("emitted_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.ProximityNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// BatchCreateNotificationLogs persists multiple notification log entries in batches.
func (repo *notificationRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, notificationLogBatchSize).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid notification or device reference in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
		logs[i].SentAt = logM.SentAt
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.ProximityNotificationModel) *entity.ProximityNotification {
	if data == nil {
		return nil
	}

	return &entity.ProximityNotification{
		ID:             data.ID,
		UserID:         data.UserID,
		StoreID:        data.StoreID,
		StoreName:      data.StoreName,
		ItemName:       data.ItemName,
		Price:          data.Price,
		DistanceMeters: data.DistanceMeters,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Title:          data.Title,
		Body:           data.Body,
		TotalSent:      data.TotalSent,
		TotalFailed:    data.TotalFailed,
		EmittedAt:      data.EmittedAt,
		CreatedAt:      data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.ProximityNotification) *model.ProximityNotificationModel {
	if data == nil {
		return nil
	}

	return &model.ProximityNotificationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		StoreID:        data.StoreID,
		StoreName:      data.StoreName,
		ItemName:       data.ItemName,
		Price:          data.Price,
		DistanceMeters: data.DistanceMeters,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Title:          data.Title,
		Body:           data.Body,
		TotalSent:      data.TotalSent,
		TotalFailed:    data.TotalFailed,
		EmittedAt:      data.EmittedAt,
		CreatedAt:      data.CreatedAt,
	}
}

func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		UserID:         data.UserID,
		DeviceID:       data.DeviceID,
		Status:         data.Status,
		ErrorMessage:   data.ErrorMessage,
		SentAt:         data.SentAt,
	}
}
