package repository

import (
	"context"

	"nexttoyou/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when no alert has the requested ID.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository records emitted proximity alerts and their delivery results.
type NotificationRepository interface {
	// CreateNotification persists an alert and reports whether the row was inserted.
	// An ID that already exists is left untouched and reported as false, so the
	// insert doubles as a claim on delivering that alert.
	CreateNotification(ctx context.Context, notification *entity.ProximityNotification) (bool, error)

	// FindNotificationByID returns one alert, or ErrNotificationNotFound.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.ProximityNotification, error)

	// DeleteNotification removes an alert together with its delivery logs.
	DeleteNotification(ctx context.Context, id uuid.UUID) error

	// UpdateDeliveryCounts sets the sent and failed totals of an alert.
	UpdateDeliveryCounts(ctx context.Context, id uuid.UUID, totalSent, totalFailed int) error

	// FindNotificationsByUser returns the user's alerts, newest first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ProximityNotification, error)

	// BatchCreateNotificationLogs persists per-device delivery results.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error
}
