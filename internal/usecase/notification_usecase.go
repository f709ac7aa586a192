package usecase

import (
	"context"

	"nexttoyou/internal/domain/entity"
	"nexttoyou/internal/domain/service"

	"github.com/google/uuid"
)

// NotificationUsecase delivers emitted alerts and exposes the user's alert history.
type NotificationUsecase interface {
	// DeliverProximityEvent pushes event to every active device of its user and
	// records the outcome. Unregistered tokens are deactivated.
	DeliverProximityEvent(ctx context.Context, event *service.ProximityEvent) (*entity.ProximityNotification, error)

	// GetNotificationHistory returns the user's alerts, newest first.
	GetNotificationHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ProximityNotification, error)
}
