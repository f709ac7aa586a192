package handler

import (
	"log/slog"
	"net/http"

	"nexttoyou/internal/delivery/api/middleware"
	"nexttoyou/internal/delivery/api/response"
	"nexttoyou/internal/domain/entity"
	"nexttoyou/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler exposes the user's alert history.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// GetNotificationHistory handles GET /notifications?limit&offset
func (h *NotificationHandler) GetNotificationHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := defaultHistoryLimit, 0
	err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", bindErrorMessage(err))
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)
	offset = max(offset, 0)

	notifications, err := h.notificationUC.GetNotificationHistory(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if notifications == nil {
		notifications = []*entity.ProximityNotification{}
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"notifications": notifications,
		"limit":         limit,
		"offset":        offset,
	})
}
