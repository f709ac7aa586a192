package handler

import (
	"log/slog"
	"net/http"
	"time"

	"nexttoyou/internal/delivery/api/middleware"
	"nexttoyou/internal/delivery/api/response"
	"nexttoyou/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler receives background position reports and session events.
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// ReportPositionRequest is one fix from the device location provider.
type ReportPositionRequest struct {
	Latitude  *float64   `json:"latitude" validate:"required"`
	Longitude *float64   `json:"longitude" validate:"required"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// ReportPosition handles POST /tracking/positions
func (h *TrackingHandler) ReportPosition(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ReportPositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	pos := usecase.Position{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}
	if req.Timestamp != nil {
		pos.Timestamp = *req.Timestamp
	}

	result, err := h.trackingUC.ReportPosition(c.Request().Context(), userID, pos)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// InstantCheck handles POST /tracking/instant-check, sent after the task list changes.
func (h *TrackingHandler) InstantCheck(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.trackingUC.InstantCheck(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// StopTracking handles POST /tracking/stop
func (h *TrackingHandler) StopTracking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.trackingUC.StopTracking(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Tracking stopped"})
}

// Logout handles POST /session/logout and clears notification memory.
func (h *TrackingHandler) Logout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.trackingUC.Logout(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"})
}
