package handler

import (
	"log/slog"
	"net/http"

	"nexttoyou/internal/delivery/api/middleware"
	"nexttoyou/internal/delivery/api/response"
	"nexttoyou/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// SettingsHandler exposes the user's proximity profile.
type SettingsHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateSettingsRequest represents the request body for PUT /settings
type UpdateSettingsRequest struct {
	NotificationRadiusMeters *float64 `json:"notification_radius_meters,omitempty" validate:"omitempty,gt=0"`
	ActiveStartHour          *int     `json:"active_start_hour,omitempty" validate:"omitempty,min=0,max=23"`
	ActiveEndHour            *int     `json:"active_end_hour,omitempty" validate:"omitempty,min=0,max=23"`
	TimeZone                 *string  `json:"time_zone,omitempty" validate:"omitempty,timezone"`
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateSettings handles PUT /settings. Omitted fields keep their value.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		NotificationRadiusMeters: req.NotificationRadiusMeters,
		ActiveStartHour:          req.ActiveStartHour,
		ActiveEndHour:            req.ActiveEndHour,
		TimeZone:                 req.TimeZone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
