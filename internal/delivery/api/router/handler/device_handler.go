package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nexttoyou/internal/delivery/api/middleware"
	"nexttoyou/internal/delivery/api/response"
	"nexttoyou/internal/domain/entity"
	"nexttoyou/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// normalize trims client input and lowercases the platform, so "iOS" from a
// device's system name registers as ios.
func (r *RegisterDeviceRequest) normalize() {
	r.FCMToken = strings.TrimSpace(r.FCMToken)
	r.DeviceID = strings.TrimSpace(r.DeviceID)
	r.Platform = strings.ToLower(strings.TrimSpace(r.Platform))
}

// DeviceResponse is a registered device as shown to its owner. The push token
// is never echoed back.
type DeviceResponse struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"device_id"`
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newDeviceResponse(d *entity.Device) DeviceResponse {
	return DeviceResponse{
		ID:        d.ID,
		DeviceID:  d.DeviceID,
		Platform:  d.Platform,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// RegisterDevice handles device registration. Registering a known device
// refreshes its token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	req.normalize()

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	deviceInfo := &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, deviceInfo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Device registered for proximity alerts",
		slog.String("user_id", userID.String()),
		slog.String("device_id", device.DeviceID),
		slog.String("platform", device.Platform),
	)

	return response.Success(c, http.StatusCreated, newDeviceResponse(device))
}

// GetUserDevices lists the caller's active devices.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		views = append(views, newDeviceResponse(d))
	}

	return response.Success(c, http.StatusOK, views)
}

// DeactivateDevice stops proximity alerts to one of the caller's devices.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Device deactivated",
		slog.String("user_id", userID.String()),
		slog.String("device_id", deviceID.String()),
	)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deactivated successfully"})
}
