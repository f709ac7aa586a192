// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nexttoyou/internal/delivery/api/middleware"
	"nexttoyou/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProximityHandler    *handler.ProximityHandler
	TrackingHandler     *handler.TrackingHandler
	SettingsHandler     *handler.SettingsHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	proximityHandler    *handler.ProximityHandler
	trackingHandler     *handler.TrackingHandler
	settingsHandler     *handler.SettingsHandler
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		proximityHandler:    params.ProximityHandler,
		trackingHandler:     params.TrackingHandler,
		settingsHandler:     params.SettingsHandler,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Interactive searches, limited per user
	storesGroup := apiV1.Group("/stores")
	storesGroup.Use(r.rateLimitMiddleware.Limit)
	{
		storesGroup.GET("/nearby", r.proximityHandler.SearchNearby)
		storesGroup.GET("/search", r.proximityHandler.SearchByItemName)
	}

	// Background tracking
	trackingGroup := apiV1.Group("/tracking")
	{
		trackingGroup.POST("/positions", r.trackingHandler.ReportPosition)
		trackingGroup.POST("/instant-check", r.trackingHandler.InstantCheck)
		trackingGroup.POST("/stop", r.trackingHandler.StopTracking)
	}

	apiV1.POST("/session/logout", r.trackingHandler.Logout)

	apiV1.GET("/settings", r.settingsHandler.GetSettings)
	apiV1.PUT("/settings", r.settingsHandler.UpdateSettings)

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	apiV1.GET("/notifications", r.notificationHandler.GetNotificationHistory)
}
